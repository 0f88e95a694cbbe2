package keywords

import "sync"

var defaultEntries = []Keyword{
	// C countable reserved words and symbols
	{"case", true}, {"default", true}, {"do", true},
	{"else", true}, {"enum", true}, {"for", true},
	{"if", true}, {"struct", true}, {"switch", true},
	{"union", true}, {"while", true}, {"#", true},
	{";", true}, {",", true}, {"}", true},

	// C++ reserved words
	{"bool", false}, {"catch", true}, {"class", true},
	{"const_cast", false}, {"delete", false}, {"dynamic_cast", false},
	{"false", false}, {"friend", true}, {"inline", true},
	{"mutable", false}, {"namespace", false}, {"new", false},
	{"operator", true}, {"private", true}, {"protected", true},
	{"public", true}, {"reinterpret_cast", false}, {"static_cast", false},
	{"template", true}, {"this", false}, {"throw", false},
	{"true", false}, {"try", true}, {"typeid", false},
	{"using", false}, {"virtual", true},

	// C reserved words that do not count
	{"asm", false}, {"auto", false}, {"break", false},
	{"char", false}, {"const", false}, {"continue", false},
	{"double", false}, {"entry", false}, {"extern", false},
	{"float", false}, {"fortran", false}, {"goto", false},
	{"int", false}, {"long", false}, {"register", false},
	{"return", false}, {"short", false}, {"signed", false},
	{"sizeof", false}, {"static", false}, {"unsigned", false},
	{"void", false}, {"volatile", false},

	// single symbols that do not count
	{"!", false}, {"%", false}, {"^", false}, {"&", false}, {"*", false},
	{"(", false}, {")", false}, {"-", false}, {"_", false}, {"+", false},
	{"=", false}, {"~", false}, {"[", false}, {"]", false}, {"\\", false},
	{"|", false}, {":", false}, {"'", false}, {"\"", false}, {"{", false},
	{".", false}, {"<", false}, {">", false}, {"/", false}, {"?", false},

	// compound symbols; the scanner emits symbols one byte at a time, so
	// these only matter to IsIdentifierCandidate
	{"+=", false}, {"-=", false}, {"*=", false}, {"/=", false}, {"%=", false},
	{"<<=", false}, {">>=", false}, {"&=", false}, {"^=", false}, {"|=", false},
	{"->", false}, {"++", false}, {"--", false}, {"<<", false}, {">>", false},
	{"<=", false}, {">=", false}, {"==", false}, {"!=", false}, {"&&", false},
	{"||", false},
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in C/C++ table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(defaultEntries)
		if err != nil {
			panic(err)
		}

		defaultTable = t
	})

	return defaultTable
}
