// Package keywords holds the lexeme table that decides which tokens count as
// logical lines of code, plus the helpers the function detector uses to tell
// identifiers from reserved words and symbols.
package keywords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateKeyword is returned by NewTable when a lexeme appears twice.
var ErrDuplicateKeyword = errors.New("duplicate keyword")

// Keyword is a single table entry.
type Keyword struct {
	Lexeme    string
	Countable bool
}

// Table maps lexemes to their countable flag. It is immutable once built and
// safe for concurrent use.
type Table struct {
	entries []Keyword
	index   map[string]bool
}

// NewTable builds a table from entries, preserving their order for listing.
func NewTable(entries []Keyword) (*Table, error) {
	t := &Table{
		entries: make([]Keyword, 0, len(entries)),
		index:   make(map[string]bool, len(entries)),
	}

	for _, kw := range entries {
		if _, exists := t.index[kw.Lexeme]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKeyword, kw.Lexeme)
		}

		t.index[kw.Lexeme] = kw.Countable
		t.entries = append(t.entries, kw)
	}

	return t, nil
}

// Countable reports whether lexeme contributes to the LOC count. Unknown
// lexemes never do.
func (t *Table) Countable(lexeme string) bool {
	return t.index[lexeme]
}

// Contains reports whether lexeme is in the table at all.
func (t *Table) Contains(lexeme string) bool {
	_, ok := t.index[lexeme]
	return ok
}

// IsIdentifierCandidate reports whether lexeme may be a function name: a
// multi-byte lexeme must not be a table entry, a single byte must be neither
// punctuation nor a digit.
func (t *Table) IsIdentifierCandidate(lexeme string) bool {
	switch len(lexeme) {
	case 0:
		return false
	case 1:
		return !IsPunct(lexeme[0]) && !IsDigit(lexeme[0])
	default:
		return !t.Contains(lexeme)
	}
}

// Entries returns every entry in table order.
func (t *Table) Entries() []Keyword {
	out := make([]Keyword, len(t.entries))
	copy(out, t.entries)

	return out
}

// CountableEntries returns the lexemes that count toward LOC, in table order.
func (t *Table) CountableEntries() []string {
	var out []string

	for _, kw := range t.entries {
		if kw.Countable {
			out = append(out, kw.Lexeme)
		}
	}

	return out
}

// Directive classifies a preprocessor directive word.
type Directive int

// Directive kinds.
const (
	DirectiveOther Directive = iota
	// DirectiveConditional starts a span that is skipped up to #endif.
	DirectiveConditional
	// DirectiveEnd closes a skipped span.
	DirectiveEnd
)

// ClassifyDirective matches directive words case-insensitively, unlike the
// rest of the table.
func ClassifyDirective(word string) Directive {
	switch {
	case strings.EqualFold(word, "if"),
		strings.EqualFold(word, "elif"),
		strings.EqualFold(word, "else"):
		return DirectiveConditional
	case strings.EqualFold(word, "endif"):
		return DirectiveEnd
	default:
		return DirectiveOther
	}
}
