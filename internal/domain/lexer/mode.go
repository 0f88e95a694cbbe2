// Package lexer implements the single-pass C/C++ classifier that counts
// logical lines of code and the token-driven detector that attributes them to
// functions.
package lexer

// Mode is the scanner's lexing mode. Exactly one is active at a time.
type Mode int

// Scanner modes.
const (
	ModeNormal Mode = iota
	ModeBlockComment
	ModeLineComment
	ModeString
	ModeChar
	// ModeDirective skips a preprocessor line, honouring backslash
	// continuations.
	ModeDirective
	// ModeConditional skips everything up to the next #endif.
	ModeConditional
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBlockComment:
		return "block-comment"
	case ModeLineComment:
		return "line-comment"
	case ModeString:
		return "string"
	case ModeChar:
		return "char"
	case ModeDirective:
		return "directive"
	case ModeConditional:
		return "conditional"
	default:
		return "unknown"
	}
}

// State is the function detector's state.
type State int

// Detector states.
const (
	StateIdle State = iota
	StateAwaitingParenClose
	StateAwaitingBodyStart
	StateInBody
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingParenClose:
		return "awaiting-paren-close"
	case StateAwaitingBodyStart:
		return "awaiting-body-start"
	case StateInBody:
		return "in-body"
	default:
		return "unknown"
	}
}
