package lexer

import (
	"io"
	"log/slog"

	"github.com/mouse-blink/lloc/internal/domain/keywords"
	m "github.com/mouse-blink/lloc/internal/model"
)

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sends trace events (counted tokens, candidate functions,
// paren and brace levels) to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTable replaces the built-in keyword table.
func WithTable(table *keywords.Table) Option {
	return func(s *Scanner) {
		if table != nil {
			s.table = table
		}
	}
}

// WithMaxNameLength bounds recorded function names.
func WithMaxNameLength(n int) Option {
	return func(s *Scanner) {
		s.maxName = n
	}
}

// Scanner classifies a C/C++ byte stream one byte at a time. Decisions only
// use the current and the previous byte. A Scanner owns all of its state, so
// independent scans may run in parallel; a single Scanner is not safe for
// concurrent use.
type Scanner struct {
	table    *keywords.Table
	logger   *slog.Logger
	maxName  int
	detector *Detector

	mode        Mode
	last        byte
	escaped     bool // literal: next byte is consumed unconditionally
	continued   bool // directive: backslash seen, newline does not end it
	readingWord bool // directive: still collecting the directive word
	commentLine bool // current physical line already counted as comment

	token  []byte
	word   []byte
	prev   string
	totals m.Totals
}

// NewScanner creates a scanner in normal mode.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		table:  keywords.Default(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.detector = NewDetector(s.table, s.logger, s.maxName)

	return s
}

// Scan consumes r to EOF and finishes the scan. Malformed input never fails;
// only read errors are returned.
func (s *Scanner) Scan(r io.Reader) error {
	if _, err := io.Copy(s, r); err != nil {
		return err
	}

	s.Finish()

	return nil
}

// Write feeds p to the scanner. It never fails.
func (s *Scanner) Write(p []byte) (int, error) {
	for _, c := range p {
		s.step(c)
	}

	return len(p), nil
}

// WriteByte feeds a single byte. It never fails.
func (s *Scanner) WriteByte(c byte) error {
	s.step(c)
	return nil
}

// Finish flushes the pending token at end of input. Input that ends inside a
// comment, literal or directive is abandoned as is.
func (s *Scanner) Finish() {
	if s.mode == ModeNormal {
		s.flush()
	}

	s.logger.Debug("program total",
		"loc", s.totals.LOC,
		"physical", s.totals.Physical,
		"comment", s.totals.Comment,
		"mode", s.mode.String(),
	)
}

// Reset returns the scanner and its detector to their initial state.
func (s *Scanner) Reset() {
	s.mode = ModeNormal
	s.last = 0
	s.escaped = false
	s.continued = false
	s.readingWord = false
	s.commentLine = false
	s.token = s.token[:0]
	s.word = s.word[:0]
	s.prev = ""
	s.totals = m.Totals{}
	s.detector.Reset()
}

// Totals returns the counters gathered so far.
func (s *Scanner) Totals() m.Totals { return s.totals }

// Functions returns the detected function records in detection order.
func (s *Scanner) Functions() []m.Function { return s.detector.Functions() }

// Mode returns the active lexing mode.
func (s *Scanner) Mode() Mode { return s.mode }

// Detector exposes the function detector driven by this scanner.
func (s *Scanner) Detector() *Detector { return s.detector }

// Pending returns the partially assembled token.
func (s *Scanner) Pending() string { return string(s.token) }

func (s *Scanner) step(c byte) {
	last := s.last
	s.last = c

	switch s.mode {
	case ModeBlockComment:
		s.blockComment(c, last)
	case ModeLineComment:
		s.lineComment(c)
	case ModeString:
		s.literal(c, '"')
	case ModeChar:
		s.literal(c, '\'')
	case ModeDirective:
		s.directive(c)
	case ModeConditional:
		s.conditional(c)
	default:
		s.normal(c, last)
	}

	if c == '\n' {
		s.totals.Physical++
		s.commentLine = false
	}
}

func (s *Scanner) line() uint64 {
	return s.totals.Physical + 1
}

func (s *Scanner) normal(c, last byte) {
	switch {
	case last == '/' && (c == '/' || c == '*'):
		s.openComment(c)
	case c == '"':
		s.flush()
		s.openLiteral(ModeString)
	case c == '\'':
		s.flush()
		s.openLiteral(ModeChar)
	case c == '#':
		s.flush()
		s.emit("#")
		s.openDirective()
	case keywords.IsSpace(c):
		s.flush()
	case c == '_' || c == '~' || !keywords.IsPunct(c):
		s.token = append(s.token, c)
	default:
		s.flush()
		s.emit(string(rune(c)))
	}
}

func (s *Scanner) openComment(c byte) {
	if n := len(s.token); n > 0 && s.token[n-1] == '/' {
		s.token = s.token[:n-1]
	}

	s.flush()

	if c == '/' {
		s.mode = ModeLineComment
	} else {
		s.mode = ModeBlockComment
	}

	s.totals.CommentChars += 2
	s.totals.CommentNonSpace += 2
	s.markCommentLine()

	// the opener's '*' must not close the comment
	s.last = 0
}

func (s *Scanner) blockComment(c, last byte) {
	s.markCommentLine()
	s.countCommentByte(c)

	if last == '*' && c == '/' {
		s.mode = ModeNormal
		// the closer's '/' must not open a new comment
		s.last = 0
	}
}

func (s *Scanner) lineComment(c byte) {
	if c == '\n' {
		s.mode = ModeNormal
		return
	}

	s.countCommentByte(c)
}

func (s *Scanner) countCommentByte(c byte) {
	if c == '\n' {
		return
	}

	s.totals.CommentChars++

	if !keywords.IsSpace(c) {
		s.totals.CommentNonSpace++
	}
}

func (s *Scanner) markCommentLine() {
	if s.commentLine {
		return
	}

	s.commentLine = true
	s.totals.Comment++
}

func (s *Scanner) openLiteral(mode Mode) {
	s.mode = mode
	s.escaped = false
}

func (s *Scanner) literal(c, quote byte) {
	switch {
	case s.escaped:
		s.escaped = false
	case c == '\\':
		s.escaped = true
	case c == quote:
		s.mode = ModeNormal
	}
}

func (s *Scanner) openDirective() {
	s.mode = ModeDirective
	s.readingWord = true
	s.word = s.word[:0]
	s.continued = false
}

func (s *Scanner) directive(c byte) {
	if s.readingWord {
		if s.readWord(c) {
			return
		}

		if keywords.ClassifyDirective(string(s.word)) == keywords.DirectiveConditional {
			s.logger.Debug("skipping to endif", "line", s.line(), "directive", string(s.word))
			s.mode = ModeConditional

			return
		}
	}

	switch {
	case c == '\\':
		s.continued = true
	case c == '\n':
		if !s.continued {
			s.mode = ModeNormal
		}

		s.continued = false
	case !keywords.IsSpace(c):
		s.continued = false
	}
}

func (s *Scanner) conditional(c byte) {
	if !s.readingWord {
		if c == '#' {
			s.readingWord = true
			s.word = s.word[:0]
		}

		return
	}

	if s.readWord(c) {
		return
	}

	switch {
	case keywords.ClassifyDirective(string(s.word)) == keywords.DirectiveEnd:
		s.logger.Debug("resuming after endif", "line", s.line())
		s.mode = ModeNormal
	case c == '#':
		s.readingWord = true
		s.word = s.word[:0]
	}
}

// readWord collects a directive word, skipping leading blanks. It returns
// false on the byte that ends the word.
func (s *Scanner) readWord(c byte) bool {
	if len(s.word) == 0 && (c == ' ' || c == '\t') {
		return true
	}

	if keywords.IsAlnum(c) || c == '_' {
		s.word = append(s.word, c)
		return true
	}

	s.readingWord = false

	return false
}

func (s *Scanner) flush() {
	if len(s.token) == 0 {
		return
	}

	token := string(s.token)
	s.token = s.token[:0]
	s.emit(token)
}

func (s *Scanner) emit(token string) {
	line := s.line()

	s.detector.Observe(line, token, s.prev)
	s.prev = token

	if s.table.Countable(token) {
		s.totals.LOC++
		s.logger.Debug("counted", "line", line, "token", token)
	}
}
