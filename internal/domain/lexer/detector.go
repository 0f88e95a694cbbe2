package lexer

import (
	"log/slog"
	"unicode/utf8"

	"github.com/mouse-blink/lloc/internal/domain/keywords"
	m "github.com/mouse-blink/lloc/internal/model"
)

// DefaultMaxNameLength bounds recorded function names, in bytes.
const DefaultMaxNameLength = 31

// Detector recognises `name ( ... ) {` and K&R `name ( ... ) decls ; {`
// signatures in the token stream and accumulates the countable tokens of
// each body. Only one function is tracked at a time; a `(` seen while a
// candidate is open only moves the paren depth.
type Detector struct {
	table   *keywords.Table
	logger  *slog.Logger
	maxName int

	state      State
	parenDepth uint
	braceDepth uint
	current    int
	pending    uint64
	functions  []m.Function
}

// NewDetector creates an idle detector. A nil logger discards trace events
// and a non-positive maxName selects DefaultMaxNameLength.
func NewDetector(table *keywords.Table, logger *slog.Logger, maxName int) *Detector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if maxName <= 0 {
		maxName = DefaultMaxNameLength
	}

	return &Detector{
		table:   table,
		logger:  logger,
		maxName: maxName,
		current: -1,
	}
}

// Observe feeds one flushed token together with the token flushed before it.
func (d *Detector) Observe(line uint64, token, prev string) {
	switch d.state {
	case StateIdle:
		d.observeIdle(line, token, prev)
	case StateInBody:
		d.observeBody(line, token)
	default:
		d.observeSignature(line, token, prev)
	}
}

func (d *Detector) observeIdle(line uint64, token, prev string) {
	if token != "(" || !d.table.IsIdentifierCandidate(prev) {
		return
	}

	d.functions = append(d.functions, m.Function{Name: truncateName(prev, d.maxName)})
	d.current = len(d.functions) - 1
	d.pending = 0
	d.parenDepth = 1
	d.state = StateAwaitingParenClose

	d.logger.Debug("possible function", "line", line, "name", prev)
}

func (d *Detector) observeSignature(line uint64, token, prev string) {
	switch token {
	case "(":
		d.parenDepth++
	case ")":
		if d.parenDepth > 0 {
			d.parenDepth--
		}
	}

	if d.parenDepth > 0 {
		d.state = StateAwaitingParenClose
	} else {
		d.state = StateAwaitingBodyStart
	}

	d.logger.Debug("function set", "line", line, "paren_level", d.parenDepth, "loc", d.pending)

	if d.parenDepth == 0 {
		switch {
		case prev == ")" && token == ";":
			// prototype or call
			d.toIdle()
			return
		case (prev == ")" || prev == ";") && token == "{":
			d.state = StateInBody
			d.braceDepth = 1
		}
	}

	if d.table.Countable(token) {
		d.pending++
	}
}

func (d *Detector) observeBody(line uint64, token string) {
	switch token {
	case "{":
		d.braceDepth++
	case "}":
		if d.braceDepth > 0 {
			d.braceDepth--
		}
	}

	d.logger.Debug("function set", "line", line, "brace_level", d.braceDepth, "loc", d.pending)

	if d.table.Countable(token) {
		d.pending++
	}

	if d.braceDepth == 0 {
		d.functions[d.current].LOC = d.pending
		d.toIdle()
	}
}

func (d *Detector) toIdle() {
	d.state = StateIdle
	d.current = -1
	d.parenDepth = 0
	d.braceDepth = 0
}

// Reset discards every record and returns the detector to idle.
func (d *Detector) Reset() {
	d.toIdle()
	d.pending = 0
	d.functions = nil
}

// State returns the current detector state.
func (d *Detector) State() State { return d.state }

// ParenDepth returns the open parenthesis count of the current signature.
func (d *Detector) ParenDepth() uint { return d.parenDepth }

// BraceDepth returns the open brace count of the current body.
func (d *Detector) BraceDepth() uint { return d.braceDepth }

// Pending returns the LOC accumulated for the function in progress.
func (d *Detector) Pending() uint64 { return d.pending }

// Current returns the function in progress, if any.
func (d *Detector) Current() (m.Function, bool) {
	if d.current < 0 {
		return m.Function{}, false
	}

	return d.functions[d.current], true
}

// Functions returns a copy of every record in detection order, including
// discarded prototypes whose LOC stays zero.
func (d *Detector) Functions() []m.Function {
	out := make([]m.Function, len(d.functions))
	copy(out, d.functions)

	return out
}

func truncateName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}

	return name[:cut]
}
