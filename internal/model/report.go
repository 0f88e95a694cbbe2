package model

// Function is the per-function accumulator of name and logical LOC.
type Function struct {
	Name string `yaml:"name"`
	LOC  uint64 `yaml:"loc"`
}

// Totals holds the whole-file counters produced by a single scan.
type Totals struct {
	LOC             uint64 `yaml:"loc"`      // countable tokens
	Physical        uint64 `yaml:"physical"` // newline bytes
	Comment         uint64 `yaml:"comment"`  // lines holding comment content
	CommentChars    uint64 `yaml:"comment_chars"`
	CommentNonSpace uint64 `yaml:"comment_non_space"`
}

// CommentDensity is the share of physical lines that carry a comment.
func (t Totals) CommentDensity() float64 {
	if t.Physical == 0 {
		return 0
	}

	return float64(t.Comment) / float64(t.Physical)
}

// Report represents the result of counting a single source file.
type Report struct {
	Source    Path       `yaml:"source"`
	Hash      string     `yaml:"hash,omitempty"` // sha256 of the scanned bytes
	Totals    Totals     `yaml:"totals"`
	Functions []Function `yaml:"functions"`
}

// Counted returns the function records that received a body, in detection
// order. Prototypes and calls keep a zero count and are left out.
func (r Report) Counted() []Function {
	counted := make([]Function, 0, len(r.Functions))

	for _, fn := range r.Functions {
		if fn.LOC > 0 {
			counted = append(counted, fn)
		}
	}

	return counted
}

// FunctionLOC sums the LOC of every counted function.
func (r Report) FunctionLOC() uint64 {
	var total uint64

	for _, fn := range r.Functions {
		total += fn.LOC
	}

	return total
}
