package output

import "github.com/dannynguyen3011/tally/internal/selector"

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SummaryResponse is the summary view plus the analytics views that are
// not part of the composed summary.
type SummaryResponse struct {
	Summary selector.Summary `json:"summary"`
	Status  selector.Status  `json:"status"`
	Trend   selector.Trend   `json:"trend"`
	Range   selector.Range   `json:"range"`
	History []int            `json:"history"`
}

// TraceEntry is one dispatched action in an apply run.
type TraceEntry struct {
	Step   int            `json:"step"`
	Action string         `json:"action"`
	Value  int            `json:"value"`
	Trend  selector.Trend `json:"trend"`
}

// ApplyResponse is the apply command output.
type ApplyResponse struct {
	Applied int             `json:"applied"`
	Trace   []TraceEntry    `json:"trace,omitempty"`
	Result  SummaryResponse `json:"result"`
}

// ErrorResponse is the JSON rendering of a failed command.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}
