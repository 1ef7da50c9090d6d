// Package validator implements lenient, warning-oriented validation of
// operator results against a column's format contract. Validation never
// blocks a write on its own: hard format failures flip Valid to false
// and everything else only lowers confidence, which may trigger one
// in-process retry upstream.
package validator

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue types.
const (
	IssueFormat    = "format"
	IssueLength    = "length"
	IssueRequired  = "required"
	IssueRelevance = "relevance"
	IssueContent   = "content"
)

// Issue is one validation finding.
type Issue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ValidationResult is the outcome of validating one cell value.
// Valid is false only on hard format failures; warnings lower
// Confidence instead. Sanitized, when non-empty, is the auto-corrected
// value the caller should write in place of the original.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Confidence  float64  `json:"confidence"`
	Issues      []Issue  `json:"issues,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Sanitized   string   `json:"sanitized,omitempty"`
}

// HasErrors reports whether any issue is error severity.
func (r *ValidationResult) HasErrors() bool {
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// IssueMessages returns the issue messages in order.
func (r *ValidationResult) IssueMessages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		out = append(out, is.Message)
	}
	return out
}

func (r *ValidationResult) addError(issueType, msg string) {
	r.Valid = false
	r.Issues = append(r.Issues, Issue{Type: issueType, Message: msg, Severity: SeverityError})
}

func (r *ValidationResult) addWarning(issueType, msg string, penalty float64) {
	r.Issues = append(r.Issues, Issue{Type: issueType, Message: msg, Severity: SeverityWarning})
	r.Confidence -= penalty
}

func (r *ValidationResult) addInfo(issueType, msg string) {
	r.Issues = append(r.Issues, Issue{Type: issueType, Message: msg, Severity: SeverityInfo})
}

func (r *ValidationResult) suggest(s string) {
	r.Suggestions = append(r.Suggestions, s)
}

func (r *ValidationResult) clamp() {
	if !r.Valid && r.Confidence > hardFailureConfidence {
		r.Confidence = hardFailureConfidence
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
}
