package constraint

// Constraint carries the message template reported when a rule fails.
// The template is opaque and passed through unchanged.
type Constraint struct {
	Message string
}

// ViolationSink receives business rule failures from a validator.
// The sink is owned by the caller.
type ViolationSink interface {
	AddViolation(template string)
}

// Validator is the contract shared by every rule in this module.
// Violations go to the sink; a non-nil error means the caller passed a
// value the rule cannot inspect.
type Validator interface {
	Validate(value any, c Constraint, sink ViolationSink) error
}

// Violation is a single reported rule failure.
type Violation struct {
	Rule    string `json:"rule,omitempty"`    // Rule that reported it (e.g., "range")
	Subject string `json:"subject,omitempty"` // What failed (e.g., "option engraving")
	Message string `json:"message"`           // Constraint message template
}

// Report collects violations. It is not safe for concurrent use.
type Report struct {
	Violations []Violation `json:"violations"`
}

// AddViolation appends an unscoped violation.
func (r *Report) AddViolation(template string) {
	r.Violations = append(r.Violations, Violation{Message: template})
}

// Scope returns a sink that stamps rule and subject on every violation it
// appends to r.
func (r *Report) Scope(rule, subject string) ViolationSink {
	return scopedSink{report: r, rule: rule, subject: subject}
}

// Valid reports whether no violation was collected.
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

// Count returns the number of collected violations.
func (r *Report) Count() int {
	return len(r.Violations)
}

type scopedSink struct {
	report  *Report
	rule    string
	subject string
}

func (s scopedSink) AddViolation(template string) {
	s.report.Violations = append(s.report.Violations, Violation{
		Rule:    s.rule,
		Subject: s.subject,
		Message: template,
	})
}
