package constraint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatViolation formats a single violation as "<subject>: <message>".
// Unscoped violations are returned as the bare message.
func FormatViolation(v Violation) string {
	if v.Subject == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Subject, v.Message)
}

// FormatCLI formats violations for terminal output.
// Output includes subject, rule and message for every violation.
func FormatCLI(report Report, source string) string {
	if report.Valid() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❌ Constraint violations in '%s':\n\n", source))

	for _, v := range report.Violations {
		if v.Subject != "" {
			sb.WriteString(fmt.Sprintf("  Subject: %s\n", v.Subject))
		}
		if v.Rule != "" {
			sb.WriteString(fmt.Sprintf("  Rule: %s\n", v.Rule))
		}
		sb.WriteString(fmt.Sprintf("  Message: %s\n", v.Message))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Validation failed: %d violation(s)\n", report.Count()))
	return sb.String()
}

// FormatCI formats violations as GitHub Actions error annotations.
func FormatCI(report Report, source string) string {
	if report.Valid() {
		return ""
	}

	var sb strings.Builder
	for _, v := range report.Violations {
		sb.WriteString(fmt.Sprintf("::error file=%s::%s\n", source, FormatViolation(v)))
	}

	sb.WriteString(fmt.Sprintf("\n❌ Constraint violations in '%s': %d violation(s)\n",
		source, report.Count()))
	return sb.String()
}

// FormatJSON formats the report as JSON.
func FormatJSON(report Report) (string, error) {
	out := struct {
		Valid      bool        `json:"valid"`
		Violations []Violation `json:"violations"`
	}{
		Valid:      report.Valid(),
		Violations: report.Violations,
	}
	if out.Violations == nil {
		out.Violations = []Violation{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
