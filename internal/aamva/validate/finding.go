// Package validate checks a decoded or caller-built document against
// the data-element registry and reports findings instead of failing on
// the first problem. Every check runs on every call; severity decides
// what the caller does with the result.
package validate

import (
	"fmt"
	"strings"
)

// Severity grades a finding.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is one validator-reported issue.
type Finding struct {
	Severity    Severity
	SubfileType string
	Code        string
	Message     string
}

func (f Finding) String() string {
	loc := f.SubfileType
	if f.Code != "" {
		loc = loc + "/" + f.Code
	}
	if loc == "" {
		loc = "header"
	}
	return fmt.Sprintf("%s [%s] %s", f.Severity, loc, f.Message)
}

// IsFatal reports whether the finding blocks encoding in strict mode.
func (f Finding) IsFatal() bool {
	return f.Severity == SeverityFatal
}

// Fatal filters the fatal findings out of a full pass.
func Fatal(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.IsFatal() {
			out = append(out, f)
		}
	}
	return out
}

// HasFatal reports whether any finding is fatal.
func HasFatal(findings []Finding) bool {
	for _, f := range findings {
		if f.IsFatal() {
			return true
		}
	}
	return false
}

// ValidationError wraps the fatal findings of a strict-mode pass. It is
// only constructed after the full pass completes, so Findings carries
// every fatal finding, not just the first.
type ValidationError struct {
	Findings []Finding
}

func (e *ValidationError) Error() string {
	if len(e.Findings) == 1 {
		return "validate: " + e.Findings[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validate: %d fatal findings:", len(e.Findings))
	for _, f := range e.Findings {
		b.WriteString("\n  ")
		b.WriteString(f.String())
	}
	return b.String()
}
