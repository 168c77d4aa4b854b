// Package diagnostic collects author-time findings from enum analysis and
// validation. Derivation failures are reported here with a stable code so
// the CLI can print them and exit non-zero before any code is written.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding about an enum type.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding,
	// e.g. "non-integer-enum".
	Code string
	// Message is the human-readable description.
	Message string
	// Type is the fully qualified enum type this relates to.
	Type string
	// Variant is the variant name this relates to, if any.
	Variant string
}

// String formats the diagnostic for CLI output.
func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", d.Severity, d.Code, d.Type)
	if d.Variant != "" {
		fmt.Fprintf(&sb, ".%s", d.Variant)
	}
	fmt.Fprintf(&sb, ": %s", d.Message)
	return sb.String()
}

// Diagnostics accumulates findings for one derivation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError records an error finding.
func (d *Diagnostics) AddError(code, message, typ, variant string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Type:     typ,
		Variant:  variant,
	})
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, message, typ, variant string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Type:     typ,
		Variant:  variant,
	})
}

// HasErrors reports whether any error-level finding was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error makes a failed Diagnostics usable as an error value, joining every
// error finding on one line each.
func (d *Diagnostics) Error() string {
	lines := make([]string, 0, len(d.Errors))
	for _, diag := range d.Errors {
		lines = append(lines, diag.String())
	}
	return strings.Join(lines, "\n")
}
