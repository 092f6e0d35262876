package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeOptionalDetached = "optional-detached"
	CodeBlankTolerated   = "blank-tolerated"
	CodeSkipped          = "skipped"
)

// Diagnostics holds all diagnostic information from one operation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Coordinate is the cell the diagnostic relates to (if any).
	Coordinate string
	// QualifiedName identifies the schema node (if any).
	QualifiedName string
}

// Severity represents the severity level of a diagnostic.
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

// Locator identifies the schema node a diagnostic is about.
// *schema.Node implements it.
type Locator interface {
	Coordinate() string
	QualifiedName() string
}

// Add records a diagnostic about the node at. A nil locator leaves the
// coordinate and name empty.
func (d *Diagnostics) Add(severity Severity, code string, at Locator, format string, args ...any) {
	diag := Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	}

	if at != nil {
		diag.Coordinate = at.Coordinate()
		diag.QualifiedName = at.QualifiedName()
	}

	switch severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code string, at Locator, format string, args ...any) {
	d.Add(SeverityError, code, at, format, args...)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code string, at Locator, format string, args ...any) {
	d.Add(SeverityWarning, code, at, format, args...)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code string, at Locator, format string, args ...any) {
	d.Add(SeverityInfo, code, at, format, args...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Coordinate != "" {
		prefix = append(prefix, "["+d.Coordinate+"]")
	}

	if d.QualifiedName != "" {
		prefix = append(prefix, d.QualifiedName)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
