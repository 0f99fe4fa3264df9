package sect

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostic report
// -----------------------------------------------------------------------------
//
// The validation pass never aborts and never prints. Every violation it finds
// becomes one Diagnostic in a Report; the driver decides what a failed report
// means for the process. Warnings and informational notes ride along in the
// same report but never affect the verdict.

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	SevInfo    Severity = iota // informational (unusual but valid)
	SevWarning                 // advisory, never affects the verdict
	SevError                   // placement violation or structural error
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single finding about one section.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Section  string   `json:"section"` // section name, "" for file-level findings
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Section == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: section %q: %s", d.Severity, d.Section, d.Message)
}

// Summary counts findings by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report is the aggregated verdict of a validation pass. The zero value is
// an empty, passing report.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     Summary      `json:"summary"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a diagnostic and updates the summary.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// Errorf records an error-severity diagnostic for the named section.
func (r *Report) Errorf(section, format string, args ...any) {
	r.Add(Diagnostic{Severity: SevError, Section: section, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity diagnostic.
func (r *Report) Warnf(section, format string, args ...any) {
	r.Add(Diagnostic{Severity: SevWarning, Section: section, Message: fmt.Sprintf(format, args...)})
}

// Passed reports the overall verdict. Warnings and info never fail a pass.
func (r *Report) Passed() bool {
	return r.Summary.Errors == 0
}

// HasAnyIssues reports whether anything at all was recorded.
func (r *Report) HasAnyIssues() bool {
	return len(r.Diagnostics) > 0
}

// FormatText returns a human-readable multi-line report.
func (r *Report) FormatText() string {
	var b strings.Builder

	b.WriteString("Section placement report\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("  Errors:   %d\n", r.Summary.Errors))
	b.WriteString(fmt.Sprintf("  Warnings: %d\n", r.Summary.Warnings))
	b.WriteString(fmt.Sprintf("  Info:     %d\n", r.Summary.Info))

	if len(r.Diagnostics) == 0 {
		b.WriteString("\nNo issues found.\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, sev := range []Severity{SevError, SevWarning, SevInfo} {
		for _, d := range r.Diagnostics {
			if d.Severity == sev {
				b.WriteString("  " + d.String() + "\n")
			}
		}
	}
	return b.String()
}

// FormatTextCompact returns a one-line-per-finding format.
func (r *Report) FormatTextCompact() string {
	if len(r.Diagnostics) == 0 {
		return "No issues found.\n"
	}
	var b strings.Builder
	for _, d := range r.Diagnostics {
		b.WriteString(d.String() + "\n")
	}
	return b.String()
}
