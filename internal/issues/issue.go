// Package issues provides a unified issue type for validation problems.
package issues

import (
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/severity"
)

// Issue represents a single problem found during validation.
type Issue struct {
	// Path locates the problematic value in path-engine syntax (empty for root)
	Path string
	// Field is the schema keyword that produced the issue (e.g., "minLength")
	Field string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
	// Expected describes what the schema required (optional)
	Expected any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if path == "" {
		path = "$"
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}
