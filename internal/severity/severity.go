// Package severity provides severity level constants and utilities
// for issues reported by the validator package.
//
// All four severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Soft constraint violations or recommendations
//   - SeverityError: Schema violations that make documents invalid
//   - SeverityCritical: Values that cannot be processed at all
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during validation.
type Severity int

const (
	// SeverityError indicates a schema violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates soft constraint violations, such as unknown
	// format values, that don't invalidate the document but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates values that cannot be processed at all,
	// such as structures deeper than the configured recursion limit.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
