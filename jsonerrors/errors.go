package jsonerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPathSyntax indicates a malformed path expression.
	ErrPathSyntax = errors.New("path syntax error")

	// ErrPathNotFound indicates a path segment did not resolve.
	ErrPathNotFound = errors.New("path not found")

	// ErrPathRange indicates an array index was out of bounds.
	ErrPathRange = errors.New("path index out of range")

	// ErrMerge indicates a merge failure.
	ErrMerge = errors.New("merge error")

	// ErrTransform indicates a transformation callback failure.
	ErrTransform = errors.New("transform error")

	// ErrGenerator indicates a template generation failure.
	ErrGenerator = errors.New("generator error")

	// ErrCompare indicates a comparison helper was misused.
	ErrCompare = errors.New("compare error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// PathSyntaxError represents a malformed path expression.
// This includes unterminated brackets, empty bracket bodies, and
// unterminated quoted strings.
type PathSyntaxError struct {
	// Expression is the full path expression that failed to parse
	Expression string
	// Position is the byte offset where parsing failed (0 if unknown)
	Position int
	// Message describes the syntax failure
	Message string
}

// Error returns a human-readable error message.
func (e *PathSyntaxError) Error() string {
	msg := "path syntax error"
	if e.Expression != "" {
		msg += fmt.Sprintf(" in %q", e.Expression)
	}
	if e.Position > 0 {
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathSyntaxError) Is(target error) bool {
	return target == ErrPathSyntax
}

// PathNotFoundError represents a traversal failure on a missing object key
// or a missing intermediate link without create mode.
type PathNotFoundError struct {
	// Expression is the full path expression being evaluated
	Expression string
	// Path is the portion of the path that resolved before the failure
	Path string
	// Key is the segment that failed to resolve
	Key string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *PathNotFoundError) Error() string {
	msg := "path not found"
	if e.Expression != "" {
		msg += fmt.Sprintf(": %q", e.Expression)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" (missing %q", e.Key)
		if e.Path != "" {
			msg += " at " + e.Path
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// PathRangeError represents an array index outside the bounds of the
// addressed array without create mode.
type PathRangeError struct {
	// Expression is the full path expression being evaluated
	Expression string
	// Path is the portion of the path that resolved before the failure
	Path string
	// Index is the offending index as written (may be negative)
	Index int
	// Length is the length of the array being indexed
	Length int
}

// Error returns a human-readable error message.
func (e *PathRangeError) Error() string {
	msg := fmt.Sprintf("path index out of range: index %d, length %d", e.Index, e.Length)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expression != "" {
		msg += fmt.Sprintf(" in %q", e.Expression)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathRangeError) Is(target error) bool {
	return target == ErrPathRange
}

// MergeError represents a merge failure: a type conflict under the fail
// conflict strategy, or a resolver failure.
type MergeError struct {
	// Path is the location within the merged value where the conflict occurred
	Path string
	// TargetValue is the value on the target side of the conflict
	TargetValue any
	// SourceValue is the value on the source side of the conflict
	SourceValue any
	// Message describes the merge failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MergeError) Error() string {
	msg := "merge error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MergeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MergeError) Is(target error) bool {
	return target == ErrMerge
}

// TransformError represents a callback failure during a map/filter/reduce
// pipeline, annotated with the location being processed.
type TransformError struct {
	// Path is the location being processed when the callback failed
	Path string
	// Index is the array index being processed (-1 if not applicable)
	Index int
	// Message describes the transformation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	msg := "transform error"
	if e.Path != "" {
		msg += " at " + e.Path
	} else if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransformError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// GeneratorError represents a template generation failure: an unresolved
// reference in strict mode, an unknown directive, or a wrapped processing
// failure.
type GeneratorError struct {
	// Path is the location within the template where processing failed
	Path string
	// Directive is the directive type being processed ("" for plain nodes)
	Directive string
	// Template is the template node being processed (may be nil)
	Template any
	// Message describes the generation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GeneratorError) Error() string {
	msg := "generator error"
	if e.Directive != "" {
		msg += " in $type:" + e.Directive
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GeneratorError) Is(target error) bool {
	return target == ErrGenerator
}

// CompareError represents misuse of a comparison helper, such as passing a
// non-array value to an array-only comparison.
type CompareError struct {
	// Argument names the offending argument ("a" or "b")
	Argument string
	// Value is the offending value
	Value any
	// Message describes the misuse
	Message string
}

// Error returns a human-readable error message.
func (e *CompareError) Error() string {
	msg := "compare error"
	if e.Argument != "" {
		msg += " for argument " + e.Argument
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CompareError) Is(target error) bool {
	return target == ErrCompare
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when a recursive traversal exceeds the configured depth limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Path is the location reached when the limit was hit
	Path string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
