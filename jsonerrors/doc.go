// Package jsonerrors provides structured error types for jsontools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - PathSyntaxError: malformed path expressions
//   - PathNotFoundError: traversal of a missing object key or intermediate link
//   - PathRangeError: array index out of bounds without create mode
//   - MergeError: type conflicts under the fail strategy
//   - TransformError: callback failures during map/filter/reduce pipelines
//   - GeneratorError: unresolved references, unknown directives, processing failures
//   - CompareError: misuse of comparison helpers (e.g. non-array arguments)
//   - ResourceLimitError: resource exhaustion (recursion depth limits)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	_, err := jsonpath.Get(doc, "a.b[99]")
//	if err != nil {
//	    var rangeErr *jsonerrors.PathRangeError
//	    if errors.As(err, &rangeErr) {
//	        // Handle the out-of-bounds index specifically
//	    }
//	}
package jsonerrors
