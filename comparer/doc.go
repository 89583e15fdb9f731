// Package comparer provides deep comparison over JSON values: structural
// diffing, similarity scoring, subset and containment checks, unordered array
// comparison, and patch-operation generation.
//
// Compare reports every difference between two values rather than stopping at
// the first one. Each Difference carries a path in jsonpath syntax, so
// reported locations can be fed back into the jsonpath package:
//
//	result, err := comparer.Compare(a, b)
//	for _, d := range result.Differences {
//	    fmt.Println(d.String())
//	}
//
// Difference paths and types are direction-sensitive: a key present only in
// the second value is reported as missing-in-a, and swapping the arguments
// reports it as missing-in-b at the same path. Equality itself is symmetric.
//
// Traversal depth is bounded (default: 100) and exceeding the bound returns a
// *jsonerrors.ResourceLimitError.
package comparer
