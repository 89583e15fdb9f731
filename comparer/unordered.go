package comparer

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// CompareArraysUnordered compares two arrays ignoring element order.
//
// Matching is bipartite and greedy: each element of a consumes the first
// unmatched deep-equal element of b. Unmatched elements of a are reported as
// missing-element differences, leftover elements of b as extra-element.
// Similarity is matches/len(a); two arrays of differing length with an empty
// a score 0.
//
// Both arguments must be arrays; anything else fails with
// *jsonerrors.CompareError.
func CompareArraysUnordered(a, b any) (*CompareResult, error) {
	arrA, ok := a.([]any)
	if !ok {
		return nil, &jsonerrors.CompareError{
			Argument: "a",
			Value:    a,
			Message:  "expected array, got " + jsonutil.KindOf(a).String(),
		}
	}
	arrB, ok := b.([]any)
	if !ok {
		return nil, &jsonerrors.CompareError{
			Argument: "b",
			Value:    b,
			Message:  "expected array, got " + jsonutil.KindOf(b).String(),
		}
	}

	matched := make([]bool, len(arrB))
	matches := 0
	result := &CompareResult{}

	for i, elem := range arrA {
		found := false
		for j, candidate := range arrB {
			if matched[j] {
				continue
			}
			if jsonutil.DeepEqual(elem, candidate) {
				matched[j] = true
				found = true
				matches++
				break
			}
		}
		if !found {
			result.Differences = append(result.Differences, Difference{
				Path:   jsonpath.JoinIndex("", i),
				Type:   DiffMissingElement,
				ValueA: elem,
			})
		}
	}

	for j, wasMatched := range matched {
		if !wasMatched {
			result.Differences = append(result.Differences, Difference{
				Path:   jsonpath.JoinIndex("", j),
				Type:   DiffExtraElement,
				ValueB: arrB[j],
			})
		}
	}

	result.Equal = len(result.Differences) == 0
	result.DifferenceCount = len(result.Differences)

	switch {
	case len(arrA) > 0:
		result.Similarity = float64(matches) / float64(len(arrA))
	case len(arrB) == 0:
		result.Similarity = 1.0
	default:
		result.Similarity = 0.0
	}
	return result, nil
}
