package transformer

import (
	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

// Map applies fn to every element of items and returns the results in order.
// A callback error is wrapped in a jsonerrors.TransformError carrying the
// offending index; partial results are discarded.
func Map(items []any, fn func(item any, index int) (any, error)) ([]any, error) {
	result := make([]any, 0, len(items))
	for i, item := range items {
		mapped, err := fn(item, i)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Index:   i,
				Message: "map callback failed",
				Cause:   err,
			}
		}
		result = append(result, mapped)
	}
	return result, nil
}

// Filter returns the elements of items for which fn returns true, in order.
func Filter(items []any, fn func(item any, index int) (bool, error)) ([]any, error) {
	result := make([]any, 0, len(items))
	for i, item := range items {
		keep, err := fn(item, i)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Index:   i,
				Message: "filter callback failed",
				Cause:   err,
			}
		}
		if keep {
			result = append(result, item)
		}
	}
	return result, nil
}

// Reduce folds items left to right into an accumulator starting at initial.
func Reduce(items []any, initial any, fn func(acc, item any, index int) (any, error)) (any, error) {
	acc := initial
	for i, item := range items {
		next, err := fn(acc, item, i)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Index:   i,
				Message: "reduce callback failed",
				Cause:   err,
			}
		}
		acc = next
	}
	return acc, nil
}
