package transformer

import (
	"strconv"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/internal/naming"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// GroupBy partitions items into buckets keyed by the stringified value at
// field (a path expression, so nested fields like "user.role" work). Items
// lacking the field group under the literal key "undefined".
func GroupBy(items []any, field string) (map[string][]any, error) {
	return GroupByFunc(items, func(item any) (string, error) {
		if !jsonpath.Has(item, field) {
			return "undefined", nil
		}
		return groupKey(jsonpath.GetOr(item, field, nil)), nil
	})
}

// GroupByFunc partitions items into buckets keyed by fn. A callback error is
// wrapped in a jsonerrors.TransformError carrying the item index.
func GroupByFunc(items []any, fn func(item any) (string, error)) (map[string][]any, error) {
	groups := make(map[string][]any)
	for i, item := range items {
		key, err := fn(item)
		if err != nil {
			return nil, &jsonerrors.TransformError{
				Index:   i,
				Message: "group key callback failed",
				Cause:   err,
			}
		}
		groups[key] = append(groups[key], jsonutil.Clone(item))
	}
	return groups, nil
}

// groupKey stringifies a grouping value the way dynamic languages coerce
// object keys: numbers drop a trailing ".0", null becomes "null".
func groupKey(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	default:
		if n, ok := jsonutil.Number(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return "undefined"
	}
}

// PickKeys returns a new object holding only the named top-level keys.
// Missing keys are ignored.
func PickKeys(obj map[string]any, keys ...string) map[string]any {
	result := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			result[k] = jsonutil.Clone(v)
		}
	}
	return result
}

// OmitKeys returns a new object without the named top-level keys.
func OmitKeys(obj map[string]any, keys ...string) map[string]any {
	omit := make(map[string]bool, len(keys))
	for _, k := range keys {
		omit[k] = true
	}
	result := make(map[string]any, len(obj))
	for k, v := range obj {
		if !omit[k] {
			result[k] = jsonutil.Clone(v)
		}
	}
	return result
}

// RenameKeys returns a new object with top-level keys renamed per the
// mapping. Keys absent from the mapping are kept as-is; a mapping for a
// missing key is ignored.
func RenameKeys(obj map[string]any, renames map[string]string) map[string]any {
	result := make(map[string]any, len(obj))
	for k, v := range obj {
		if newKey, ok := renames[k]; ok {
			k = newKey
		}
		result[k] = jsonutil.Clone(v)
	}
	return result
}

// KeyCase names a key casing convention for RenameKeysCase.
type KeyCase string

const (
	// CaseCamel renames keys to camelCase.
	CaseCamel KeyCase = "camel"
	// CasePascal renames keys to PascalCase.
	CasePascal KeyCase = "pascal"
	// CaseSnake renames keys to snake_case.
	CaseSnake KeyCase = "snake"
	// CaseKebab renames keys to kebab-case.
	CaseKebab KeyCase = "kebab"
)

// RenameKeysCase returns a new object with every top-level key converted to
// the given casing convention.
func RenameKeysCase(obj map[string]any, keyCase KeyCase) (map[string]any, error) {
	var convert func(string) string
	switch keyCase {
	case CaseCamel:
		convert = naming.ToCamel
	case CasePascal:
		convert = naming.ToPascal
	case CaseSnake:
		convert = naming.ToSnake
	case CaseKebab:
		convert = naming.ToKebab
	default:
		return nil, &jsonerrors.ConfigError{
			Option:  "keyCase",
			Value:   string(keyCase),
			Message: "must be camel, pascal, snake, or kebab",
		}
	}

	result := make(map[string]any, len(obj))
	for k, v := range obj {
		result[convert(k)] = jsonutil.Clone(v)
	}
	return result, nil
}
