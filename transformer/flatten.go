package transformer

import (
	"strings"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

// DefaultDelimiter joins nested keys during Flatten.
const DefaultDelimiter = "."

// Flatten converts a nested object into a single-level object whose keys are
// the nested key chains joined with delimiter (DefaultDelimiter when empty).
// Arrays are leaves: they are kept whole, not recursed into. An empty nested
// object flattens to its own key holding the empty object.
func Flatten(doc map[string]any, delimiter string) (map[string]any, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	flat := make(map[string]any)
	if err := flattenInto(doc, "", delimiter, 0, flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func flattenInto(obj map[string]any, prefix, delimiter string, depth int, flat map[string]any) error {
	if depth > DefaultMaxDepth {
		return &jsonerrors.ResourceLimitError{
			ResourceType: "flatten depth",
			Limit:        int64(DefaultMaxDepth),
			Actual:       int64(depth),
			Path:         prefix,
		}
	}

	for _, k := range jsonutil.SortedKeys(obj) {
		key := k
		if prefix != "" {
			key = prefix + delimiter + k
		}
		if child, ok := obj[k].(map[string]any); ok && len(child) > 0 {
			if err := flattenInto(child, key, delimiter, depth+1, flat); err != nil {
				return err
			}
			continue
		}
		flat[key] = jsonutil.Clone(obj[k])
	}
	return nil
}

// Unflatten reverses Flatten: delimiter-joined keys become nested objects.
// When a flat key's prefix collides with a scalar from an earlier key, the
// scalar is replaced by the object needed to hold the deeper key.
func Unflatten(flat map[string]any, delimiter string) (map[string]any, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	result := make(map[string]any)
	for _, key := range jsonutil.SortedKeys(flat) {
		parts := strings.Split(key, delimiter)
		if len(parts) > DefaultMaxDepth {
			return nil, &jsonerrors.ResourceLimitError{
				ResourceType: "unflatten depth",
				Limit:        int64(DefaultMaxDepth),
				Actual:       int64(len(parts)),
				Path:         key,
			}
		}

		current := result
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = jsonutil.Clone(flat[key])
	}
	return result, nil
}
