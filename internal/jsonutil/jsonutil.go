// Package jsonutil provides shared value-model helpers for the jsontools
// engines: kind classification, deep cloning, and deep structural equality.
//
// All engines operate on the value model produced by JSON/YAML unmarshaling
// into any: nil, bool, float64 (other numeric kinds are accepted and compared
// numerically), string, []any, and map[string]any.
package jsonutil

import (
	"math"
	"sort"
)

// Kind classifies a JSON value by its runtime type.
type Kind int

const (
	// KindInvalid is a value outside the JSON value model.
	KindInvalid Kind = iota
	// KindNull is the nil value.
	KindNull
	// KindBool is a boolean.
	KindBool
	// KindNumber is any numeric kind (float64, int, int64, ...).
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is a []any.
	KindArray
	// KindObject is a map[string]any.
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf returns the Kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// Number converts any supported numeric kind to float64.
// Returns false if v is not numeric.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of v. Objects and arrays are copied recursively;
// primitives are returned as-is. Values outside the JSON model are returned
// unchanged (they are treated as opaque leaves).
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(val))
		for k, child := range val {
			cloned[k] = Clone(child)
		}
		return cloned
	case []any:
		cloned := make([]any, len(val))
		for i, child := range val {
			cloned[i] = Clone(child)
		}
		return cloned
	default:
		return v
	}
}

// DeepEqual reports whether a and b are structurally equal.
// Numbers are compared by value regardless of their Go kind, so int(1)
// equals float64(1). Object key order is irrelevant.
func DeepEqual(a, b any) bool {
	return deepEqual(a, b, 0)
}

// DeepEqualTolerance behaves like DeepEqual but treats two numeric leaves as
// equal when their absolute difference is at most tolerance.
func DeepEqualTolerance(a, b any, tolerance float64) bool {
	return deepEqualTol(a, b, tolerance, true)
}

func deepEqual(a, b any, _ int) bool {
	return deepEqualTol(a, b, 0, false)
}

func deepEqualTol(a, b any, tolerance float64, useTol bool) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindNumber:
		na, _ := Number(a)
		nb, _ := Number(b)
		if useTol {
			return math.Abs(na-nb) <= tolerance
		}
		return na == nb
	case KindString:
		return a.(string) == b.(string)
	case KindArray:
		aa, ba := a.([]any), b.([]any)
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !deepEqualTol(aa[i], ba[i], tolerance, useTol) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !deepEqualTol(av, bv, tolerance, useTol) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Set is a structural-equality-based membership collection. Unlike a
// serialization-keyed set, two structurally equal objects with different key
// insertion order still count as the same member.
type Set struct {
	members []any
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Contains reports whether v is structurally equal to any member.
func (s *Set) Contains(v any) bool {
	for _, m := range s.members {
		if DeepEqual(m, v) {
			return true
		}
	}
	return false
}

// Add appends v if it is not already a member.
// Returns true if v was added.
func (s *Set) Add(v any) bool {
	if s.Contains(v) {
		return false
	}
	s.members = append(s.members, v)
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.members)
}

// SortedKeys returns the keys of m in ascending order, for deterministic
// iteration over object members.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContainsValue reports whether arr has an element structurally equal to v.
func ContainsValue(arr []any, v any) bool {
	for _, elem := range arr {
		if DeepEqual(elem, v) {
			return true
		}
	}
	return false
}
