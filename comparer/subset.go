package comparer

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
)

// IsSubset reports whether sub is structurally contained in super: every key
// of a sub-object must exist in super with a contained value, and every
// element of a sub-array must match some element of the super-array ignoring
// order. A type mismatch always fails.
func IsSubset(sub, super any) bool {
	ka, kb := jsonutil.KindOf(sub), jsonutil.KindOf(super)
	if ka != kb {
		return false
	}

	switch ka {
	case jsonutil.KindObject:
		subObj, superObj := sub.(map[string]any), super.(map[string]any)
		for k, sv := range subObj {
			pv, ok := superObj[k]
			if !ok || !IsSubset(sv, pv) {
				return false
			}
		}
		return true

	case jsonutil.KindArray:
		subArr, superArr := sub.([]any), super.([]any)
		matched := make([]bool, len(superArr))
		for _, elem := range subArr {
			found := false
			for j, candidate := range superArr {
				if matched[j] {
					continue
				}
				if IsSubset(elem, candidate) {
					matched[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true

	default:
		return jsonutil.DeepEqual(sub, super)
	}
}

// Contains reports whether value appears anywhere within container: either
// the container itself deep-equals value, or any descendant does.
func Contains(container, value any) bool {
	if jsonutil.DeepEqual(container, value) {
		return true
	}
	switch v := container.(type) {
	case map[string]any:
		for _, child := range v {
			if Contains(child, value) {
				return true
			}
		}
	case []any:
		for _, child := range v {
			if Contains(child, value) {
				return true
			}
		}
	}
	return false
}

// FindCommon returns the structure shared by a and b: for objects, the keys
// whose values have a common part; for arrays, the index-aligned elements
// with a common part; for primitives, the value itself when equal. Returns
// nil when the two values share nothing.
func FindCommon(a, b any) any {
	if jsonutil.DeepEqual(a, b) {
		return jsonutil.Clone(a)
	}

	ka, kb := jsonutil.KindOf(a), jsonutil.KindOf(b)
	if ka != kb {
		return nil
	}

	switch ka {
	case jsonutil.KindObject:
		common := make(map[string]any)
		ao, bo := a.(map[string]any), b.(map[string]any)
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok {
				continue
			}
			if c := FindCommon(av, bv); c != nil {
				common[k] = c
			}
		}
		if len(common) == 0 {
			return nil
		}
		return common

	case jsonutil.KindArray:
		var common []any
		aa, ba := a.([]any), b.([]any)
		for i := 0; i < min(len(aa), len(ba)); i++ {
			if c := FindCommon(aa[i], ba[i]); c != nil {
				common = append(common, c)
			}
		}
		if len(common) == 0 {
			return nil
		}
		return common

	default:
		return nil
	}
}
