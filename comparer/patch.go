package comparer

import (
	"strconv"
	"strings"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
)

// PatchOp is a single patch operation in JSON-Patch-like syntax.
type PatchOp struct {
	// Op is one of "add", "remove", or "replace".
	Op string `json:"op"`
	// Path is the target location as a JSON Pointer.
	Path string `json:"path"`
	// Value is the value for add and replace operations.
	Value any `json:"value,omitempty"`
}

// PatchOperations produces an ordered sequence of operations that transform
// a into b.
//
// Arrays whose lengths differ by more than half the shorter length are
// replaced wholesale rather than diffed element-by-element, which keeps
// patches for heavily shifted arrays from degenerating into a replace of
// every element. Removals within an array are emitted in descending index
// order so earlier operations do not shift the indices of later ones.
func PatchOperations(a, b any) []PatchOp {
	var ops []PatchOp
	patchDiff(a, b, "", &ops)
	return ops
}

func patchDiff(a, b any, pointer string, ops *[]PatchOp) {
	if jsonutil.DeepEqual(a, b) {
		return
	}

	ka, kb := jsonutil.KindOf(a), jsonutil.KindOf(b)
	if ka != kb {
		*ops = append(*ops, PatchOp{Op: "replace", Path: pointer, Value: jsonutil.Clone(b)})
		return
	}

	switch ka {
	case jsonutil.KindObject:
		patchDiffObjects(a.(map[string]any), b.(map[string]any), pointer, ops)
	case jsonutil.KindArray:
		patchDiffArrays(a.([]any), b.([]any), pointer, ops)
	default:
		*ops = append(*ops, PatchOp{Op: "replace", Path: pointer, Value: b})
	}
}

func patchDiffObjects(a, b map[string]any, pointer string, ops *[]PatchOp) {
	for _, k := range unionKeys(a, b) {
		av, inA := a[k]
		bv, inB := b[k]
		childPtr := pointer + "/" + escapePointer(k)

		switch {
		case !inA:
			*ops = append(*ops, PatchOp{Op: "add", Path: childPtr, Value: jsonutil.Clone(bv)})
		case !inB:
			*ops = append(*ops, PatchOp{Op: "remove", Path: childPtr})
		default:
			patchDiff(av, bv, childPtr, ops)
		}
	}
}

func patchDiffArrays(a, b []any, pointer string, ops *[]PatchOp) {
	shorter := min(len(a), len(b))
	lengthGap := len(a) + len(b) - 2*shorter

	// Wholesale replacement heuristic for heavily resized arrays.
	if shorter == 0 || lengthGap*2 > shorter {
		*ops = append(*ops, PatchOp{Op: "replace", Path: pointer, Value: jsonutil.Clone(b)})
		return
	}

	for i := 0; i < shorter; i++ {
		patchDiff(a[i], b[i], pointer+"/"+strconv.Itoa(i), ops)
	}
	for i := shorter; i < len(b); i++ {
		*ops = append(*ops, PatchOp{Op: "add", Path: pointer + "/" + strconv.Itoa(i), Value: jsonutil.Clone(b[i])})
	}
	for i := len(a) - 1; i >= shorter; i-- {
		*ops = append(*ops, PatchOp{Op: "remove", Path: pointer + "/" + strconv.Itoa(i)})
	}
}

// escapePointer escapes a key per RFC 6901: '~' becomes "~0", '/' becomes "~1".
func escapePointer(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}
