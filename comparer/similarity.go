package comparer

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
)

// Similarity returns a [0,1] structural-closeness score between a and b.
//
// Identical values score 1.0. A type mismatch, or one side null while the
// other is not, scores 0.0. Arrays score the mean of pairwise similarity
// aligned by index, with overflow positions on either side contributing 0.
// Objects score the mean over the union of keys, with keys missing on either
// side contributing 0. Primitives score 1 or 0.
func Similarity(a, b any) float64 {
	ka, kb := jsonutil.KindOf(a), jsonutil.KindOf(b)

	if ka == jsonutil.KindNull && kb == jsonutil.KindNull {
		return 1.0
	}
	if ka != kb || ka == jsonutil.KindNull || kb == jsonutil.KindNull {
		return 0.0
	}

	switch ka {
	case jsonutil.KindArray:
		return arraySimilarity(a.([]any), b.([]any))
	case jsonutil.KindObject:
		return objectSimilarity(a.(map[string]any), b.(map[string]any))
	default:
		if jsonutil.DeepEqual(a, b) {
			return 1.0
		}
		return 0.0
	}
}

func arraySimilarity(a, b []any) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	total := 0.0
	for i := 0; i < min(len(a), len(b)); i++ {
		total += Similarity(a[i], b[i])
	}
	// Length overflow on either side contributes 0 per position.
	return total / float64(longest)
}

func objectSimilarity(a, b map[string]any) float64 {
	keys := unionKeys(a, b)
	if len(keys) == 0 {
		return 1.0
	}

	total := 0.0
	for _, k := range keys {
		av, inA := a[k]
		bv, inB := b[k]
		if inA && inB {
			total += Similarity(av, bv)
		}
	}
	return total / float64(len(keys))
}
