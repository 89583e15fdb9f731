package merger

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// ConflictType classifies a merge conflict.
type ConflictType string

const (
	// ConflictTypeMismatch marks a conflict between different JSON types.
	ConflictTypeMismatch ConflictType = "type-mismatch"
	// ConflictValueMismatch marks a conflict between unequal scalars of
	// the same type.
	ConflictValueMismatch ConflictType = "value-mismatch"
)

// Conflict describes one location where a deep merge of target and source
// would have to choose a winner.
type Conflict struct {
	// Path locates the conflict in path-engine syntax; empty means root.
	Path string
	// Type classifies the conflict.
	Type ConflictType
	// TargetValue is the value on the target side.
	TargetValue any
	// SourceValue is the value on the source side.
	SourceValue any
}

// CheckMergeConflicts previews the conflicts a deep merge of target and
// source would encounter, without performing the merge. Arrays are treated
// as atomic values here: differing arrays at the same path report a single
// value-mismatch rather than element diffs, since every array strategy can
// combine them without choosing a winner.
func CheckMergeConflicts(target, source any) ([]Conflict, error) {
	var conflicts []Conflict
	if err := checkConflicts(target, source, "", 0, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}

func checkConflicts(target, source any, path string, depth int, conflicts *[]Conflict) error {
	if depth > DefaultMaxDepth {
		return &jsonerrors.ResourceLimitError{
			ResourceType: "merge depth",
			Limit:        int64(DefaultMaxDepth),
			Actual:       int64(depth),
			Path:         path,
		}
	}

	if target == nil || source == nil {
		return nil
	}

	kt, ks := jsonutil.KindOf(target), jsonutil.KindOf(source)
	if kt != ks {
		*conflicts = append(*conflicts, Conflict{
			Path:        path,
			Type:        ConflictTypeMismatch,
			TargetValue: target,
			SourceValue: source,
		})
		return nil
	}

	switch kt {
	case jsonutil.KindObject:
		to, so := target.(map[string]any), source.(map[string]any)
		for _, k := range jsonutil.SortedKeys(so) {
			tv, exists := to[k]
			if !exists {
				continue
			}
			if err := checkConflicts(tv, so[k], jsonpath.JoinKey(path, k), depth+1, conflicts); err != nil {
				return err
			}
		}
		return nil

	case jsonutil.KindArray, jsonutil.KindNumber, jsonutil.KindString, jsonutil.KindBool:
		if !jsonutil.DeepEqual(target, source) {
			*conflicts = append(*conflicts, Conflict{
				Path:        path,
				Type:        ConflictValueMismatch,
				TargetValue: target,
				SourceValue: source,
			})
		}
		return nil

	default:
		return nil
	}
}

// MergeWithPriority merges documents left to right where the first non-null
// value for any path wins. Later documents only contribute keys the earlier
// ones lack; nested objects still merge key by key.
func MergeWithPriority(documents []any, opts ...Option) (any, error) {
	opts = append(append([]Option{}, opts...), WithConflictStrategy(ConflictPriority))
	return MergeAll(documents, opts...)
}

// MergeWithResolver merges target and source deeply, consulting resolver for
// every conflict. Conflicts the resolver declines fall back to source-wins.
func MergeWithResolver(target, source any, resolver ResolverFunc) (any, error) {
	return Merge(target, source, WithResolver(resolver))
}
