// Package merger combines JSON documents into a single result.
//
// The merger never mutates its inputs: every merge clones the values it takes
// from either side and returns a fresh document. Behavior is controlled by a
// Config describing the merge strategy (deep or shallow), how arrays combine
// (concat, union, intersection, replace, or element-wise deep merge), and how
// conflicting scalar values resolve (source wins, target wins, or raise a
// MergeError naming the conflicting path).
//
// Basic usage with functional options:
//
//	merged, err := merger.Merge(target, source,
//	    merger.WithArrayStrategy(merger.ArrayUnion),
//	    merger.WithConflictStrategy(merger.ConflictThrow),
//	)
//
// Multi-document merges are available through MergeAll, which folds documents
// left to right, and MergeWithPriority, which orders documents by an explicit
// priority so higher-priority sources win conflicts regardless of argument
// order. CheckMergeConflicts previews the conflicts a merge would encounter
// without performing it.
//
// Recursion into nested structures is bounded by Config.MaxDepth; exceeding
// it returns a jsonerrors.ResourceLimitError rather than risking a stack
// overflow on adversarial inputs.
package merger
