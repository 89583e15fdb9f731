// Package transformer reshapes JSON documents.
//
// Transform composes three stages in a fixed order: a per-node map callback,
// a per-node filter callback (members for which it returns false are removed
// from arrays and omitted from objects), and an ordered list of declarative
// rules (set, delete, rename, transform), each optionally guarded by a
// Condition evaluated against the document through the path engine.
//
//	result, err := transformer.Transform(doc,
//	    transformer.WithMapFunc(redactSecrets),
//	    transformer.WithRules(
//	        transformer.Rule{Op: transformer.RuleSet, Path: "meta.processed", Value: true},
//	    ),
//	)
//
// The package also provides structural primitives: Flatten and Unflatten
// convert between nested objects and delimiter-joined flat keys, GroupBy
// partitions arrays into keyed buckets, and PickKeys, OmitKeys, RenameKeys,
// and RenameKeysCase reshape single object levels. Map, Filter, and Reduce
// are slice helpers whose callback failures are wrapped in a
// jsonerrors.TransformError carrying the offending index.
//
// Transform clones its input by default; callbacks therefore never observe
// or damage caller-owned data. Partial results are discarded on any error.
package transformer
