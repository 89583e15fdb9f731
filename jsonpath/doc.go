// Package jsonpath parses and evaluates path expressions over in-memory JSON
// values. It is the foundational addressing layer for jsontools: the compare,
// merge, transform, validate, and generate engines all report locations using
// this package's path syntax, so a reported path can be fed straight back into
// Get or Set.
//
// # Path Syntax
//
// A path expression is a chain of segments. Identifier segments are joined
// with '.'; bracket segments need no leading dot:
//
//	user.name
//	items[0].id
//	items[-1]
//	config["dotted.key"]['single.quoted']
//
// Bracket content that is all digits (optionally signed) is a numeric index;
// negative indices address from the end of the array. Quoted bracket content
// ('...' or "...") is a literal key with \' and \" escape support. Any other
// bracket content is treated as a literal key.
//
// # Evaluation
//
// The low-level Evaluate operates on the given root in place and supports
// create, delete, and assignment semantics via EvalOptions. The derived
// operations Get, Set, Delete, Has, Move, and Copy compose Evaluate; the
// mutating wrappers deep-clone the root first and return the new root, so
// caller-supplied inputs are never modified.
//
//	doc := map[string]any{"a": map[string]any{"b": []any{1.0, 2.0, 3.0}}}
//
//	v, err := jsonpath.Get(doc, "a.b[-1]")   // 3.0
//	doc2, err := jsonpath.Set(doc, "c[0].d", "x") // doc untouched
//
// # Failure Semantics
//
// Malformed expressions surface *jsonerrors.PathSyntaxError. Out-of-bounds
// array indices surface *jsonerrors.PathRangeError unless create mode extends
// the array. Mutations through a missing intermediate link without create mode
// surface *jsonerrors.PathNotFoundError; plain reads of missing object keys
// return a non-existent result instead of failing. GetOr converts any
// evaluation failure into the supplied fallback for best-effort reads.
package jsonpath
