// Package walker provides generic traversal over JSON values with visitor
// callbacks.
//
// A Walker visits every node of a value tree in depth-first order, reporting
// each node's path in jsonpath syntax. Handlers control the traversal through
// the returned Action: continue normally, skip the current node's children,
// or stop the walk entirely.
//
//	w := walker.New(
//	    walker.WithNodeHandler(func(v any, ctx *walker.WalkContext) walker.Action {
//	        fmt.Println(ctx.Path)
//	        return walker.Continue
//	    }),
//	)
//	err := w.Walk(doc)
//
// Collectors build on the Walker for the common gathering patterns:
// CollectPaths, CollectLeaves, and Find.
//
// Traversal depth is bounded (default: 100); exceeding the bound returns a
// *jsonerrors.ResourceLimitError rather than overflowing the stack on
// pathological or accidentally cyclic input.
package walker
