package walker

// CollectPaths returns the path of every node under root (containers and
// leaves) in depth-first order. The root's empty path is not included.
func CollectPaths(root any) ([]string, error) {
	var paths []string
	w := New(WithNodeHandler(func(_ any, ctx *WalkContext) Action {
		if !ctx.IsRoot() {
			paths = append(paths, ctx.Path)
		}
		return Continue
	}))
	if err := w.Walk(root); err != nil {
		return nil, err
	}
	return paths, nil
}

// CollectLeaves returns a mapping from path to value for every leaf node
// under root.
func CollectLeaves(root any) (map[string]any, error) {
	leaves := make(map[string]any)
	w := New(WithLeafHandler(func(v any, ctx *WalkContext) Action {
		leaves[ctx.Path] = v
		return Continue
	}))
	if err := w.Walk(root); err != nil {
		return nil, err
	}
	return leaves, nil
}

// Find returns the paths of all nodes for which pred returns true.
func Find(root any, pred func(value any, ctx *WalkContext) bool) ([]string, error) {
	var paths []string
	w := New(WithNodeHandler(func(v any, ctx *WalkContext) Action {
		if pred(v, ctx) {
			paths = append(paths, ctx.Path)
		}
		return Continue
	}))
	if err := w.Walk(root); err != nil {
		return nil, err
	}
	return paths, nil
}

// Count returns the number of nodes under root, including the root itself.
func Count(root any) (int, error) {
	n := 0
	w := New(WithNodeHandler(func(_ any, _ *WalkContext) Action {
		n++
		return Continue
	}))
	if err := w.Walk(root); err != nil {
		return 0, err
	}
	return n, nil
}
