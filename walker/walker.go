package walker

import (
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// DefaultMaxDepth bounds traversal depth when no explicit limit is configured.
const DefaultMaxDepth = 100

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// WalkContext provides contextual information about the current node being visited.
type WalkContext struct {
	// Path is the full path to the current node in jsonpath syntax.
	// Empty for the root node.
	Path string

	// Key is the map key of the current node when its parent is an object.
	Key string

	// Index is the array index of the current node when its parent is an
	// array; -1 otherwise.
	Index int

	// Depth is the nesting depth of the current node (root is 0).
	Depth int

	// Parent is the enclosing container, nil for the root node.
	Parent any
}

// IsRoot reports whether the current node is the walk root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Parent == nil
}

// NodeHandler is called for every node (containers and leaves).
type NodeHandler func(value any, ctx *WalkContext) Action

// LeafHandler is called only for leaf nodes (null, bool, number, string).
type LeafHandler func(value any, ctx *WalkContext) Action

// ObjectHandler is called for each object node before its members.
type ObjectHandler func(obj map[string]any, ctx *WalkContext) Action

// ArrayHandler is called for each array node before its elements.
type ArrayHandler func(arr []any, ctx *WalkContext) Action

// PostVisitHandler is called for container nodes after all their children
// have been visited.
type PostVisitHandler func(value any, ctx *WalkContext)

// Walker traverses JSON values and calls handlers for each node.
type Walker struct {
	onNode      NodeHandler
	onLeaf      LeafHandler
	onObject    ObjectHandler
	onArray     ArrayHandler
	onPostVisit PostVisitHandler
	maxDepth    int
}

// Option configures a Walker.
type Option func(*Walker)

// WithNodeHandler registers a handler called for every node.
func WithNodeHandler(h NodeHandler) Option {
	return func(w *Walker) { w.onNode = h }
}

// WithLeafHandler registers a handler called for leaf nodes only.
func WithLeafHandler(h LeafHandler) Option {
	return func(w *Walker) { w.onLeaf = h }
}

// WithObjectHandler registers a handler called for object nodes.
func WithObjectHandler(h ObjectHandler) Option {
	return func(w *Walker) { w.onObject = h }
}

// WithArrayHandler registers a handler called for array nodes.
func WithArrayHandler(h ArrayHandler) Option {
	return func(w *Walker) { w.onArray = h }
}

// WithPostVisit registers a handler called for containers after their children.
func WithPostVisit(h PostVisitHandler) Option {
	return func(w *Walker) { w.onPostVisit = h }
}

// WithMaxDepth overrides the traversal depth limit.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) { w.maxDepth = depth }
}

// New creates a Walker with the given options.
func New(opts ...Option) *Walker {
	w := &Walker{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk traverses root depth-first. Object members are visited in ascending
// key order so walks are deterministic.
func (w *Walker) Walk(root any) error {
	ctx := &WalkContext{Index: -1}
	_, err := w.walk(root, ctx)
	return err
}

func (w *Walker) walk(node any, ctx *WalkContext) (Action, error) {
	if ctx.Depth > w.maxDepth {
		return Stop, &jsonerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(w.maxDepth),
			Path:         ctx.Path,
		}
	}

	if w.onNode != nil {
		if act := w.onNode(node, ctx); act != Continue {
			return act, nil
		}
	}

	switch v := node.(type) {
	case map[string]any:
		if w.onObject != nil {
			if act := w.onObject(v, ctx); act != Continue {
				return act, nil
			}
		}
		for _, k := range jsonutil.SortedKeys(v) {
			childCtx := &WalkContext{
				Path:   jsonpath.JoinKey(ctx.Path, k),
				Key:    k,
				Index:  -1,
				Depth:  ctx.Depth + 1,
				Parent: v,
			}
			act, err := w.walk(v[k], childCtx)
			if err != nil {
				return Stop, err
			}
			if act == Stop {
				return Stop, nil
			}
		}
		if w.onPostVisit != nil {
			w.onPostVisit(v, ctx)
		}

	case []any:
		if w.onArray != nil {
			if act := w.onArray(v, ctx); act != Continue {
				return act, nil
			}
		}
		for i, elem := range v {
			childCtx := &WalkContext{
				Path:   jsonpath.JoinIndex(ctx.Path, i),
				Index:  i,
				Depth:  ctx.Depth + 1,
				Parent: v,
			}
			act, err := w.walk(elem, childCtx)
			if err != nil {
				return Stop, err
			}
			if act == Stop {
				return Stop, nil
			}
		}
		if w.onPostVisit != nil {
			w.onPostVisit(v, ctx)
		}

	default:
		if w.onLeaf != nil {
			if act := w.onLeaf(node, ctx); act != Continue {
				return act, nil
			}
		}
	}

	return Continue, nil
}
