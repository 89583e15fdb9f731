package jsonpath

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

// EvalOptions controls how Evaluate traverses and modifies the value.
type EvalOptions struct {
	// Create materializes missing intermediate containers while walking.
	// The container kind is decided by the next segment: a numeric segment
	// creates an array, a key segment creates an object. Arrays indexed
	// beyond their bounds are extended with null placeholders.
	Create bool

	// Delete removes the addressed element when the path resolves.
	// Arrays are spliced (later elements shift down); object keys are
	// deleted. Deleting an element that does not exist is a no-op.
	Delete bool

	// Value is assigned at the addressed location when HasValue is true.
	Value any

	// HasValue distinguishes assigning a nil Value from not assigning at all.
	HasValue bool
}

func (o EvalOptions) mutating() bool {
	return o.Delete || o.HasValue
}

// Result describes the outcome of evaluating a path against a value.
type Result struct {
	// Value is the value at the addressed location (the newly assigned
	// value after an assignment; nil after a delete or a miss).
	Value any

	// Parent is the container holding the terminal segment, when reached.
	Parent any

	// Key is the resolved terminal segment: a string for objects, a
	// non-negative int for arrays. Nil for the root path.
	Key any

	// Exists reports whether the path resolved to an existing value
	// (false after a delete, and for any missing link on a plain read).
	Exists bool

	// Root is the value tree after evaluation. Structural changes such as
	// array extension can replace the root, so callers performing
	// mutations must keep using Root rather than the value they passed in.
	Root any
}

// Evaluate walks the path against root, applying the create, delete, and
// assignment semantics selected by opts. The root is modified in place where
// possible; see Result.Root for the tree after evaluation.
//
// Use the derived operations (Get, Set, Delete, Has, Move, Copy) for the
// common cases; they clone before mutating so caller inputs stay untouched.
func (p *Path) Evaluate(root any, opts EvalOptions) (*Result, error) {
	if len(p.segments) == 0 {
		return p.evalRoot(root, opts)
	}

	newRoot, res, err := p.eval(root, p.segments, "", opts)
	if err != nil {
		return nil, err
	}
	res.Root = newRoot
	return res, nil
}

// Evaluate parses expr and evaluates it against root in one call.
func Evaluate(root any, expr string, opts EvalOptions) (*Result, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return p.Evaluate(root, opts)
}

func (p *Path) evalRoot(root any, opts EvalOptions) (*Result, error) {
	if opts.Delete {
		return nil, &jsonerrors.ConfigError{
			Option:  "Delete",
			Message: "cannot delete the root value",
		}
	}
	if opts.HasValue {
		return &Result{Value: opts.Value, Exists: true, Root: opts.Value}, nil
	}
	return &Result{Value: root, Exists: true, Root: root}, nil
}

// eval processes the remaining segments against node. It returns the node
// after any structural modification so the caller can write it back into the
// enclosing container.
func (p *Path) eval(node any, segs []Segment, prefix string, opts EvalOptions) (any, *Result, error) {
	switch seg := segs[0].(type) {
	case KeySegment:
		return p.evalKey(node, seg, segs[1:], prefix, opts)
	case IndexSegment:
		return p.evalIndex(node, seg, segs[1:], prefix, opts)
	default:
		return nil, nil, &jsonerrors.PathSyntaxError{
			Expression: p.raw,
			Message:    "unsupported segment type " + segs[0].segmentType(),
		}
	}
}

func (p *Path) evalKey(node any, seg KeySegment, rest []Segment, prefix string, opts EvalOptions) (any, *Result, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		if node == nil && opts.Create {
			obj = make(map[string]any)
			node = obj
		} else {
			return nil, nil, p.mismatchError(prefix, seg.Key, node)
		}
	}

	here := JoinKey(prefix, seg.Key)
	child, exists := obj[seg.Key]

	if len(rest) == 0 {
		switch {
		case opts.Delete:
			delete(obj, seg.Key)
			return node, &Result{Parent: obj, Key: seg.Key, Exists: false}, nil
		case opts.HasValue:
			obj[seg.Key] = opts.Value
			return node, &Result{Value: opts.Value, Parent: obj, Key: seg.Key, Exists: true}, nil
		default:
			return node, &Result{Value: child, Parent: obj, Key: seg.Key, Exists: exists}, nil
		}
	}

	if !exists {
		if opts.Create {
			child = p.materialize(rest[0])
		} else if opts.mutating() {
			return nil, nil, &jsonerrors.PathNotFoundError{
				Expression: p.raw,
				Path:       prefix,
				Key:        seg.Key,
			}
		} else {
			return node, &Result{Exists: false}, nil
		}
	}

	newChild, res, err := p.eval(child, rest, here, opts)
	if err != nil {
		return nil, nil, err
	}
	obj[seg.Key] = newChild
	return node, res, nil
}

func (p *Path) evalIndex(node any, seg IndexSegment, rest []Segment, prefix string, opts EvalOptions) (any, *Result, error) {
	arr, ok := node.([]any)
	if !ok {
		if node == nil && opts.Create {
			arr = []any{}
		} else {
			return nil, nil, p.mismatchError(prefix, "", node)
		}
	}

	idx := seg.Index
	if idx < 0 {
		idx += len(arr)
	}

	if idx < 0 || idx >= len(arr) {
		if opts.Create && idx >= len(arr) {
			// Extend with null placeholders up to the requested index.
			extended := make([]any, idx+1)
			copy(extended, arr)
			arr = extended
		} else if opts.Delete && len(rest) == 0 {
			return node, &Result{Parent: arr, Key: idx, Exists: false}, nil
		} else {
			return nil, nil, &jsonerrors.PathRangeError{
				Expression: p.raw,
				Path:       prefix,
				Index:      seg.Index,
				Length:     len(arr),
			}
		}
	}

	here := JoinIndex(prefix, idx)

	if len(rest) == 0 {
		switch {
		case opts.Delete:
			spliced := append(arr[:idx:idx], arr[idx+1:]...)
			return spliced, &Result{Parent: spliced, Key: idx, Exists: false}, nil
		case opts.HasValue:
			arr[idx] = opts.Value
			return arr, &Result{Value: opts.Value, Parent: arr, Key: idx, Exists: true}, nil
		default:
			return arr, &Result{Value: arr[idx], Parent: arr, Key: idx, Exists: true}, nil
		}
	}

	child := arr[idx]
	if child == nil && opts.Create {
		child = p.materialize(rest[0])
	}

	newChild, res, err := p.eval(child, rest, here, opts)
	if err != nil {
		return nil, nil, err
	}
	arr[idx] = newChild
	return arr, res, nil
}

// materialize builds the container a missing link needs for the next segment.
func (p *Path) materialize(next Segment) any {
	if _, isIndex := next.(IndexSegment); isIndex {
		return []any{}
	}
	return make(map[string]any)
}

func (p *Path) mismatchError(prefix, key string, node any) error {
	kind := jsonutil.KindOf(node).String()
	msg := "cannot address index in " + kind + " value"
	if key != "" {
		msg = "cannot address key " + key + " in " + kind + " value"
	}
	return &jsonerrors.PathNotFoundError{
		Expression: p.raw,
		Path:       prefix,
		Key:        key,
		Message:    msg,
	}
}
