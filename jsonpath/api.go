package jsonpath

import (
	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

// Get reads the value at expr. It returns an error for malformed expressions
// and out-of-range array indices; a missing object key reads as nil with no
// error only when the full path short-circuits on a plain read.
func Get(root any, expr string) (any, error) {
	res, err := Evaluate(root, expr, EvalOptions{})
	if err != nil {
		return nil, err
	}
	if !res.Exists {
		return nil, nil
	}
	return res.Value, nil
}

// GetOr reads the value at expr, converting any evaluation failure or missing
// value into fallback. Use this for best-effort reads.
func GetOr(root any, expr string, fallback any) any {
	res, err := Evaluate(root, expr, EvalOptions{})
	if err != nil || !res.Exists || res.Value == nil {
		return fallback
	}
	return res.Value
}

// Has reports whether expr resolves to an existing value in root.
func Has(root any, expr string) bool {
	res, err := Evaluate(root, expr, EvalOptions{})
	return err == nil && res.Exists
}

// Set assigns value at expr, creating missing intermediate containers. The
// root is deep-cloned first; the returned tree is the modified copy and the
// input is left untouched.
func Set(root any, expr string, value any) (any, error) {
	cloned := jsonutil.Clone(root)
	res, err := Evaluate(cloned, expr, EvalOptions{Create: true, Value: value, HasValue: true})
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}

// Delete removes the element at expr. The root is deep-cloned first; the
// returned tree is the modified copy. Deleting a missing terminal element is
// a no-op.
func Delete(root any, expr string) (any, error) {
	cloned := jsonutil.Clone(root)
	res, err := Evaluate(cloned, expr, EvalOptions{Delete: true})
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}

// Move relocates the value at from to to within a clone of root. The moved
// value keeps its identity within the new tree (no additional copy is made
// between the delete and the set).
func Move(root any, from, to string) (any, error) {
	cloned := jsonutil.Clone(root)

	res, err := Evaluate(cloned, from, EvalOptions{})
	if err != nil {
		return nil, err
	}
	if !res.Exists {
		return nil, notFound(from)
	}
	moved := res.Value

	delRes, err := Evaluate(cloned, from, EvalOptions{Delete: true})
	if err != nil {
		return nil, err
	}

	setRes, err := Evaluate(delRes.Root, to, EvalOptions{Create: true, Value: moved, HasValue: true})
	if err != nil {
		return nil, err
	}
	return setRes.Root, nil
}

// Copy duplicates the value at from into to within a clone of root. The
// copied value is deep-cloned so the two locations share no structure.
func Copy(root any, from, to string) (any, error) {
	cloned := jsonutil.Clone(root)

	res, err := Evaluate(cloned, from, EvalOptions{})
	if err != nil {
		return nil, err
	}
	if !res.Exists {
		return nil, notFound(from)
	}

	setRes, err := Evaluate(cloned, to, EvalOptions{Create: true, Value: jsonutil.Clone(res.Value), HasValue: true})
	if err != nil {
		return nil, err
	}
	return setRes.Root, nil
}

// GetAllPaths returns the path of every node in root (containers and leaves),
// in depth-first order. The root itself is not included.
func GetAllPaths(root any) []string {
	var paths []string
	collectPaths(root, "", &paths)
	return paths
}

// FindPaths returns the paths of all nodes for which pred returns true,
// in depth-first order. The root is visited with an empty path.
func FindPaths(root any, pred func(path string, value any) bool) []string {
	var paths []string
	findPaths(root, "", pred, &paths)
	return paths
}

func collectPaths(node any, prefix string, paths *[]string) {
	switch v := node.(type) {
	case map[string]any:
		for _, k := range jsonutil.SortedKeys(v) {
			child := JoinKey(prefix, k)
			*paths = append(*paths, child)
			collectPaths(v[k], child, paths)
		}
	case []any:
		for i, elem := range v {
			child := JoinIndex(prefix, i)
			*paths = append(*paths, child)
			collectPaths(elem, child, paths)
		}
	}
}

func findPaths(node any, prefix string, pred func(string, any) bool, paths *[]string) {
	if pred(prefix, node) {
		*paths = append(*paths, prefix)
	}
	switch v := node.(type) {
	case map[string]any:
		for _, k := range jsonutil.SortedKeys(v) {
			findPaths(v[k], JoinKey(prefix, k), pred, paths)
		}
	case []any:
		for i, elem := range v {
			findPaths(elem, JoinIndex(prefix, i), pred, paths)
		}
	}
}

func notFound(expr string) error {
	return &jsonerrors.PathNotFoundError{
		Expression: expr,
		Message:    "source path does not resolve",
	}
}
