package comparer

import (
	"fmt"
	"math"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// DefaultMaxDepth bounds comparison depth when no explicit limit is configured.
const DefaultMaxDepth = 100

// DiffType indicates the kind of difference found at a path.
type DiffType string

const (
	// DiffTypeMismatch indicates the two values have different JSON types.
	DiffTypeMismatch DiffType = "type-mismatch"
	// DiffValueMismatch indicates two primitives of the same type differ.
	DiffValueMismatch DiffType = "value-mismatch"
	// DiffMissingInA indicates a key or element present only in the second value.
	DiffMissingInA DiffType = "missing-in-a"
	// DiffMissingInB indicates a key or element present only in the first value.
	DiffMissingInB DiffType = "missing-in-b"
	// DiffLengthMismatch indicates two arrays differ in length.
	DiffLengthMismatch DiffType = "length-mismatch"
	// DiffMissingElement indicates an element of the first array has no match
	// in the second (unordered comparison).
	DiffMissingElement DiffType = "missing-element"
	// DiffExtraElement indicates an element of the second array has no match
	// in the first (unordered comparison).
	DiffExtraElement DiffType = "extra-element"
)

// Difference represents a single difference between two JSON values.
type Difference struct {
	// Path is the location of the difference in jsonpath syntax.
	Path string
	// Type indicates the kind of difference.
	Type DiffType
	// ValueA is the value on the first side (nil when missing there).
	ValueA any
	// ValueB is the value on the second side (nil when missing there).
	ValueB any
	// Detail is an optional human-readable elaboration.
	Detail string
}

// String returns a formatted string representation of the difference.
func (d Difference) String() string {
	path := d.Path
	if path == "" {
		path = "$"
	}
	if d.Detail != "" {
		return fmt.Sprintf("%s [%s]: %s", path, d.Type, d.Detail)
	}
	return fmt.Sprintf("%s [%s]: %v != %v", path, d.Type, d.ValueA, d.ValueB)
}

// CompareResult contains the results of comparing two JSON values.
type CompareResult struct {
	// Equal is true if no differences were found.
	Equal bool
	// Differences contains every detected difference.
	Differences []Difference
	// Similarity is the [0,1] structural-closeness score of the two values.
	Similarity float64
	// DifferenceCount is the total number of differences.
	DifferenceCount int
}

// Comparer handles deep comparison of JSON values.
type Comparer struct {
	// Tolerance treats two numeric leaves as equal when their absolute
	// difference is at most this value. Zero means exact comparison.
	Tolerance float64
	// MaxDepth bounds the comparison recursion. Zero selects DefaultMaxDepth.
	MaxDepth int
}

// New creates a new Comparer with default settings.
func New() *Comparer {
	return &Comparer{MaxDepth: DefaultMaxDepth}
}

// Compare compares a and b with default settings.
func Compare(a, b any) (*CompareResult, error) {
	return New().Compare(a, b)
}

// CompareWithTolerance compares a and b treating numeric leaves within
// tolerance as equal. All other types use exact equality.
func CompareWithTolerance(a, b any, tolerance float64) (*CompareResult, error) {
	c := New()
	c.Tolerance = tolerance
	return c.Compare(a, b)
}

// DeepEqual reports whether a and b are structurally equal. Numbers are
// compared by value regardless of their Go kind; object key order is
// irrelevant.
func DeepEqual(a, b any) bool {
	return jsonutil.DeepEqual(a, b)
}

// Compare walks both values and returns the full difference list along with
// a similarity score. It never stops at the first difference.
func (c *Comparer) Compare(a, b any) (*CompareResult, error) {
	result := &CompareResult{}
	if err := c.diff(a, b, "", 0, &result.Differences); err != nil {
		return nil, err
	}
	result.Equal = len(result.Differences) == 0
	result.DifferenceCount = len(result.Differences)
	result.Similarity = Similarity(a, b)
	return result, nil
}

func (c *Comparer) maxDepth() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxDepth
}

func (c *Comparer) diff(a, b any, path string, depth int, out *[]Difference) error {
	if depth > c.maxDepth() {
		return &jsonerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(c.maxDepth()),
			Path:         path,
		}
	}

	ka, kb := jsonutil.KindOf(a), jsonutil.KindOf(b)
	if ka != kb {
		*out = append(*out, Difference{
			Path:   path,
			Type:   DiffTypeMismatch,
			ValueA: a,
			ValueB: b,
			Detail: fmt.Sprintf("%s != %s", ka, kb),
		})
		return nil
	}

	switch ka {
	case jsonutil.KindArray:
		return c.diffArrays(a.([]any), b.([]any), path, depth, out)
	case jsonutil.KindObject:
		return c.diffObjects(a.(map[string]any), b.(map[string]any), path, depth, out)
	case jsonutil.KindNumber:
		na, _ := jsonutil.Number(a)
		nb, _ := jsonutil.Number(b)
		if math.Abs(na-nb) > c.Tolerance {
			*out = append(*out, Difference{Path: path, Type: DiffValueMismatch, ValueA: a, ValueB: b})
		}
	case jsonutil.KindNull:
		// Both null: equal.
	default:
		if a != b {
			*out = append(*out, Difference{Path: path, Type: DiffValueMismatch, ValueA: a, ValueB: b})
		}
	}
	return nil
}

func (c *Comparer) diffArrays(a, b []any, path string, depth int, out *[]Difference) error {
	if len(a) != len(b) {
		*out = append(*out, Difference{
			Path:   path,
			Type:   DiffLengthMismatch,
			ValueA: len(a),
			ValueB: len(b),
			Detail: fmt.Sprintf("length %d != %d", len(a), len(b)),
		})
	}

	shared := min(len(a), len(b))
	for i := 0; i < shared; i++ {
		if err := c.diff(a[i], b[i], jsonpath.JoinIndex(path, i), depth+1, out); err != nil {
			return err
		}
	}

	// Per-index gaps on whichever side is longer.
	for i := shared; i < len(a); i++ {
		*out = append(*out, Difference{
			Path:   jsonpath.JoinIndex(path, i),
			Type:   DiffMissingInB,
			ValueA: a[i],
		})
	}
	for i := shared; i < len(b); i++ {
		*out = append(*out, Difference{
			Path:   jsonpath.JoinIndex(path, i),
			Type:   DiffMissingInA,
			ValueB: b[i],
		})
	}
	return nil
}

func (c *Comparer) diffObjects(a, b map[string]any, path string, depth int, out *[]Difference) error {
	for _, k := range unionKeys(a, b) {
		av, inA := a[k]
		bv, inB := b[k]
		childPath := jsonpath.JoinKey(path, k)

		switch {
		case !inA:
			*out = append(*out, Difference{Path: childPath, Type: DiffMissingInA, ValueB: bv})
		case !inB:
			*out = append(*out, Difference{Path: childPath, Type: DiffMissingInB, ValueA: av})
		default:
			if err := c.diff(av, bv, childPath, depth+1, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// unionKeys returns the sorted union of both key sets.
func unionKeys(a, b map[string]any) []string {
	merged := make(map[string]any, len(a)+len(b))
	for k := range a {
		merged[k] = nil
	}
	for k := range b {
		merged[k] = nil
	}
	return jsonutil.SortedKeys(merged)
}
