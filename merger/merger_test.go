package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

func TestMergeDeepObjects(t *testing.T) {
	target := map[string]any{
		"name": "svc",
		"cfg":  map[string]any{"host": "localhost", "port": 8080.0},
	}
	source := map[string]any{
		"cfg":  map[string]any{"port": 9090.0, "tls": true},
		"tags": []any{"prod"},
	}

	merged, err := Merge(target, source)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name": "svc",
		"cfg":  map[string]any{"host": "localhost", "port": 9090.0, "tls": true},
		"tags": []any{"prod"},
	}, merged)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	target := map[string]any{"cfg": map[string]any{"a": 1.0}}
	source := map[string]any{"cfg": map[string]any{"b": 2.0}}

	merged, err := Merge(target, source)
	require.NoError(t, err)

	merged.(map[string]any)["cfg"].(map[string]any)["a"] = 99.0
	assert.Equal(t, 1.0, target["cfg"].(map[string]any)["a"])
	assert.Equal(t, map[string]any{"cfg": map[string]any{"b": 2.0}}, source)
}

func TestMergeShallow(t *testing.T) {
	target := map[string]any{
		"cfg":  map[string]any{"host": "localhost", "port": 8080.0},
		"keep": 1.0,
	}
	source := map[string]any{
		"cfg": map[string]any{"tls": true},
	}

	merged, err := Merge(target, source, WithStrategy(StrategyShallow))
	require.NoError(t, err)

	// Top-level keys merge; nested objects replace wholesale.
	assert.Equal(t, map[string]any{
		"cfg":  map[string]any{"tls": true},
		"keep": 1.0,
	}, merged)
}

func TestMergeNilSemantics(t *testing.T) {
	merged, err := Merge(map[string]any{"a": 1.0}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, merged)

	merged, err = Merge(nil, map[string]any{"b": 2.0})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": 2.0}, merged)

	// A nil value inside the source does not erase the target value.
	merged, err = Merge(map[string]any{"a": 1.0}, map[string]any{"a": nil})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, merged)
}

func TestMergeArrayStrategies(t *testing.T) {
	target := map[string]any{"a": []any{1.0, 2.0}}
	source := map[string]any{"a": []any{2.0, 3.0}}

	tests := []struct {
		name     string
		strategy ArrayStrategy
		want     []any
	}{
		{name: "concat", strategy: ArrayConcat, want: []any{1.0, 2.0, 2.0, 3.0}},
		{name: "union", strategy: ArrayUnion, want: []any{1.0, 2.0, 3.0}},
		{name: "intersection", strategy: ArrayIntersection, want: []any{2.0}},
		{name: "replace", strategy: ArrayReplace, want: []any{2.0, 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(target, source, WithArrayStrategy(tt.strategy))
			require.NoError(t, err)
			assert.Equal(t, tt.want, merged.(map[string]any)["a"])
		})
	}
}

func TestMergeArrayUnionStructural(t *testing.T) {
	// Structurally equal objects deduplicate even with different key order
	// in the literal.
	target := []any{map[string]any{"x": 1.0, "y": 2.0}}
	source := []any{map[string]any{"y": 2.0, "x": 1.0}, map[string]any{"z": 3.0}}

	merged, err := Merge(target, source, WithArrayStrategy(ArrayUnion))
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"x": 1.0, "y": 2.0},
		map[string]any{"z": 3.0},
	}, merged)
}

func TestMergeArrayDeep(t *testing.T) {
	target := map[string]any{"xs": []any{
		map[string]any{"id": 1.0, "keep": true},
		map[string]any{"id": 2.0},
	}}
	source := map[string]any{"xs": []any{
		map[string]any{"name": "first"},
		map[string]any{"id": 2.0, "name": "second"},
		map[string]any{"id": 3.0},
	}}

	merged, err := Merge(target, source, WithArrayStrategy(ArrayDeep))
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": 1.0, "keep": true, "name": "first"},
		map[string]any{"id": 2.0, "name": "second"},
		map[string]any{"id": 3.0},
	}, merged.(map[string]any)["xs"])
}

func TestMergeConflictStrategies(t *testing.T) {
	target := map[string]any{"a": 1.0}
	source := map[string]any{"a": "x"}

	merged, err := Merge(target, source, WithConflictStrategy(ConflictSource))
	require.NoError(t, err)
	assert.Equal(t, "x", merged.(map[string]any)["a"])

	merged, err = Merge(target, source, WithConflictStrategy(ConflictTarget))
	require.NoError(t, err)
	assert.Equal(t, 1.0, merged.(map[string]any)["a"])

	_, err = Merge(target, source, WithConflictStrategy(ConflictThrow))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrMerge)

	var mergeErr *jsonerrors.MergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Equal(t, "a", mergeErr.Path)
	assert.Equal(t, 1.0, mergeErr.TargetValue)
	assert.Equal(t, "x", mergeErr.SourceValue)
}

func TestMergeThrowReportsNestedPath(t *testing.T) {
	target := map[string]any{"outer": map[string]any{"inner": true}}
	source := map[string]any{"outer": map[string]any{"inner": false}}

	_, err := Merge(target, source, WithConflictStrategy(ConflictThrow))
	var mergeErr *jsonerrors.MergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Equal(t, "outer.inner", mergeErr.Path)
}

func TestMergeEqualScalarsAreNotConflicts(t *testing.T) {
	merged, err := Merge(
		map[string]any{"a": 1, "b": "x"},
		map[string]any{"a": 1.0, "b": "x"},
		WithConflictStrategy(ConflictThrow),
	)
	require.NoError(t, err)
	assert.Equal(t, "x", merged.(map[string]any)["b"])
}

func TestMergeIdempotent(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": 1.0},
		"c": "x",
	}

	merged, err := Merge(doc, doc, WithArrayStrategy(ArrayUnion))
	require.NoError(t, err)
	assert.Equal(t, doc, merged)
}

func TestMergeAll(t *testing.T) {
	docs := []any{
		map[string]any{"a": 1.0},
		map[string]any{"b": 2.0},
		map[string]any{"a": 9.0, "c": 3.0},
	}

	merged, err := MergeAll(docs)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 9.0, "b": 2.0, "c": 3.0}, merged)

	empty, err := MergeAll(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)

	single, err := MergeAll([]any{map[string]any{"only": true}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"only": true}, single)
}

func TestMergeDepthLimit(t *testing.T) {
	build := func(leaf any) map[string]any {
		root := map[string]any{}
		cur := root
		for i := 0; i < 6; i++ {
			next := map[string]any{}
			cur["n"] = next
			cur = next
		}
		cur["leaf"] = leaf
		return root
	}

	_, err := Merge(build(1.0), build(2.0), WithMaxDepth(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrResourceLimit)

	var limitErr *jsonerrors.ResourceLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "merge depth", limitErr.ResourceType)
	assert.Equal(t, int64(3), limitErr.Limit)
}

func TestMergeOptionValidation(t *testing.T) {
	_, err := Merge(nil, nil, WithStrategy("sideways"))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Merge(nil, nil, WithArrayStrategy("zip"))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Merge(nil, nil, WithConflictStrategy("coin-flip"))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Merge(nil, nil, WithMaxDepth(0))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Merge(nil, nil, WithResolver(nil))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)
}

func TestNewAppliesDefaults(t *testing.T) {
	m := New(Config{})
	assert.Equal(t, StrategyDeep, m.Config.Strategy)
	assert.Equal(t, ArrayConcat, m.Config.ArrayStrategy)
	assert.Equal(t, ConflictSource, m.Config.ConflictStrategy)
	assert.Equal(t, DefaultMaxDepth, m.Config.MaxDepth)
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) With(_ ...any) jsonpath.Logger { return l }

func TestMergeWithLogger(t *testing.T) {
	logger := &recordingLogger{}

	merged, err := Merge(
		map[string]any{"v": 1.0},
		map[string]any{"v": 2.0},
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": 2.0}, merged)
	assert.Contains(t, logger.messages, "resolving merge conflict")
}

func TestMergeWithNilLogger(t *testing.T) {
	_, err := Merge(nil, nil, WithLogger(nil))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)
}

func TestMergeArrayIntersectionKeepsTargetDuplicates(t *testing.T) {
	target := map[string]any{"a": []any{1.0, 2.0, 2.0, 3.0}}
	source := map[string]any{"a": []any{2.0, 4.0}}

	merged, err := Merge(target, source, WithArrayStrategy(ArrayIntersection))
	require.NoError(t, err)
	assert.Equal(t, []any{2.0, 2.0}, merged.(map[string]any)["a"])
}

func TestMergeArrayStrategiesAreOrderSensitive(t *testing.T) {
	a := map[string]any{"xs": []any{1.0, 2.0, 2.0}}
	b := map[string]any{"xs": []any{2.0, 3.0}}

	// Union keeps first-seen order, so swapping the arguments reorders
	// the result.
	ab, err := Merge(a, b, WithArrayStrategy(ArrayUnion))
	require.NoError(t, err)
	ba, err := Merge(b, a, WithArrayStrategy(ArrayUnion))
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, ab.(map[string]any)["xs"])
	assert.Equal(t, []any{2.0, 3.0, 1.0}, ba.(map[string]any)["xs"])

	// Intersection keeps the target's elements, duplicates included, so
	// swapping the arguments changes the element count.
	ab, err = Merge(a, b, WithArrayStrategy(ArrayIntersection))
	require.NoError(t, err)
	ba, err = Merge(b, a, WithArrayStrategy(ArrayIntersection))
	require.NoError(t, err)
	assert.Equal(t, []any{2.0, 2.0}, ab.(map[string]any)["xs"])
	assert.Equal(t, []any{2.0}, ba.(map[string]any)["xs"])
}
