package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": []any{1.0, 2.0, 3.0},
		},
		"name": "Ada",
		"meta": map[string]any{
			"x.y": "dotted",
		},
	}
}

func TestEvaluateRead(t *testing.T) {
	doc := sampleDoc()

	tests := []struct {
		name       string
		expr       string
		wantValue  any
		wantExists bool
	}{
		{name: "nested key", expr: "a.b", wantValue: []any{1.0, 2.0, 3.0}, wantExists: true},
		{name: "array index", expr: "a.b[1]", wantValue: 2.0, wantExists: true},
		{name: "negative index from end", expr: "a.b[-1]", wantValue: 3.0, wantExists: true},
		{name: "quoted dotted key", expr: `meta["x.y"]`, wantValue: "dotted", wantExists: true},
		{name: "missing terminal key", expr: "a.zzz", wantValue: nil, wantExists: false},
		{name: "missing intermediate link", expr: "zzz.deep.path", wantValue: nil, wantExists: false},
		{name: "root path", expr: "", wantValue: doc, wantExists: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(doc, tt.expr, EvalOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, res.Exists)
			if tt.wantExists {
				assert.Equal(t, tt.wantValue, res.Value)
			}
		})
	}
}

func TestEvaluateReadErrors(t *testing.T) {
	doc := sampleDoc()

	t.Run("index out of range", func(t *testing.T) {
		_, err := Evaluate(doc, "a.b[5]", EvalOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, jsonerrors.ErrPathRange)

		var rangeErr *jsonerrors.PathRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 5, rangeErr.Index)
		assert.Equal(t, 3, rangeErr.Length)
		assert.Equal(t, "a.b", rangeErr.Path)
	})

	t.Run("negative index past the start", func(t *testing.T) {
		_, err := Evaluate(doc, "a.b[-4]", EvalOptions{})
		assert.ErrorIs(t, err, jsonerrors.ErrPathRange)
	})

	t.Run("key into array", func(t *testing.T) {
		_, err := Evaluate(doc, "a.b.first", EvalOptions{})
		assert.ErrorIs(t, err, jsonerrors.ErrPathNotFound)
	})

	t.Run("index into object", func(t *testing.T) {
		_, err := Evaluate(doc, "a[0]", EvalOptions{})
		assert.ErrorIs(t, err, jsonerrors.ErrPathNotFound)
	})
}

func TestEvaluateAssign(t *testing.T) {
	t.Run("assign to existing key", func(t *testing.T) {
		doc := sampleDoc()
		res, err := Evaluate(doc, "name", EvalOptions{Value: "Grace", HasValue: true})
		require.NoError(t, err)
		assert.True(t, res.Exists)
		assert.Equal(t, "Grace", res.Value)
		assert.Equal(t, "Grace", doc["name"])
	})

	t.Run("assign through missing link without create fails", func(t *testing.T) {
		doc := sampleDoc()
		_, err := Evaluate(doc, "missing.child", EvalOptions{Value: 1, HasValue: true})
		assert.ErrorIs(t, err, jsonerrors.ErrPathNotFound)
	})

	t.Run("create materializes intermediate containers", func(t *testing.T) {
		doc := map[string]any{}
		res, err := Evaluate(doc, "a.b[0].c", EvalOptions{Create: true, Value: 5, HasValue: true})
		require.NoError(t, err)

		root := res.Root.(map[string]any)
		want := map[string]any{
			"a": map[string]any{
				"b": []any{map[string]any{"c": 5}},
			},
		}
		assert.Equal(t, want, root)
	})

	t.Run("create extends arrays with null placeholders", func(t *testing.T) {
		doc := map[string]any{"arr": []any{1.0}}
		res, err := Evaluate(doc, "arr[3]", EvalOptions{Create: true, Value: "end", HasValue: true})
		require.NoError(t, err)

		root := res.Root.(map[string]any)
		assert.Equal(t, []any{1.0, nil, nil, "end"}, root["arr"])
	})

	t.Run("next numeric segment creates an array", func(t *testing.T) {
		doc := map[string]any{}
		res, err := Evaluate(doc, "xs[1]", EvalOptions{Create: true, Value: true, HasValue: true})
		require.NoError(t, err)

		root := res.Root.(map[string]any)
		assert.Equal(t, []any{nil, true}, root["xs"])
	})
}

func TestEvaluateDelete(t *testing.T) {
	t.Run("delete object key", func(t *testing.T) {
		doc := sampleDoc()
		res, err := Evaluate(doc, "name", EvalOptions{Delete: true})
		require.NoError(t, err)
		assert.False(t, res.Exists)

		root := res.Root.(map[string]any)
		_, present := root["name"]
		assert.False(t, present)
	})

	t.Run("delete array element splices", func(t *testing.T) {
		doc := sampleDoc()
		res, err := Evaluate(doc, "a.b[0]", EvalOptions{Delete: true})
		require.NoError(t, err)

		root := res.Root.(map[string]any)
		assert.Equal(t, []any{2.0, 3.0}, root["a"].(map[string]any)["b"])
	})

	t.Run("delete missing terminal is a no-op", func(t *testing.T) {
		doc := sampleDoc()
		res, err := Evaluate(doc, "zzz", EvalOptions{Delete: true})
		require.NoError(t, err)
		assert.False(t, res.Exists)
	})

	t.Run("delete out-of-range index is a no-op", func(t *testing.T) {
		doc := sampleDoc()
		_, err := Evaluate(doc, "a.b[9]", EvalOptions{Delete: true})
		require.NoError(t, err)
	})

	t.Run("delete root fails", func(t *testing.T) {
		doc := sampleDoc()
		_, err := Evaluate(doc, "", EvalOptions{Delete: true})
		assert.ErrorIs(t, err, jsonerrors.ErrConfig)
	})
}

func TestEvaluateParentTracking(t *testing.T) {
	doc := sampleDoc()

	res, err := Evaluate(doc, "a.b[1]", EvalOptions{})
	require.NoError(t, err)
	assert.Equal(t, doc["a"].(map[string]any)["b"], res.Parent)
	assert.Equal(t, 1, res.Key)

	res, err = Evaluate(doc, "a.b[-1]", EvalOptions{})
	require.NoError(t, err)
	// Negative indices resolve before being reported as Key.
	assert.Equal(t, 2, res.Key)

	res, err = Evaluate(doc, "name", EvalOptions{})
	require.NoError(t, err)
	assert.Equal(t, "name", res.Key)
}
