package transformer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

func TestTransformMapFunc(t *testing.T) {
	doc := map[string]any{
		"name": "alice",
		"tags": []any{"admin", "ops"},
	}

	result, err := Transform(doc, WithMapFunc(func(path string, v any) (any, error) {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s), nil
		}
		return v, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name": "ALICE",
		"tags": []any{"ADMIN", "OPS"},
	}, result)
	assert.Equal(t, "alice", doc["name"], "input must not be mutated")
}

func TestTransformFilterPrunesMembers(t *testing.T) {
	doc := map[string]any{
		"keep":   1.0,
		"secret": "hidden",
		"nested": map[string]any{"secret": "hidden", "ok": true},
		"list":   []any{"secret", "visible"},
	}

	result, err := Transform(doc, WithFilterFunc(func(path string, v any) (bool, error) {
		if s, ok := v.(string); ok {
			return s != "hidden" && s != "secret", nil
		}
		return true, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"keep":   1.0,
		"nested": map[string]any{"ok": true},
		"list":   []any{"visible"},
	}, result)
}

func TestTransformDeepFalseStopsAtFirstLevel(t *testing.T) {
	doc := map[string]any{
		"top":    "change",
		"nested": map[string]any{"inner": "change"},
	}

	result, err := Transform(doc,
		WithDeep(false),
		WithMapFunc(func(path string, v any) (any, error) {
			if v == "change" {
				return "changed", nil
			}
			return v, nil
		}),
	)
	require.NoError(t, err)

	m := result.(map[string]any)
	assert.Equal(t, "changed", m["top"])
	assert.Equal(t, "change", m["nested"].(map[string]any)["inner"])
}

func TestTransformMapErrorDiscardsPartialResults(t *testing.T) {
	doc := map[string]any{"a": 1.0, "b": 2.0}
	boom := errors.New("boom")

	_, err := Transform(doc, WithMapFunc(func(path string, v any) (any, error) {
		if path == "b" {
			return nil, boom
		}
		return v, nil
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrTransform)
	assert.ErrorIs(t, err, boom)

	var tErr *jsonerrors.TransformError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "b", tErr.Path)
}

func TestTransformRulesInOrder(t *testing.T) {
	doc := map[string]any{"status": "draft", "obsolete": true}

	result, err := Transform(doc, WithRules(
		Rule{Op: RuleSet, Path: "status", Value: "published"},
		Rule{Op: RuleDelete, Path: "obsolete"},
		Rule{Op: RuleRename, Path: "status", NewKey: "state"},
		Rule{Op: RuleSet, Path: "meta.version", Value: 2.0},
	))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"state": "published",
		"meta":  map[string]any{"version": 2.0},
	}, result)
}

func TestTransformRuleWithCondition(t *testing.T) {
	adult := map[string]any{"age": 30.0}
	minor := map[string]any{"age": 12.0}

	rules := WithRules(Rule{
		Op:        RuleSet,
		Path:      "category",
		Value:     "adult",
		Condition: &Condition{Path: "age", Operator: OpGreaterEqual, Value: 18.0},
	})

	result, err := Transform(adult, rules)
	require.NoError(t, err)
	assert.Equal(t, "adult", result.(map[string]any)["category"])

	result, err = Transform(minor, rules)
	require.NoError(t, err)
	_, present := result.(map[string]any)["category"]
	assert.False(t, present)
}

func TestTransformRuleWithWhenPredicate(t *testing.T) {
	doc := map[string]any{"kind": "special"}

	result, err := Transform(doc, WithRules(Rule{
		Op:    RuleSet,
		Path:  "flagged",
		Value: true,
		When: func(d any) bool {
			return d.(map[string]any)["kind"] == "special"
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, true, result.(map[string]any)["flagged"])
}

func TestTransformRuleTransform(t *testing.T) {
	doc := map[string]any{"count": 2.0}

	result, err := Transform(doc, WithRules(Rule{
		Op:   RuleTransform,
		Path: "count",
		Func: func(v any) (any, error) {
			return v.(float64) * 10, nil
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, 20.0, result.(map[string]any)["count"])
}

func TestTransformRuleOnMissingPathIsNoOp(t *testing.T) {
	doc := map[string]any{"a": 1.0}

	result, err := Transform(doc, WithRules(
		Rule{Op: RuleDelete, Path: "missing"},
		Rule{Op: RuleRename, Path: "absent", NewKey: "other"},
		Rule{Op: RuleTransform, Path: "gone", Func: func(v any) (any, error) { return v, nil }},
	))
	require.NoError(t, err)
	assert.Equal(t, doc, result)
}

func TestTransformRuleErrors(t *testing.T) {
	doc := map[string]any{"a": 1.0}

	_, err := Transform(doc, WithRules(Rule{Op: "explode", Path: "a"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrTransform)
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Transform(doc, WithRules(Rule{Op: RuleTransform, Path: "a"}))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	_, err = Transform(doc, WithRules(Rule{Op: RuleRename, Path: "a[0]", NewKey: "b"}))
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)
}

func TestTransformStageOrderMapThenFilterThenRules(t *testing.T) {
	doc := map[string]any{"n": 1.0}

	result, err := Transform(doc,
		WithMapFunc(func(path string, v any) (any, error) {
			if path == "n" {
				return 2.0, nil
			}
			return v, nil
		}),
		WithFilterFunc(func(path string, v any) (bool, error) {
			// Sees the mapped value, not the original.
			return v != 1.0, nil
		}),
		WithRules(Rule{
			Op:   RuleTransform,
			Path: "n",
			Func: func(v any) (any, error) { return v.(float64) + 1, nil },
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 3.0}, result)
}

func TestTransformDepthLimit(t *testing.T) {
	root := map[string]any{}
	cur := root
	for i := 0; i < 10; i++ {
		next := map[string]any{}
		cur["n"] = next
		cur = next
	}

	_, err := Transform(root,
		WithMaxDepth(4),
		WithMapFunc(func(path string, v any) (any, error) { return v, nil }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrResourceLimit)
}

func TestTransformInPlace(t *testing.T) {
	doc := map[string]any{"a": "x"}

	result, err := Transform(doc,
		WithInPlace(true),
		WithMapFunc(func(path string, v any) (any, error) {
			if v == "x" {
				return "y", nil
			}
			return v, nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "y", doc["a"], "in-place transform mutates the input")
	assert.Equal(t, doc, result)
}
