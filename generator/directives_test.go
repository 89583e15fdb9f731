package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

func TestRefDirective(t *testing.T) {
	data := map[string]any{"user": map[string]any{"name": "alice"}}

	result, err := Generate(map[string]any{"$type": "ref", "$path": "user.name"}, data)
	require.NoError(t, err)
	assert.Equal(t, "alice", result)

	// Local $default beats the global default value.
	result, err = Generate(
		map[string]any{"$type": "ref", "$path": "user.missing", "$default": "local"},
		data, WithDefaultValue("global"))
	require.NoError(t, err)
	assert.Equal(t, "local", result)

	result, err = Generate(map[string]any{"$type": "ref", "$path": "user.missing"},
		data, WithDefaultValue("global"))
	require.NoError(t, err)
	assert.Equal(t, "global", result)

	result, err = Generate(map[string]any{"$type": "ref", "$path": "user.missing"}, data)
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = Generate(map[string]any{"$type": "ref", "$path": "user.missing"},
		data, WithStrict(true))
	assert.ErrorIs(t, err, jsonerrors.ErrGenerator)
}

func TestRefDirectiveClonesResolvedValue(t *testing.T) {
	data := map[string]any{"obj": map[string]any{"a": 1.0}}

	result, err := Generate(map[string]any{"$type": "ref", "$path": "obj"}, data)
	require.NoError(t, err)

	result.(map[string]any)["a"] = 99.0
	assert.Equal(t, 1.0, data["obj"].(map[string]any)["a"])
}

func TestArrayDirective(t *testing.T) {
	template := map[string]any{
		"$type":  "array",
		"$count": 3.0,
		"$items": map[string]any{
			"position": "{{$index}}",
			"of":       "{{$count}}",
			"name":     "{{prefix}}",
		},
	}

	result, err := Generate(template, map[string]any{"prefix": "item"})
	require.NoError(t, err)

	arr, ok := result.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, map[string]any{"position": 0.0, "of": 3.0, "name": "item"}, arr[0])
	assert.Equal(t, map[string]any{"position": 2.0, "of": 3.0, "name": "item"}, arr[2])
}

func TestArrayDirectiveZeroCount(t *testing.T) {
	result, err := Generate(map[string]any{
		"$type": "array", "$count": 0.0, "$items": "x",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, result)
}

func TestArrayDirectiveInvalidCount(t *testing.T) {
	for _, count := range []any{-1.0, 2.5, "three", nil} {
		_, err := Generate(map[string]any{
			"$type": "array", "$count": count, "$items": "x",
		}, nil)
		assert.ErrorIs(t, err, jsonerrors.ErrGenerator, "count %v", count)
	}
}

func TestObjectDirective(t *testing.T) {
	template := map[string]any{
		"$type": "object",
		"$properties": map[string]any{
			"id":   map[string]any{"$type": "ref", "$path": "userId"},
			"name": "{{userName}}",
		},
	}

	result, err := Generate(template, map[string]any{"userId": 7.0, "userName": "bob"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 7.0, "name": "bob"}, result)
}

func TestSwitchDirective(t *testing.T) {
	template := map[string]any{
		"$type": "switch",
		"$cases": []any{
			map[string]any{"$condition": "user.age >= 65", "$value": "senior"},
			map[string]any{"$condition": "user.age >= 21", "$value": "adult"},
		},
		"$default": "minor",
	}

	tests := []struct {
		age  float64
		want string
	}{
		{age: 70, want: "senior"},
		{age: 30, want: "adult"},
		{age: 12, want: "minor"},
	}
	for _, tt := range tests {
		data := map[string]any{"user": map[string]any{"age": tt.age}}
		result, err := Generate(template, data)
		require.NoError(t, err)
		assert.Equal(t, tt.want, result, "age %v", tt.age)
	}
}

func TestSwitchDirectiveConditionForms(t *testing.T) {
	template := map[string]any{
		"$type": "switch",
		"$cases": []any{
			map[string]any{"$condition": false, "$value": "never"},
			map[string]any{
				"$condition": ConditionFunc(func(data any) bool {
					obj, _ := data.(map[string]any)
					return obj["flag"] == true
				}),
				"$value": "predicate",
			},
		},
	}

	result, err := Generate(template, map[string]any{"flag": true})
	require.NoError(t, err)
	assert.Equal(t, "predicate", result)

	// No case matches and no default yields null.
	result, err = Generate(template, map[string]any{"flag": false})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSwitchDirectiveMatchedValueIsProcessed(t *testing.T) {
	template := map[string]any{
		"$type": "switch",
		"$cases": []any{
			map[string]any{"$condition": true, "$value": "{{greeting}}"},
		},
	}

	result, err := Generate(template, map[string]any{"greeting": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", result)
}

func TestTransformDirective(t *testing.T) {
	template := map[string]any{
		"$type":   "transform",
		"$source": "{{name}}",
		"$transform": func(value, data any) (any, error) {
			return strings.ToUpper(value.(string)), nil
		},
	}

	result, err := Generate(template, map[string]any{"name": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "ALICE", result)
}

func TestTransformDirectiveErrors(t *testing.T) {
	_, err := Generate(map[string]any{
		"$type": "transform", "$source": "x", "$transform": "not a function",
	}, nil)
	assert.ErrorIs(t, err, jsonerrors.ErrGenerator)

	_, err = Generate(map[string]any{
		"$type":   "transform",
		"$source": "x",
		"$transform": func(value, data any) (any, error) {
			return nil, fmt.Errorf("boom")
		},
	}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrGenerator)
	assert.ErrorContains(t, err, "boom")
}

func TestConcatDirective(t *testing.T) {
	template := map[string]any{
		"$type":      "concat",
		"$separator": "-",
		"$parts":     []any{"{{first}}", "{{last}}", 42.0, true},
	}

	result, err := Generate(template, map[string]any{"first": "ada", "last": "l"})
	require.NoError(t, err)
	assert.Equal(t, "ada-l-42-true", result)
}

func TestMathDirective(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		operands []any
		want     float64
	}{
		{name: "add", op: "add", operands: []any{1.0, 2.0, 3.0}, want: 6},
		{name: "subtract folds rest", op: "subtract", operands: []any{10.0, 2.0, 3.0}, want: 5},
		{name: "multiply", op: "multiply", operands: []any{2.0, 3.0, 4.0}, want: 24},
		{name: "divide folds rest", op: "divide", operands: []any{100.0, 2.0, 5.0}, want: 10},
		{name: "modulo", op: "modulo", operands: []any{10.0, 3.0}, want: 1},
		{name: "power", op: "power", operands: []any{2.0, 10.0}, want: 1024},
		{name: "single operand subtract", op: "subtract", operands: []any{7.0}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(map[string]any{
				"$type": "math", "$operation": tt.op, "$operands": tt.operands,
			}, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, result, 1e-9)
		})
	}
}

func TestMathDirectiveOperandsAreProcessed(t *testing.T) {
	template := map[string]any{
		"$type":      "math",
		"$operation": "add",
		"$operands":  []any{"{{a}}", map[string]any{"$type": "ref", "$path": "b"}},
	}

	result, err := Generate(template, map[string]any{"a": 1.0, "b": 2.0})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, result, 1e-9)
}

func TestMathDirectiveErrors(t *testing.T) {
	tests := []struct {
		name     string
		node     map[string]any
		contains string
	}{
		{
			name:     "division by zero",
			node:     map[string]any{"$type": "math", "$operation": "divide", "$operands": []any{1.0, 0.0}},
			contains: "division by zero",
		},
		{
			name:     "modulo by zero",
			node:     map[string]any{"$type": "math", "$operation": "modulo", "$operands": []any{1.0, 0.0}},
			contains: "modulo by zero",
		},
		{
			name:     "unknown operation",
			node:     map[string]any{"$type": "math", "$operation": "cbrt", "$operands": []any{8.0}},
			contains: "unknown operation",
		},
		{
			name:     "empty operands",
			node:     map[string]any{"$type": "math", "$operation": "add", "$operands": []any{}},
			contains: "non-empty",
		},
		{
			name:     "non-numeric operand",
			node:     map[string]any{"$type": "math", "$operation": "add", "$operands": []any{"nope"}},
			contains: "not numeric",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.node, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, jsonerrors.ErrGenerator)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestDateDirective(t *testing.T) {
	base := "2024-03-15T10:30:00Z"

	tests := []struct {
		name string
		node map[string]any
		want any
	}{
		{
			name: "iso passthrough",
			node: map[string]any{"$type": "date", "$value": base},
			want: "2024-03-15T10:30:00Z",
		},
		{
			name: "date format",
			node: map[string]any{"$type": "date", "$value": base, "$format": "date"},
			want: "2024-03-15",
		},
		{
			name: "time format",
			node: map[string]any{"$type": "date", "$value": base, "$format": "time"},
			want: "10:30:00",
		},
		{
			name: "timestamp format",
			node: map[string]any{"$type": "date", "$value": base, "$format": "timestamp"},
			want: 1710498600.0,
		},
		{
			name: "day offset",
			node: map[string]any{
				"$type": "date", "$value": base, "$format": "date",
				"$offset": map[string]any{"days": 20.0},
			},
			want: "2024-04-04",
		},
		{
			name: "mixed offset",
			node: map[string]any{
				"$type": "date", "$value": base,
				"$offset": map[string]any{"years": 1.0, "hours": -2.0, "minutes": 15.0},
			},
			want: "2025-03-15T08:45:00Z",
		},
		{
			name: "custom format",
			node: map[string]any{
				"$type": "date", "$value": base,
				"$format": "custom", "$customFormat": "DD/MM/YYYY HH:mm:ss",
			},
			want: "15/03/2024 10:30:00",
		},
		{
			name: "unix seconds value",
			node: map[string]any{"$type": "date", "$value": 1710498600.0, "$format": "date"},
			want: "2024-03-15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.node, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestDateDirectiveValueIsProcessed(t *testing.T) {
	result, err := Generate(map[string]any{
		"$type": "date", "$value": "{{when}}", "$format": "date",
	}, map[string]any{"when": "2024-07-01T00:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", result)
}

func TestDateDirectiveNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Minute)

	result, err := Generate(map[string]any{"$type": "date", "$format": "timestamp"}, nil)
	require.NoError(t, err)

	ts, ok := result.(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, ts, float64(before.Unix()))
}

func TestDateDirectiveErrors(t *testing.T) {
	_, err := Generate(map[string]any{"$type": "date", "$value": "not-a-date"}, nil)
	assert.ErrorIs(t, err, jsonerrors.ErrGenerator)

	_, err = Generate(map[string]any{
		"$type": "date", "$value": "2024-01-01", "$format": "custom",
	}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "$customFormat")
}

func TestRandomDirectiveString(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	result, err := Generate(map[string]any{
		"$type": "random", "$valueType": "string", "$length": 8.0, "$chars": "ab",
	}, nil, WithRand(rnd))
	require.NoError(t, err)

	s, ok := result.(string)
	require.True(t, ok)
	assert.Len(t, s, 8)
	for _, r := range s {
		assert.Contains(t, "ab", string(r))
	}
}

func TestRandomDirectiveNumber(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		result, err := Generate(map[string]any{
			"$type": "random", "$valueType": "number", "$min": 10.0, "$max": 20.0,
		}, nil, WithRand(rnd))
		require.NoError(t, err)

		n, ok := result.(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, n, 10.0)
		assert.Less(t, n, 20.0)
	}
}

func TestRandomDirectiveInteger(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		result, err := Generate(map[string]any{
			"$type": "random", "$valueType": "number",
			"$min": 1.0, "$max": 6.0, "$integer": true,
		}, nil, WithRand(rnd))
		require.NoError(t, err)

		n := result.(float64)
		assert.Equal(t, n, float64(int64(n)), "integral")
		assert.GreaterOrEqual(t, n, 1.0)
		assert.LessOrEqual(t, n, 6.0)
	}
}

func TestRandomDirectiveChoice(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	choices := []any{"red", "green", "blue"}

	result, err := Generate(map[string]any{
		"$type": "random", "$valueType": "choice", "$choices": choices,
	}, nil, WithRand(rnd))
	require.NoError(t, err)
	assert.Contains(t, choices, result)
}

func TestRandomDirectiveDate(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	result, err := Generate(map[string]any{
		"$type": "random", "$valueType": "date",
		"$start": "2024-01-01", "$end": "2024-12-31",
	}, nil, WithRand(rnd))
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, result.(string))
	require.NoError(t, err)
	assert.False(t, parsed.Before(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, parsed.After(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestRandomDirectiveErrors(t *testing.T) {
	tests := []struct {
		name string
		node map[string]any
	}{
		{
			name: "missing value type",
			node: map[string]any{"$type": "random"},
		},
		{
			name: "unknown value type",
			node: map[string]any{"$type": "random", "$valueType": "uuid"},
		},
		{
			name: "empty choices",
			node: map[string]any{"$type": "random", "$valueType": "choice", "$choices": []any{}},
		},
		{
			name: "inverted range",
			node: map[string]any{"$type": "random", "$valueType": "number", "$min": 10.0, "$max": 1.0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.node, nil)
			assert.ErrorIs(t, err, jsonerrors.ErrGenerator)
		})
	}
}

func TestLiteralDirective(t *testing.T) {
	// Literal keeps the value verbatim, placeholders and all.
	result, err := Generate(map[string]any{
		"$type":  "literal",
		"$value": map[string]any{"raw": "{{not.expanded}}", "$type": "ref"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"raw": "{{not.expanded}}", "$type": "ref"}, result)
}

func TestUnknownDirective(t *testing.T) {
	_, err := Generate(map[string]any{"$type": "teleport"}, nil)
	require.Error(t, err)

	var genErr *jsonerrors.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "teleport", genErr.Directive)
	assert.Contains(t, genErr.Message, "unknown directive")
}

func TestDirectiveErrorCarriesPath(t *testing.T) {
	template := map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{"$type": "math", "$operation": "divide", "$operands": []any{1.0, 0.0}},
		},
	}

	_, err := Generate(template, nil)
	require.Error(t, err)

	var genErr *jsonerrors.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "outer.inner", genErr.Path)
}

func TestFoldMathDirectly(t *testing.T) {
	result, err := foldMath("power", []float64{2, 3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 64.0, result, 1e-9)

	_, err = foldMath("divide", []float64{1, 2, 0})
	assert.Error(t, err)
}
