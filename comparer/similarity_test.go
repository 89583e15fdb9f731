package comparer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want float64
	}{
		{name: "identical primitives", a: "x", b: "x", want: 1.0},
		{name: "different primitives", a: "x", b: "y", want: 0.0},
		{name: "both null", a: nil, b: nil, want: 1.0},
		{name: "null vs value", a: nil, b: 1.0, want: 0.0},
		{name: "type mismatch", a: []any{}, b: map[string]any{}, want: 0.0},
		{name: "int equals float", a: 1, b: 1.0, want: 1.0},
		{
			name: "arrays aligned by index",
			a:    []any{1.0, 2.0, 3.0, 4.0},
			b:    []any{1.0, 2.0, 9.0, 4.0},
			want: 0.75,
		},
		{
			name: "array length overflow contributes zero",
			a:    []any{1.0, 2.0},
			b:    []any{1.0, 2.0, 3.0, 4.0},
			want: 0.5,
		},
		{
			name: "objects mean over key union",
			a:    map[string]any{"a": 1.0, "b": 2.0},
			b:    map[string]any{"a": 1.0, "c": 3.0},
			want: 1.0 / 3.0,
		},
		{name: "empty objects", a: map[string]any{}, b: map[string]any{}, want: 1.0},
		{name: "empty arrays", a: []any{}, b: []any{}, want: 1.0},
		{
			name: "nested averaging",
			a:    map[string]any{"o": map[string]any{"x": 1.0, "y": 2.0}},
			b:    map[string]any{"o": map[string]any{"x": 1.0, "y": 9.0}},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := map[string]any{"x": []any{1.0, "q"}, "y": 2.0}
	b := map[string]any{"x": []any{1.0, "r", true}, "z": 3.0}

	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-9)
}
