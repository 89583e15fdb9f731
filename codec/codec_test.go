package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{name: "json object", data: `{"a": 1}`, want: FormatJSON},
		{name: "json array", data: `[1, 2]`, want: FormatJSON},
		{name: "json with leading whitespace", data: "\n\t {\"a\": 1}", want: FormatJSON},
		{name: "yaml mapping", data: "a: 1\nb: 2", want: FormatYAML},
		{name: "yaml list", data: "- one\n- two", want: FormatYAML},
		{name: "empty", data: "", want: FormatUnknown},
		{name: "whitespace only", data: "   \n\t", want: FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat([]byte(tt.data)))
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormatFromPath("doc.json"))
	assert.Equal(t, FormatYAML, DetectFormatFromPath("doc.yaml"))
	assert.Equal(t, FormatYAML, DetectFormatFromPath("doc.yml"))
	assert.Equal(t, FormatUnknown, DetectFormatFromPath("doc.txt"))
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`{"name": "alice", "age": 30, "tags": ["a", "b"], "active": true, "meta": null}`))
	require.NoError(t, err)

	want := map[string]any{
		"name":   "alice",
		"age":    30.0,
		"tags":   []any{"a", "b"},
		"active": true,
		"meta":   nil,
	}
	assert.Equal(t, want, v)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"unterminated`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	fromJSON, err := ParseJSON([]byte(`{"name": "alice", "age": 30, "score": 1.5, "tags": ["a"]}`))
	require.NoError(t, err)

	fromYAML, err := ParseYAML([]byte("name: alice\nage: 30\nscore: 1.5\ntags:\n  - a\n"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML, "integers normalize to float64")
}

func TestParseYAMLNested(t *testing.T) {
	v, err := ParseYAML([]byte("outer:\n  inner:\n    n: 7\n  list:\n    - 1\n    - two\n"))
	require.NoError(t, err)

	want := map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{"n": 7.0},
			"list":  []any{1.0, "two"},
		},
	}
	assert.Equal(t, want, v)
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("a: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestParseDetectsFormat(t *testing.T) {
	fromJSON, err := Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	fromYAML, err := Parse([]byte("a: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": 1.0}, fromJSON)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestStringifyCompact(t *testing.T) {
	out, err := Stringify(map[string]any{"b": 2.0, "a": 1.0})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, out, "encoding/json sorts object keys")
}

func TestStringifyKeepsHTMLCharactersLiteral(t *testing.T) {
	out, err := Stringify(map[string]any{"query": "a<b && c>d"})
	require.NoError(t, err)
	assert.Equal(t, `{"query":"a<b && c>d"}`, out)
}

func TestStringifyIndent(t *testing.T) {
	out, err := Stringify(map[string]any{"a": []any{1.0}}, WithIndent(2))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", out)
}

func TestStringifyCircularReference(t *testing.T) {
	doc := map[string]any{"name": "root"}
	doc["self"] = doc

	out, err := Stringify(doc)
	require.NoError(t, err)
	assert.Contains(t, out, `"self":"[Circular]"`)
	assert.Contains(t, out, `"name":"root"`)

	out, err = Stringify(doc, WithCircularPlaceholder("<cycle>"))
	require.NoError(t, err)
	assert.Contains(t, out, `"self":"<cycle>"`)
}

func TestStringifyRepeatedReferenceIsNotCircular(t *testing.T) {
	shared := map[string]any{"k": "v"}
	doc := map[string]any{"first": shared, "second": shared}

	out, err := Stringify(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, `"k":"v"`))
	assert.NotContains(t, out, "[Circular]")
}

func TestStringifyCycleThroughArray(t *testing.T) {
	doc := map[string]any{}
	arr := []any{doc}
	doc["children"] = arr

	out, err := Stringify(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "[Circular]")
}

func TestStringifyRoundTrip(t *testing.T) {
	original := map[string]any{
		"users": []any{
			map[string]any{"name": "alice", "age": 30.0},
		},
		"total": 1.0,
	}

	out, err := Stringify(original, WithIndent(2))
	require.NoError(t, err)

	parsed, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestStringifyYAML(t *testing.T) {
	out, err := StringifyYAML(map[string]any{"name": "alice", "age": 30.0})
	require.NoError(t, err)
	assert.Contains(t, out, "name: alice")
	assert.Contains(t, out, "age: 30")
}
