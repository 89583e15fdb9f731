package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools/codec"
)

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readResult(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := codec.Parse(data)
	require.NoError(t, err)
	return doc
}

func TestHandleSet(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{"a": {"b": 1}}`)
	out := filepath.Join(t.TempDir(), "out.json")

	err := HandleSet([]string{"-path", "a.c", "-value", "true", "-output", out, in})
	require.NoError(t, err)

	want := map[string]any{"a": map[string]any{"b": 1.0, "c": true}}
	assert.Equal(t, want, readResult(t, out))
}

func TestHandleSetObjectValue(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{}`)
	out := filepath.Join(t.TempDir(), "out.json")

	err := HandleSet([]string{"-path", "meta", "-value", `{"version": 2}`, "-output", out, in})
	require.NoError(t, err)

	want := map[string]any{"meta": map[string]any{"version": 2.0}}
	assert.Equal(t, want, readResult(t, out))
}

func TestHandleSetMissingFlags(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{}`)

	err := HandleSet([]string{in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-path")
}

func TestHandleSetInvalidValue(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{}`)

	err := HandleSet([]string{"-path", "a", "-value", "{broken", in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid -value")
}

func TestHandleDelete(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{"a": 1, "b": 2}`)
	out := filepath.Join(t.TempDir(), "out.json")

	err := HandleDelete([]string{"-path", "b", "-output", out, in})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, readResult(t, out))
}

func TestHandleDeleteMissingPath(t *testing.T) {
	in := writeTempDoc(t, "doc.json", `{"a": 1}`)

	err := HandleDelete([]string{"-path", "nope", "-output", filepath.Join(t.TempDir(), "out.json"), in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path not found")
}
