package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fauriatjules-max/jsontools"
)

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsontools", Version: jsontools.Version()},
		nil,
	)
	// Registration panics on duplicate or malformed tool definitions.
	assert.NotPanics(t, func() { registerAllTools(server) })
}

func TestSanitizeError(t *testing.T) {
	err := errors.New("open /home/someone/secrets/doc.json: permission denied")
	sanitized := sanitizeError(err)
	assert.NotContains(t, sanitized, "/home/someone")
	assert.Contains(t, sanitized, "<path>")

	assert.Empty(t, sanitizeError(nil))
}

func TestCompilePathPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{pattern: "users[*].name", path: "users[0].name", want: true},
		{pattern: "users[*].name", path: "users[0].email", want: false},
		{pattern: "**.age", path: "users[3].age", want: true},
		{pattern: "**.age", path: "age", want: false},
		{pattern: "a.b", path: "a.b", want: true},
		{pattern: "a.b", path: "a.b.c", want: false},
	}
	for _, tt := range tests {
		re, err := compilePathPattern(tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, re.MatchString(tt.path), "%s vs %s", tt.pattern, tt.path)
	}
}
