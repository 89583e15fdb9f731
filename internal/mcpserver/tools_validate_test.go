package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"email": {"type": "string", "format": "email"}
	},
	"required": ["name", "email"]
}`

func TestValidateTool_ValidDocument(t *testing.T) {
	input := validateInput{
		Doc:    docInput{Content: `{"name": "alice", "email": "alice@example.com"}`},
		Schema: docInput{Content: userSchema},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Errors)
}

func TestValidateTool_InvalidDocument(t *testing.T) {
	input := validateInput{
		Doc:    docInput{Content: `{"name": 42}`},
		Schema: docInput{Content: userSchema},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, 2, output.ErrorCount)

	paths := make([]string, 0, len(output.Errors))
	for _, e := range output.Errors {
		paths = append(paths, e.Path)
	}
	assert.ElementsMatch(t, []string{"name", "email"}, paths)
}

func TestValidateTool_YAMLSchema(t *testing.T) {
	input := validateInput{
		Doc:    docInput{Content: `{"count": 5}`},
		Schema: docInput{Content: "type: object\nproperties:\n  count:\n    type: number\n    minimum: 10\n"},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.Errors, 1)
	assert.Equal(t, "count", output.Errors[0].Path)
}

func TestValidateTool_NoWarnings(t *testing.T) {
	schema := `{"type": "object", "properties": {"v": {"type": "string", "format": "hexcolor"}}}`
	doc := `{"v": "#fff"}`

	input := validateInput{
		Doc:    docInput{Content: doc},
		Schema: docInput{Content: schema},
	}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.NotEmpty(t, output.Warnings, "unknown format is a warning")

	input.NoWarnings = true
	_, output, err = handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, output.Warnings)
	assert.Zero(t, output.WarningCount)
}

func TestValidateTool_MissingSchema(t *testing.T) {
	input := validateInput{
		Doc: docInput{Content: `{}`},
	}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
