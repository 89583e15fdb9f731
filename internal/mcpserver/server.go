// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsontools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools"
)

const serverInstructions = `jsontools MCP server — queries, modifies, compares, merges, validates, transforms, and generates JSON documents.

Configuration: All defaults are configurable via JSONTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- JSONTOOLS_MAX_DEPTH (default: 100) — recursion depth bound for all engines
- JSONTOOLS_MAX_DOCUMENT_BYTES (default: 10485760) — inline document size limit
- JSONTOOLS_MERGE_STRATEGY — default merge strategy (deep, shallow)
- JSONTOOLS_MERGE_ARRAY_STRATEGY — default array strategy (concat, union, intersection, replace, deep)
- JSONTOOLS_MERGE_CONFLICT_STRATEGY — default conflict strategy (source, target, throw, priority)
- JSONTOOLS_VALIDATE_NO_WARNINGS (default: false) — suppress validation warnings by default

Documents are supplied per call as a file path or inline content, in JSON or YAML.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsontools", Version: jsontools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "Read a value from a JSON document by path expression (dot keys, [n] indexes, [-n] from the end). Use find to search for paths matching a pattern with * (any key) and ** (any subtree) wildcards instead of reading a single path. Use list_paths=true to enumerate every path in the document.",
	}, handleQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "modify",
		Description: "Modify a JSON document by path: set a value (creating intermediate objects and extending arrays as needed), delete a path, or move/copy a value from one path to another. Returns the modified document; the input is never changed in place.",
	}, handleModify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Deep-compare two JSON documents. Reports differences (added, removed, changed) with path locations, a similarity score between 0 and 1, and RFC 6902 patch operations that turn the first document into the second. Use tolerance for approximate numeric equality and unordered=true to compare top-level arrays ignoring element order.",
	}, handleCompare)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Deep-merge two or more JSON documents left to right. Array strategies: concat, union, intersection, replace, deep. Conflict strategies: source (last wins), target (first wins), throw, priority (first non-null wins). Defaults are configurable via JSONTOOLS_MERGE_* env vars. Use check_conflicts=true to report conflicting paths without merging.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a JSON document against a schema (type, required, enum, const, string/number/array/object constraints, formats). Validation always completes and returns every issue with its path. Unknown formats and invalid patterns are warnings, not errors. Use no_warnings to suppress warnings.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform",
		Description: "Reshape a JSON document: flatten nested objects to delimited keys, unflatten them back, group an array of objects by a field, or pick/omit/rename top-level keys. Returns the transformed document.",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a JSON document from a template and a data context. Templates use {{path}} placeholders and $type directives (ref, array, object, switch, concat, math, date, random, literal). Use strict=true to fail on unresolved references and seed for reproducible random values.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
