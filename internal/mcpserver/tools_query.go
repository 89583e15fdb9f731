package mcpserver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/jsonpath"
)

type queryInput struct {
	Doc       docInput `json:"doc"                  jsonschema:"The JSON document to query"`
	Path      string   `json:"path,omitempty"       jsonschema:"Path expression to read (e.g. users[0].name)"`
	Find      string   `json:"find,omitempty"       jsonschema:"Path pattern to search for; * matches one key or index and ** matches any subtree"`
	ListPaths bool     `json:"list_paths,omitempty" jsonschema:"List the path of every node in the document"`
}

type queryOutput struct {
	Found bool     `json:"found"`
	Value any      `json:"value,omitempty"`
	Paths []string `json:"paths,omitempty"`
	Count int      `json:"count,omitempty"`
}

func handleQuery(_ context.Context, _ *mcp.CallToolRequest, input queryInput) (*mcp.CallToolResult, queryOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}

	switch {
	case input.ListPaths:
		paths := jsonpath.GetAllPaths(doc)
		return nil, queryOutput{Found: len(paths) > 0, Paths: paths, Count: len(paths)}, nil

	case input.Find != "":
		matcher, err := compilePathPattern(input.Find)
		if err != nil {
			return errResult(err), queryOutput{}, nil
		}
		paths := jsonpath.FindPaths(doc, func(path string, _ any) bool {
			return matcher.MatchString(path)
		})
		return nil, queryOutput{Found: len(paths) > 0, Paths: paths, Count: len(paths)}, nil

	case input.Path != "":
		value, err := jsonpath.Get(doc, input.Path)
		if err != nil {
			return nil, queryOutput{Found: false}, nil
		}
		return nil, queryOutput{Found: true, Value: value}, nil

	default:
		return errResult(fmt.Errorf("one of path, find, or list_paths is required")), queryOutput{}, nil
	}
}

// compilePathPattern translates a path pattern with * and ** wildcards into
// an anchored regular expression over rendered path strings.
func compilePathPattern(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString(`^`)
	for i := 0; i < len(pattern); {
		if strings.HasPrefix(pattern[i:], "**") {
			sb.WriteString(`.*`)
			i += 2
			continue
		}
		if pattern[i] == '*' {
			sb.WriteString(`[^.\[\]]*`)
			i++
			continue
		}
		sb.WriteString(regexp.QuoteMeta(string(pattern[i])))
		i++
	}
	sb.WriteString(`$`)

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid find pattern %q: %w", pattern, err)
	}
	return re, nil
}
