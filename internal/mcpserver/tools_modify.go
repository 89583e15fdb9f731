package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/jsonpath"
)

type modifyInput struct {
	Doc       docInput `json:"doc"             jsonschema:"The JSON document to modify"`
	Operation string   `json:"operation"       jsonschema:"Modification to apply: set, delete, move, or copy"`
	Path      string   `json:"path"            jsonschema:"Target path expression"`
	Value     any      `json:"value,omitempty" jsonschema:"Value to set (set operation only)"`
	From      string   `json:"from,omitempty"  jsonschema:"Source path (move and copy operations only)"`
}

type modifyOutput struct {
	Document any `json:"document"`
}

func handleModify(_ context.Context, _ *mcp.CallToolRequest, input modifyInput) (*mcp.CallToolResult, modifyOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), modifyOutput{}, nil
	}

	var result any
	switch input.Operation {
	case "set":
		result, err = jsonpath.Set(doc, input.Path, input.Value)
	case "delete":
		result, err = jsonpath.Delete(doc, input.Path)
	case "move":
		if input.From == "" {
			err = fmt.Errorf("move operation requires from")
		} else {
			result, err = jsonpath.Move(doc, input.From, input.Path)
		}
	case "copy":
		if input.From == "" {
			err = fmt.Errorf("copy operation requires from")
		} else {
			result, err = jsonpath.Copy(doc, input.From, input.Path)
		}
	default:
		err = fmt.Errorf("invalid operation %q; valid operations: set, delete, move, copy", input.Operation)
	}
	if err != nil {
		return errResult(err), modifyOutput{}, nil
	}
	return nil, modifyOutput{Document: result}, nil
}
