package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/transformer"
)

type transformInput struct {
	Doc       docInput          `json:"doc"                 jsonschema:"The JSON document to transform"`
	Operation string            `json:"operation"           jsonschema:"Transformation to apply: flatten, unflatten, group, pick, omit, or rename"`
	Delimiter string            `json:"delimiter,omitempty" jsonschema:"Key delimiter for flatten and unflatten (default .)"`
	Field     string            `json:"field,omitempty"     jsonschema:"Field path to group array items by (group operation only)"`
	Keys      []string          `json:"keys,omitempty"      jsonschema:"Keys to keep or drop (pick and omit operations only)"`
	Renames   map[string]string `json:"renames,omitempty"   jsonschema:"Old-to-new key mapping (rename operation only)"`
}

type transformOutput struct {
	Document any `json:"document"`
}

func handleTransform(_ context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	delimiter := input.Delimiter
	if delimiter == "" {
		delimiter = transformer.DefaultDelimiter
	}

	var result any
	switch input.Operation {
	case "flatten":
		obj, ok := doc.(map[string]any)
		if !ok {
			return errResult(fmt.Errorf("flatten requires an object document")), transformOutput{}, nil
		}
		result, err = transformer.Flatten(obj, delimiter)
	case "unflatten":
		obj, ok := doc.(map[string]any)
		if !ok {
			return errResult(fmt.Errorf("unflatten requires an object document")), transformOutput{}, nil
		}
		result, err = transformer.Unflatten(obj, delimiter)
	case "group":
		items, ok := doc.([]any)
		if !ok {
			return errResult(fmt.Errorf("group requires an array document")), transformOutput{}, nil
		}
		if input.Field == "" {
			return errResult(fmt.Errorf("group operation requires field")), transformOutput{}, nil
		}
		result, err = transformer.GroupBy(items, input.Field)
	case "pick":
		obj, ok := doc.(map[string]any)
		if !ok {
			return errResult(fmt.Errorf("pick requires an object document")), transformOutput{}, nil
		}
		result = transformer.PickKeys(obj, input.Keys...)
	case "omit":
		obj, ok := doc.(map[string]any)
		if !ok {
			return errResult(fmt.Errorf("omit requires an object document")), transformOutput{}, nil
		}
		result = transformer.OmitKeys(obj, input.Keys...)
	case "rename":
		obj, ok := doc.(map[string]any)
		if !ok {
			return errResult(fmt.Errorf("rename requires an object document")), transformOutput{}, nil
		}
		result = transformer.RenameKeys(obj, input.Renames)
	default:
		err = fmt.Errorf("invalid operation %q; valid operations: flatten, unflatten, group, pick, omit, rename", input.Operation)
	}
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}
	return nil, transformOutput{Document: result}, nil
}
