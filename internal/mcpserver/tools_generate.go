package mcpserver

import (
	"context"
	"math/rand"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/generator"
	"github.com/fauriatjules-max/jsontools/validator"
)

type generateInput struct {
	Template docInput `json:"template"          jsonschema:"The template document with {{path}} placeholders and $type directives"`
	Data     docInput `json:"data,omitempty"    jsonschema:"The data context referenced by placeholders and ref directives"`
	Schema   docInput `json:"schema,omitempty"  jsonschema:"Schema to validate the generated document against"`
	Strict   bool     `json:"strict,omitempty"  jsonschema:"Fail on unresolved references and validation errors"`
	Default  any      `json:"default,omitempty" jsonschema:"Fallback value for unresolved references"`
	Seed     *int64   `json:"seed,omitempty"    jsonschema:"Seed for the random directive, making output reproducible"`
}

type generateOutput struct {
	Document any `json:"document"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	template, err := input.Template.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	var data any
	if input.Data.isSet() {
		data, err = input.Data.resolve()
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
	}

	opts := []generator.Option{
		generator.WithStrict(input.Strict),
		generator.WithMaxDepth(cfg.MaxDepth),
	}
	if input.Default != nil {
		opts = append(opts, generator.WithDefaultValue(input.Default))
	}
	if input.Seed != nil {
		opts = append(opts, generator.WithRand(rand.New(rand.NewSource(*input.Seed))))
	}
	if input.Schema.isSet() {
		schemaValue, err := input.Schema.resolve()
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		opts = append(opts, generator.WithValidation(validator.SchemaFromValue(schemaValue)))
	}

	result, err := generator.Generate(template, data, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	return nil, generateOutput{Document: result}, nil
}
