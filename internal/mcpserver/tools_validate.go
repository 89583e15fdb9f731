package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/validator"
)

type validateInput struct {
	Doc        docInput `json:"doc"                   jsonschema:"The JSON document to validate"`
	Schema     docInput `json:"schema"                jsonschema:"The schema to validate against (JSON or YAML)"`
	NoWarnings bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings and report errors only"`
}

type validateIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Expected any    `json:"expected,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	schemaValue, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v := validator.New()
	v.MaxDepth = cfg.MaxDepth
	result := v.Validate(doc, validator.SchemaFromValue(schemaValue))

	output := validateOutput{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
	}
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{
			Path:     e.Path,
			Message:  e.Message,
			Severity: e.Severity.String(),
			Expected: e.Expected,
		})
	}
	if !input.NoWarnings && !cfg.ValidateNoWarnings {
		output.WarningCount = result.WarningCount
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, validateIssue{
				Path:     w.Path,
				Message:  w.Message,
				Severity: w.Severity.String(),
				Expected: w.Expected,
			})
		}
	}
	return nil, output, nil
}
