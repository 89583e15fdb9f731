package mcpserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/comparer"
)

type compareInput struct {
	A         docInput `json:"a"                   jsonschema:"The first document"`
	B         docInput `json:"b"                   jsonschema:"The second document to compare against the first"`
	Tolerance float64  `json:"tolerance,omitempty" jsonschema:"Treat numbers within this absolute difference as equal"`
	Unordered bool     `json:"unordered,omitempty" jsonschema:"Compare top-level arrays ignoring element order"`
	Patch     bool     `json:"patch,omitempty"     jsonschema:"Include RFC 6902 patch operations turning a into b"`
}

type compareChange struct {
	Type   string `json:"type"`
	Path   string `json:"path"`
	ValueA any    `json:"value_a,omitempty"`
	ValueB any    `json:"value_b,omitempty"`
}

type compareOutput struct {
	Equal           bool               `json:"equal"`
	DifferenceCount int                `json:"difference_count"`
	Similarity      float64            `json:"similarity"`
	Differences     []compareChange    `json:"differences,omitempty"`
	Patch           []comparer.PatchOp `json:"patch,omitempty"`
	Summary         string             `json:"summary"`
}

func handleCompare(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, compareOutput, error) {
	a, err := input.A.resolve()
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}
	b, err := input.B.resolve()
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	var result *comparer.CompareResult
	switch {
	case input.Unordered:
		result, err = comparer.CompareArraysUnordered(a, b)
	case input.Tolerance > 0:
		result, err = comparer.CompareWithTolerance(a, b, input.Tolerance)
	default:
		result, err = comparer.Compare(a, b)
	}
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	output := compareOutput{
		Equal:           result.Equal,
		DifferenceCount: result.DifferenceCount,
		Similarity:      result.Similarity,
	}
	for _, d := range result.Differences {
		output.Differences = append(output.Differences, compareChange{
			Type:   string(d.Type),
			Path:   d.Path,
			ValueA: d.ValueA,
			ValueB: d.ValueB,
		})
	}
	if input.Patch {
		output.Patch = comparer.PatchOperations(a, b)
	}
	output.Summary = buildCompareSummary(output)

	return nil, output, nil
}

func buildCompareSummary(output compareOutput) string {
	if output.Equal {
		return "Documents are equal."
	}
	return formatCount(output.DifferenceCount, "difference") + " found; similarity " +
		strconv.FormatFloat(output.Similarity, 'f', 2, 64) + "."
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
