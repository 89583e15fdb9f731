package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fauriatjules-max/jsontools/merger"
)

type mergeInput struct {
	Documents        []docInput `json:"documents"                   jsonschema:"Two or more documents to merge, left to right"`
	Strategy         string     `json:"strategy,omitempty"          jsonschema:"Merge strategy: deep or shallow"`
	ArrayStrategy    string     `json:"array_strategy,omitempty"    jsonschema:"Array strategy: concat, union, intersection, replace, or deep"`
	ConflictStrategy string     `json:"conflict_strategy,omitempty" jsonschema:"Conflict strategy: source, target, throw, or priority"`
	CheckConflicts   bool       `json:"check_conflicts,omitempty"   jsonschema:"Report conflicting paths instead of merging"`
}

type mergeConflict struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Target any    `json:"target,omitempty"`
	Source any    `json:"source,omitempty"`
}

type mergeOutput struct {
	Document  any             `json:"document,omitempty"`
	Conflicts []mergeConflict `json:"conflicts,omitempty"`
	Summary   string          `json:"summary"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Documents) < 2 {
		return errResult(fmt.Errorf("merge requires at least 2 documents, got %d", len(input.Documents))), mergeOutput{}, nil
	}

	docs := make([]any, 0, len(input.Documents))
	for i, in := range input.Documents {
		doc, err := in.resolve()
		if err != nil {
			return errResult(fmt.Errorf("document %d: %w", i, err)), mergeOutput{}, nil
		}
		docs = append(docs, doc)
	}

	if input.CheckConflicts {
		var conflicts []mergeConflict
		for i := 1; i < len(docs); i++ {
			found, err := merger.CheckMergeConflicts(docs[0], docs[i])
			if err != nil {
				return errResult(err), mergeOutput{}, nil
			}
			for _, c := range found {
				conflicts = append(conflicts, mergeConflict{
					Path:   c.Path,
					Type:   string(c.Type),
					Target: c.TargetValue,
					Source: c.SourceValue,
				})
			}
		}
		return nil, mergeOutput{
			Conflicts: conflicts,
			Summary:   formatCount(len(conflicts), "conflict") + " found.",
		}, nil
	}

	opts, err := mergeOptions(input)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	result, err := merger.MergeAll(docs, opts...)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	return nil, mergeOutput{
		Document: result,
		Summary:  fmt.Sprintf("Merged %d documents.", len(docs)),
	}, nil
}

// mergeOptions builds merger options from the request, falling back to the
// JSONTOOLS_MERGE_* environment defaults for unset fields.
func mergeOptions(input mergeInput) ([]merger.Option, error) {
	var opts []merger.Option

	if s := firstNonEmpty(input.Strategy, cfg.MergeStrategy); s != "" {
		opts = append(opts, merger.WithStrategy(merger.Strategy(s)))
	}
	if s := firstNonEmpty(input.ArrayStrategy, cfg.MergeArrayStrategy); s != "" {
		opts = append(opts, merger.WithArrayStrategy(merger.ArrayStrategy(s)))
	}
	if s := firstNonEmpty(input.ConflictStrategy, cfg.MergeConflictStrategy); s != "" {
		opts = append(opts, merger.WithConflictStrategy(merger.ConflictStrategy(s)))
	}
	opts = append(opts, merger.WithMaxDepth(cfg.MaxDepth))
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
