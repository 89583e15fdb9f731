package mcpserver

import (
	"fmt"
	"os"

	"github.com/fauriatjules-max/jsontools/codec"
	"github.com/fauriatjules-max/jsontools/internal/options"
)

// docInput represents the two ways a JSON document can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

func (in docInput) isSet() bool {
	return in.File != "" || in.Content != ""
}

// resolve loads and parses the document into the engine value model.
func (in docInput) resolve() (any, error) {
	if err := options.ValidateSingleInputSource(
		"either file or content is required",
		"provide either file or content, not both",
		in.File != "", in.Content != "",
	); err != nil {
		return nil, err
	}
	switch {
	case in.File != "":
		data, err := os.ReadFile(in.File)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		if len(data) > cfg.MaxDocumentBytes {
			return nil, fmt.Errorf("document exceeds %d byte limit", cfg.MaxDocumentBytes)
		}
		return codec.Parse(data)
	default:
		if len(in.Content) > cfg.MaxDocumentBytes {
			return nil, fmt.Errorf("document exceeds %d byte limit", cfg.MaxDocumentBytes)
		}
		return codec.Parse([]byte(in.Content))
	}
}
