package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Format identifies the serialization syntax of a document.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatUnknown Format = "unknown"
)

// DetectFormat guesses the format from the content bytes. JSON documents
// start with '{' or '['; anything else is assumed to be YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// DetectFormatFromPath detects the format from a file extension.
func DetectFormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Parse decodes JSON or YAML bytes into a normalized value. The format is
// detected from the content.
func Parse(data []byte) (any, error) {
	if DetectFormat(data) == FormatJSON {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseJSON decodes JSON bytes into a normalized value.
func ParseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("codec: invalid JSON: %w", err)
	}
	return v, nil
}

// ParseYAML decodes YAML bytes into a normalized value. Integer scalars
// become float64 and mapping keys become strings so the result matches what
// ParseJSON produces for the equivalent document.
func ParseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("codec: invalid YAML: %w", err)
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}

// DefaultCircularPlaceholder replaces nodes that reference one of their own
// ancestors during Stringify.
const DefaultCircularPlaceholder = "[Circular]"

// StringifyOption configures a Stringify call.
type StringifyOption func(*stringifyConfig)

type stringifyConfig struct {
	indent      int
	placeholder string
}

// WithIndent enables pretty printing with the given number of spaces per
// nesting level. Zero produces compact output.
func WithIndent(spaces int) StringifyOption {
	return func(cfg *stringifyConfig) {
		cfg.indent = spaces
	}
}

// WithCircularPlaceholder sets the string substituted for cyclic references.
func WithCircularPlaceholder(placeholder string) StringifyOption {
	return func(cfg *stringifyConfig) {
		cfg.placeholder = placeholder
	}
}

// Stringify renders a value as JSON text. Cyclic references are replaced
// with the circular placeholder rather than causing unbounded recursion.
func Stringify(v any, opts ...StringifyOption) (string, error) {
	cfg := &stringifyConfig{placeholder: DefaultCircularPlaceholder}
	for _, opt := range opts {
		opt(cfg)
	}

	safe := breakCycles(v, make(map[uintptr]bool), cfg.placeholder)

	// Document output, not HTML: keep <, >, and & literal.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if cfg.indent > 0 {
		enc.SetIndent("", spaces(cfg.indent))
	}
	if err := enc.Encode(safe); err != nil {
		return "", fmt.Errorf("codec: cannot serialize value: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// StringifyYAML renders a value as YAML text.
func StringifyYAML(v any) (string, error) {
	safe := breakCycles(v, make(map[uintptr]bool), DefaultCircularPlaceholder)
	out, err := yaml.Marshal(safe)
	if err != nil {
		return "", fmt.Errorf("codec: cannot serialize value: %w", err)
	}
	return string(out), nil
}

// breakCycles copies a value tree, substituting placeholder wherever a
// container appears among its own ancestors. The seen set tracks only the
// current ancestor chain, so repeated (non-cyclic) references stay intact.
func breakCycles(v any, seen map[uintptr]bool, placeholder string) any {
	switch val := v.(type) {
	case map[string]any:
		p := reflect.ValueOf(val).Pointer()
		if seen[p] {
			return placeholder
		}
		seen[p] = true
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = breakCycles(child, seen, placeholder)
		}
		delete(seen, p)
		return out
	case []any:
		if len(val) == 0 {
			return []any{}
		}
		p := reflect.ValueOf(val).Pointer()
		if seen[p] {
			return placeholder
		}
		seen[p] = true
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = breakCycles(child, seen, placeholder)
		}
		delete(seen, p)
		return out
	default:
		return v
	}
}

func spaces(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
