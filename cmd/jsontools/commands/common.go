// Package commands provides CLI command handlers for jsontools.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fauriatjules-max/jsontools/codec"
	"github.com/fauriatjules-max/jsontools/internal/fileutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ReadDocument reads and parses a JSON or YAML document from a file path or
// stdin ("-").
func ReadDocument(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return codec.Parse(data)
}

// RenderValue serializes a value in the requested output format. Text and
// json render as indented JSON; yaml renders as YAML.
func RenderValue(value any, format string) (string, error) {
	if format == FormatYAML {
		return codec.StringifyYAML(value)
	}
	return codec.Stringify(value, codec.WithIndent(2))
}

// OutputValue writes a serialized value to stdout, or to outputPath when it
// is non-empty.
func OutputValue(value any, format, outputPath string) error {
	rendered, err := RenderValue(value, format)
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Println(rendered)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(rendered+"\n"), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
