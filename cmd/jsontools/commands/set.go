package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/codec"
	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// SetFlags contains flags for the set command
type SetFlags struct {
	Path   string
	Value  string
	Output string
	Format string
}

// SetupSetFlags creates and configures a FlagSet for the set command.
func SetupSetFlags() (*flag.FlagSet, *SetFlags) {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	flags := &SetFlags{}

	fs.StringVar(&flags.Path, "path", "", "path expression to write (required)")
	fs.StringVar(&flags.Value, "value", "", "value to set, as a JSON literal (required)")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools set [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Set a value in a JSON or YAML document by path expression.\n")
		cliutil.Writef(fs.Output(), "Missing intermediate objects are created and arrays are extended as needed.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools set -path users[0].active -value true document.json\n")
		cliutil.Writef(fs.Output(), "  jsontools set -path meta.version -value '\"2.0\"' -output out.json document.json\n")
	}

	return fs, flags
}

// HandleSet executes the set command
func HandleSet(args []string) error {
	fs, flags := SetupSetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("set command requires exactly one file path")
	}
	if flags.Path == "" || flags.Value == "" {
		fs.Usage()
		return fmt.Errorf("set command requires -path and -value")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	value, err := codec.ParseJSON([]byte(flags.Value))
	if err != nil {
		return fmt.Errorf("invalid -value: %w", err)
	}

	result, err := jsonpath.Set(doc, flags.Path, value)
	if err != nil {
		return err
	}
	return OutputValue(result, flags.Format, flags.Output)
}

// DeleteFlags contains flags for the delete command
type DeleteFlags struct {
	Path   string
	Output string
	Format string
}

// SetupDeleteFlags creates and configures a FlagSet for the delete command.
func SetupDeleteFlags() (*flag.FlagSet, *DeleteFlags) {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	flags := &DeleteFlags{}

	fs.StringVar(&flags.Path, "path", "", "path expression to remove (required)")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools delete [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Delete a value from a JSON or YAML document by path expression.\n")
		cliutil.Writef(fs.Output(), "Deleting an array element shifts the remaining elements left.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools delete -path meta.internal document.json\n")
		cliutil.Writef(fs.Output(), "  jsontools delete -path items[2] -output out.json document.json\n")
	}

	return fs, flags
}

// HandleDelete executes the delete command
func HandleDelete(args []string) error {
	fs, flags := SetupDeleteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("delete command requires exactly one file path")
	}
	if flags.Path == "" {
		fs.Usage()
		return fmt.Errorf("delete command requires -path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	// The engine treats deleting a missing element as a no-op; for the
	// command line a path that matched nothing is a mistake worth surfacing.
	if !jsonpath.Has(doc, flags.Path) {
		return fmt.Errorf("path not found: %s", flags.Path)
	}

	result, err := jsonpath.Delete(doc, flags.Path)
	if err != nil {
		return err
	}
	return OutputValue(result, flags.Format, flags.Output)
}
