package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/transformer"
)

// FlattenFlags contains flags for the flatten command
type FlattenFlags struct {
	Delimiter string
	Unflatten bool
	Output    string
	Format    string
}

// SetupFlattenFlags creates and configures a FlagSet for the flatten command.
func SetupFlattenFlags() (*flag.FlagSet, *FlattenFlags) {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	flags := &FlattenFlags{}

	fs.StringVar(&flags.Delimiter, "delimiter", transformer.DefaultDelimiter, "delimiter between nested key parts")
	fs.BoolVar(&flags.Unflatten, "unflatten", false, "rebuild nested objects from delimited keys instead")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools flatten [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Flatten nested objects into a single level of delimited keys, or reverse\n")
		cliutil.Writef(fs.Output(), "the operation with -unflatten. Arrays are treated as leaf values.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools flatten config.json\n")
		cliutil.Writef(fs.Output(), "  jsontools flatten -delimiter / nested.yaml\n")
		cliutil.Writef(fs.Output(), "  jsontools flatten -unflatten flat.json\n")
	}

	return fs, flags
}

// HandleFlatten executes the flatten command
func HandleFlatten(args []string) error {
	fs, flags := SetupFlattenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("flatten command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("flatten requires an object document")
	}

	var result map[string]any
	if flags.Unflatten {
		result, err = transformer.Unflatten(obj, flags.Delimiter)
	} else {
		result, err = transformer.Flatten(obj, flags.Delimiter)
	}
	if err != nil {
		return err
	}
	return OutputValue(result, flags.Format, flags.Output)
}
