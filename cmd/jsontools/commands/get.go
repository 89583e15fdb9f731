package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// GetFlags contains flags for the get command
type GetFlags struct {
	Path   string
	Format string
}

// SetupGetFlags creates and configures a FlagSet for the get command.
func SetupGetFlags() (*flag.FlagSet, *GetFlags) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	flags := &GetFlags{}

	fs.StringVar(&flags.Path, "path", "", "path expression to read (required)")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools get [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Read a value from a JSON or YAML document by path expression.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nPath Syntax:\n")
		cliutil.Writef(fs.Output(), "  a.b.c        nested object keys\n")
		cliutil.Writef(fs.Output(), "  items[0]     array index\n")
		cliutil.Writef(fs.Output(), "  items[-1]    index from the end\n")
		cliutil.Writef(fs.Output(), "  [\"a.b\"]      quoted key containing special characters\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools get -path users[0].name document.json\n")
		cliutil.Writef(fs.Output(), "  cat doc.yaml | jsontools get -path 'config.servers[-1]' -\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Value found\n")
		cliutil.Writef(fs.Output(), "  1    Path not found or input invalid\n")
	}

	return fs, flags
}

// HandleGet executes the get command
func HandleGet(args []string) error {
	fs, flags := SetupGetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("get command requires exactly one file path")
	}
	if flags.Path == "" {
		fs.Usage()
		return fmt.Errorf("get command requires -path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	value, err := jsonpath.Get(doc, flags.Path)
	if err != nil {
		return err
	}
	return OutputValue(value, flags.Format, "")
}
