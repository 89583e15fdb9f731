package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Schema     string
	NoWarnings bool
	Quiet      bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Schema, "schema", "", "schema file to validate against (required)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warnings and report errors only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress output; report the result via exit status only")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools validate -schema <schema> [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Validate a JSON or YAML document against a schema.\n")
		cliutil.Writef(fs.Output(), "Validation always completes and reports every issue with its path.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools validate -schema user.schema.json user.json\n")
		cliutil.Writef(fs.Output(), "  jsontools validate -schema schema.yaml -no-warnings -format json doc.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Document is valid\n")
		cliutil.Writef(fs.Output(), "  1    Validation errors found or input invalid\n")
	}

	return fs, flags
}

// validateReport is the structured output of the validate command.
type validateReport struct {
	Valid        bool     `json:"valid"              yaml:"valid"`
	ErrorCount   int      `json:"error_count"        yaml:"error_count"`
	WarningCount int      `json:"warning_count"      yaml:"warning_count"`
	Errors       []string `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path")
	}
	if flags.Schema == "" {
		fs.Usage()
		return fmt.Errorf("validate command requires -schema")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	schemaValue, err := ReadDocument(flags.Schema)
	if err != nil {
		return err
	}

	result := validator.Validate(doc, validator.SchemaFromValue(schemaValue))

	if !flags.Quiet {
		if err := printValidationResult(result, flags); err != nil {
			return err
		}
	}
	if !result.Valid {
		return fmt.Errorf("document is invalid: %d error(s)", result.ErrorCount)
	}
	return nil
}

func printValidationResult(result *validator.ValidationResult, flags *ValidateFlags) error {
	if flags.Format != FormatText {
		report := validateReport{
			Valid:      result.Valid,
			ErrorCount: result.ErrorCount,
		}
		for _, e := range result.Errors {
			report.Errors = append(report.Errors, e.String())
		}
		if !flags.NoWarnings {
			report.WarningCount = result.WarningCount
			for _, w := range result.Warnings {
				report.Warnings = append(report.Warnings, w.String())
			}
		}
		return OutputValue(report, flags.Format, "")
	}

	if result.Valid {
		fmt.Println("Document is valid.")
	} else {
		fmt.Printf("Document is invalid: %d error(s)\n", result.ErrorCount)
	}
	for _, e := range result.Errors {
		fmt.Printf("  %s\n", e.String())
	}
	if !flags.NoWarnings {
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w.String())
		}
	}
	return nil
}
