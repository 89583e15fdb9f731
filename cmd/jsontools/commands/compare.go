package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/comparer"
	"github.com/fauriatjules-max/jsontools/internal/cliutil"
)

// CompareFlags contains flags for the compare command
type CompareFlags struct {
	Tolerance float64
	Unordered bool
	Patch     bool
	Quiet     bool
	Format    string
}

// SetupCompareFlags creates and configures a FlagSet for the compare command.
func SetupCompareFlags() (*flag.FlagSet, *CompareFlags) {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	flags := &CompareFlags{}

	fs.Float64Var(&flags.Tolerance, "tolerance", 0, "treat numbers within this absolute difference as equal")
	fs.BoolVar(&flags.Unordered, "unordered", false, "compare top-level arrays ignoring element order")
	fs.BoolVar(&flags.Patch, "patch", false, "output RFC 6902 patch operations instead of differences")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress output; report the result via exit status only")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools compare [flags] <file-a> <file-b>\n\n")
		cliutil.Writef(fs.Output(), "Deep-compare two JSON or YAML documents and report differences.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools compare old.json new.json\n")
		cliutil.Writef(fs.Output(), "  jsontools compare -tolerance 0.001 metrics-a.json metrics-b.json\n")
		cliutil.Writef(fs.Output(), "  jsontools compare -patch -format json old.json new.json | jq .\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Documents are equal\n")
		cliutil.Writef(fs.Output(), "  1    Differences found or input invalid\n")
	}

	return fs, flags
}

// compareReport is the structured output of the compare command.
type compareReport struct {
	Equal           bool                  `json:"equal"                 yaml:"equal"`
	DifferenceCount int                   `json:"difference_count"      yaml:"difference_count"`
	Similarity      float64               `json:"similarity"            yaml:"similarity"`
	Differences     []comparer.Difference `json:"differences,omitempty" yaml:"differences,omitempty"`
}

// HandleCompare executes the compare command
func HandleCompare(args []string) error {
	fs, flags := SetupCompareFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("compare command requires exactly two file paths")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	a, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := ReadDocument(fs.Arg(1))
	if err != nil {
		return err
	}

	var result *comparer.CompareResult
	switch {
	case flags.Unordered:
		result, err = comparer.CompareArraysUnordered(a, b)
	case flags.Tolerance > 0:
		result, err = comparer.CompareWithTolerance(a, b, flags.Tolerance)
	default:
		result, err = comparer.Compare(a, b)
	}
	if err != nil {
		return err
	}

	if !flags.Quiet {
		if err := printCompareResult(a, b, result, flags); err != nil {
			return err
		}
	}
	if !result.Equal {
		return fmt.Errorf("documents differ in %d places", result.DifferenceCount)
	}
	return nil
}

func printCompareResult(a, b any, result *comparer.CompareResult, flags *CompareFlags) error {
	if flags.Patch {
		return OutputValue(comparer.PatchOperations(a, b), flags.Format, "")
	}

	if flags.Format != FormatText {
		report := compareReport{
			Equal:           result.Equal,
			DifferenceCount: result.DifferenceCount,
			Similarity:      result.Similarity,
			Differences:     result.Differences,
		}
		return OutputValue(report, flags.Format, "")
	}

	if result.Equal {
		fmt.Println("Documents are equal.")
		return nil
	}
	fmt.Printf("%d difference(s), similarity %.2f:\n", result.DifferenceCount, result.Similarity)
	for _, d := range result.Differences {
		fmt.Printf("  %s\n", d.String())
	}
	return nil
}
