package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/merger"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Strategy         string
	ArrayStrategy    string
	ConflictStrategy string
	CheckConflicts   bool
	Output           string
	Format           string
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Strategy, "strategy", "", "merge strategy: deep or shallow (default deep)")
	fs.StringVar(&flags.ArrayStrategy, "array-strategy", "", "array strategy: concat, union, intersection, replace, or deep (default concat)")
	fs.StringVar(&flags.ConflictStrategy, "conflict-strategy", "", "conflict strategy: source, target, throw, or priority (default source)")
	fs.BoolVar(&flags.CheckConflicts, "check-conflicts", false, "report conflicting paths instead of merging")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools merge [flags] <file>... \n\n")
		cliutil.Writef(fs.Output(), "Deep-merge two or more JSON or YAML documents, left to right.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nArray Strategies:\n")
		cliutil.Writef(fs.Output(), "  concat        append source elements after target elements\n")
		cliutil.Writef(fs.Output(), "  union         concat, then drop structural duplicates\n")
		cliutil.Writef(fs.Output(), "  intersection  keep only elements present on both sides\n")
		cliutil.Writef(fs.Output(), "  replace       use the source array wholesale\n")
		cliutil.Writef(fs.Output(), "  deep          merge element-by-element at matching indexes\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools merge base.json override.json\n")
		cliutil.Writef(fs.Output(), "  jsontools merge -array-strategy union -output merged.json a.json b.json c.json\n")
		cliutil.Writef(fs.Output(), "  jsontools merge -conflict-strategy priority defaults.yaml env.yaml local.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Merge succeeded (or no conflicts with -check-conflicts)\n")
		cliutil.Writef(fs.Output(), "  1    Conflict found or input invalid\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least two file paths")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	docs := make([]any, 0, fs.NArg())
	for _, path := range fs.Args() {
		doc, err := ReadDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if flags.CheckConflicts {
		return reportConflicts(docs)
	}

	var opts []merger.Option
	if flags.Strategy != "" {
		opts = append(opts, merger.WithStrategy(merger.Strategy(flags.Strategy)))
	}
	if flags.ArrayStrategy != "" {
		opts = append(opts, merger.WithArrayStrategy(merger.ArrayStrategy(flags.ArrayStrategy)))
	}
	if flags.ConflictStrategy != "" {
		opts = append(opts, merger.WithConflictStrategy(merger.ConflictStrategy(flags.ConflictStrategy)))
	}

	result, err := merger.MergeAll(docs, opts...)
	if err != nil {
		return err
	}
	return OutputValue(result, flags.Format, flags.Output)
}

func reportConflicts(docs []any) error {
	total := 0
	for i := 1; i < len(docs); i++ {
		conflicts, err := merger.CheckMergeConflicts(docs[0], docs[i])
		if err != nil {
			return err
		}
		for _, c := range conflicts {
			fmt.Printf("document %d: %s [%s]: %v != %v\n", i, c.Path, c.Type, c.TargetValue, c.SourceValue)
			total++
		}
	}
	if total > 0 {
		return fmt.Errorf("%d merge conflict(s) found", total)
	}
	fmt.Println("No merge conflicts.")
	return nil
}
