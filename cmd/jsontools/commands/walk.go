package commands

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/walker"
)

// WalkFlags contains flags for the walk command
type WalkFlags struct {
	Leaves   bool
	Count    bool
	Contains string
	Format   string
}

// SetupWalkFlags creates and configures a FlagSet for the walk command.
func SetupWalkFlags() (*flag.FlagSet, *WalkFlags) {
	fs := flag.NewFlagSet("walk", flag.ContinueOnError)
	flags := &WalkFlags{}

	fs.BoolVar(&flags.Leaves, "leaves", false, "print leaf paths with their values")
	fs.BoolVar(&flags.Count, "count", false, "print the total node count only")
	fs.StringVar(&flags.Contains, "contains", "", "only show paths containing this substring")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools walk [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Walk a JSON or YAML document and list the path of every node.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsontools walk document.json\n")
		cliutil.Writef(fs.Output(), "  jsontools walk -leaves -contains email users.json\n")
		cliutil.Writef(fs.Output(), "  jsontools walk -count large.json\n")
	}

	return fs, flags
}

// HandleWalk executes the walk command
func HandleWalk(args []string) error {
	fs, flags := SetupWalkFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("walk command requires exactly one file path")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	doc, err := ReadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	switch {
	case flags.Count:
		count, err := walker.Count(doc)
		if err != nil {
			return err
		}
		fmt.Println(count)
		return nil

	case flags.Leaves:
		leaves, err := walker.CollectLeaves(doc)
		if err != nil {
			return err
		}
		if flags.Contains != "" {
			for path := range leaves {
				if !strings.Contains(path, flags.Contains) {
					delete(leaves, path)
				}
			}
		}
		if flags.Format != FormatText {
			return OutputValue(leaves, flags.Format, "")
		}
		for _, path := range sortedKeys(leaves) {
			fmt.Printf("%s = %v\n", path, leaves[path])
		}
		return nil

	default:
		paths, err := walker.CollectPaths(doc)
		if err != nil {
			return err
		}
		if flags.Contains != "" {
			filtered := paths[:0]
			for _, path := range paths {
				if strings.Contains(path, flags.Contains) {
					filtered = append(filtered, path)
				}
			}
			paths = filtered
		}
		if flags.Format != FormatText {
			return OutputValue(paths, flags.Format, "")
		}
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
