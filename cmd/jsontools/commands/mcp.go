package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/fauriatjules-max/jsontools/internal/cliutil"
	"github.com/fauriatjules-max/jsontools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsontools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the Model Context Protocol server over stdio, exposing jsontools\n")
		cliutil.Writef(fs.Output(), "as tools: query, modify, compare, merge, validate, transform, generate.\n\n")
		cliutil.Writef(fs.Output(), "Defaults are configurable via JSONTOOLS_* environment variables; see\n")
		cliutil.Writef(fs.Output(), "the server instructions reported to the MCP client.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
