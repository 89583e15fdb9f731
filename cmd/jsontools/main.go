package main

import (
	"fmt"
	"os"

	"github.com/fauriatjules-max/jsontools"
	"github.com/fauriatjules-max/jsontools/cmd/jsontools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsontools v%s\n", jsontools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		exitOnError(commands.HandleGet(args))
	case "set":
		exitOnError(commands.HandleSet(args))
	case "delete":
		exitOnError(commands.HandleDelete(args))
	case "compare":
		exitOnError(commands.HandleCompare(args))
	case "merge":
		exitOnError(commands.HandleMerge(args))
	case "validate":
		exitOnError(commands.HandleValidate(args))
	case "generate":
		exitOnError(commands.HandleGenerate(args))
	case "flatten":
		exitOnError(commands.HandleFlatten(args))
	case "walk":
		exitOnError(commands.HandleWalk(args))
	case "mcp":
		exitOnError(commands.HandleMCP(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("jsontools - manipulate JSON and YAML documents")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  jsontools <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  get       Read a value by path expression")
	fmt.Println("  set       Set a value by path expression")
	fmt.Println("  delete    Delete a value by path expression")
	fmt.Println("  compare   Deep-compare two documents")
	fmt.Println("  merge     Deep-merge two or more documents")
	fmt.Println("  validate  Validate a document against a schema")
	fmt.Println("  generate  Generate a document from a template")
	fmt.Println("  flatten   Flatten nested objects to delimited keys")
	fmt.Println("  walk      List the path of every node")
	fmt.Println("  mcp       Run the Model Context Protocol server over stdio")
	fmt.Println("  version   Print the version")
	fmt.Println("  help      Show this help")
	fmt.Println()
	fmt.Println("Run 'jsontools <command> -h' for command-specific flags and examples.")
}
