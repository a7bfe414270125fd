package main

import (
	"fmt"
	"os"

	gqltools "github.com/erraggy/gqltools"
	"github.com/erraggy/gqltools/cmd/gqltools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("gqltools v%s\n", gqltools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "format":
		if err := commands.HandleFormat(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "walk":
		if err := commands.HandleWalk(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gqltools - GraphQL Query Document Tools

Usage:
  gqltools <command> [options]

Commands:
  parse       Parse a query document and report its structure
  format      Reformat a query document in canonical form
  walk        Query and explore fields, operations, fragments, and variables
  generate    Generate Go source (visitor skeletons)
  mcp         Run an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  gqltools parse query.graphql
  gqltools format --minify query.graphql
  gqltools walk fields --name id query.graphql
  gqltools walk operations --type mutation query.graphql
  gqltools generate visitor --name FieldCounter --hooks Field
  cat query.graphql | gqltools parse -q -

Run 'gqltools <command> --help' for more information on a command.`)
}
