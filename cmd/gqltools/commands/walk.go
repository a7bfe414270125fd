package commands

import (
	"flag"
	"fmt"
	"os"
)

// HandleWalk routes the walk command to the appropriate subcommand handler.
func HandleWalk(args []string) error {
	if len(args) == 0 {
		printWalkUsage()
		return fmt.Errorf("walk command requires a subcommand")
	}

	subcommand := args[0]

	// Handle --help at walk level
	if subcommand == "--help" || subcommand == "-h" || subcommand == "help" {
		printWalkUsage()
		return nil
	}

	subArgs := args[1:]

	switch subcommand {
	case "fields":
		return handleWalkFields(subArgs)
	case "operations":
		return handleWalkOperations(subArgs)
	case "fragments":
		return handleWalkFragments(subArgs)
	case "variables":
		return handleWalkVariables(subArgs)
	default:
		printWalkUsage()
		return fmt.Errorf("unknown walk subcommand: %s", subcommand)
	}
}

// WalkFlags contains common flags shared by all walk subcommands.
type WalkFlags struct {
	Format string // Output format: text, json, yaml.
	Quiet  bool   // Suppress headers and decoration for piping.
	Detail bool   // Show full node info instead of summary table.
}

// bindWalkFlags registers the common walk flags on a FlagSet.
func bindWalkFlags(fs *flag.FlagSet, flags *WalkFlags) {
	fs.StringVar(&flags.Format, "format", FormatText, "Output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "quiet", false, "Suppress headers and decoration")
	fs.BoolVar(&flags.Quiet, "q", false, "Suppress headers and decoration (shorthand)")
	fs.BoolVar(&flags.Detail, "detail", false, "Show full node info instead of summary table")
}

// renderNoResults prints an informative message when no results match the filters.
func renderNoResults(nodeType string, quiet bool) {
	if !quiet {
		Writef(os.Stderr, "No %s matched the given filters.\n", nodeType)
	}
}

func printWalkUsage() {
	Writef(os.Stderr, `Usage: gqltools walk <subcommand> [flags] <file|->

Query and explore query documents.

Subcommands:
  fields        List or inspect fields
  operations    List or inspect operations
  fragments     List or inspect fragment definitions and spreads
  variables     List or inspect variable definitions

Common Flags:
  --format      Output format: text (default), json, yaml
  -q, --quiet   Suppress headers and decoration for piping
  --detail      Show full node info instead of summary table

Examples:
  gqltools walk fields query.graphql
  gqltools walk fields --name id --detail query.graphql
  gqltools walk operations --type mutation query.graphql
  gqltools walk fragments --unused query.graphql
  gqltools walk variables --operation GetUser -q --format json query.graphql | jq

Run 'gqltools walk <subcommand> --help' for subcommand-specific flags.
`)
}
