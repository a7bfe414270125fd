package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/gqltools/format"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format   string
	Full     bool
	Quiet    bool
	MaxDepth int
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format for the summary: text, json, yaml")
	fs.BoolVar(&flags.Full, "full", false, "output the full document in canonical form instead of a summary")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the result, no diagnostic messages")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "maximum selection set nesting depth (0 = default)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: gqltools parse [flags] <file|->\n\n")
		Writef(output, "Parse a query document and report its structure.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  gqltools parse query.graphql\n")
		Writef(output, "  gqltools parse --format json query.graphql\n")
		Writef(output, "  gqltools parse --full query.graphql\n")
		Writef(output, "  cat query.graphql | gqltools parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}
	queryPath := fs.Arg(0)

	result, err := parseQuery(queryPath, flags.MaxDepth)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	// Diagnostics go to stderr to keep stdout clean for piping.
	if !flags.Quiet {
		OutputQueryHeader(queryPath)
		OutputQueryStats(result.Stats, result.ParseDuration)
		Writef(os.Stderr, "\n")
	}

	if flags.Full {
		Writef(os.Stdout, "%s", format.Format(result.Document))
		return nil
	}

	if flags.Format == FormatText {
		headers := []string{"DEFINITIONS", "OPERATIONS", "FRAGMENTS", "FIELDS", "VARIABLES", "MAX DEPTH"}
		rows := [][]string{{
			fmt.Sprintf("%d", result.Stats.DefinitionCount),
			fmt.Sprintf("%d", result.Stats.OperationCount),
			fmt.Sprintf("%d", result.Stats.FragmentCount),
			fmt.Sprintf("%d", result.Stats.FieldCount),
			fmt.Sprintf("%d", result.Stats.VariableCount),
			fmt.Sprintf("%d", result.Stats.MaxSelectionDepth),
		}}
		RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
		return nil
	}
	return RenderDetail(os.Stdout, result.Stats, flags.Format)
}
