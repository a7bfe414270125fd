package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/gqltools/format"
)

// FormatFlags contains flags for the format command
type FormatFlags struct {
	Indent   int
	Minify   bool
	Output   string
	MaxDepth int
}

// SetupFormatFlags creates and configures a FlagSet for the format command.
func SetupFormatFlags() (*flag.FlagSet, *FormatFlags) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	flags := &FormatFlags{}

	fs.IntVar(&flags.Indent, "indent", 2, "number of spaces per indentation level")
	fs.BoolVar(&flags.Minify, "minify", false, "render the document on a single line")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "maximum selection set nesting depth (0 = default)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: gqltools format [flags] <file|->\n\n")
		Writef(output, "Reformat a query document in canonical form.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  gqltools format query.graphql\n")
		Writef(output, "  gqltools format --minify query.graphql\n")
		Writef(output, "  gqltools format --indent 4 -o formatted.graphql query.graphql\n")
		Writef(output, "  cat query.graphql | gqltools format -\n")
	}

	return fs, flags
}

// HandleFormat executes the format command
func HandleFormat(args []string) error {
	fs, flags := SetupFormatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Indent < 1 {
		return fmt.Errorf("indent must be at least 1")
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("format command requires exactly one file path or '-' for stdin")
	}
	queryPath := fs.Arg(0)

	result, err := parseQuery(queryPath, flags.MaxDepth)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	opts := format.Options{
		Indent:   strings.Repeat(" ", flags.Indent),
		Minified: flags.Minify,
	}

	out := os.Stdout
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := format.Fprint(out, result.Document, opts); err != nil {
		return fmt.Errorf("writing formatted document: %w", err)
	}
	if flags.Minify {
		Writef(out, "\n")
	}
	return nil
}
