// Package commands provides CLI command handlers for gqltools.
package commands

import (
	"fmt"
	"io"
	"os"

	gqltools "github.com/erraggy/gqltools"
	"github.com/erraggy/gqltools/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// FormatQueryPath returns a display-friendly path for the query document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatQueryPath(queryPath string) string {
	if queryPath == StdinFilePath {
		return "<stdin>"
	}
	return queryPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// parseQuery parses a query document from a file path or stdin ("-").
func parseQuery(queryPath string, maxDepth int) (*parser.ParseResult[string], error) {
	p := parser.New[string]()
	if maxDepth > 0 {
		p.MaxDepth = maxDepth
	}

	if queryPath == StdinFilePath {
		return p.ParseReader(os.Stdin)
	}
	return p.ParseFile(queryPath)
}

// OutputQueryHeader outputs the common document header to stderr.
// This includes gqltools version and the document path.
func OutputQueryHeader(queryPath string) {
	Writef(os.Stderr, "gqltools version: %s\n", gqltools.Version())
	Writef(os.Stderr, "Document: %s\n", FormatQueryPath(queryPath))
}

// OutputQueryStats outputs the common document statistics to stderr.
func OutputQueryStats(stats parser.DocumentStats, parseTime any) {
	Writef(os.Stderr, "Definitions: %d\n", stats.DefinitionCount)
	Writef(os.Stderr, "Operations: %d\n", stats.OperationCount)
	Writef(os.Stderr, "Fragments: %d\n", stats.FragmentCount)
	Writef(os.Stderr, "Fields: %d\n", stats.FieldCount)
	Writef(os.Stderr, "Variables: %d\n", stats.VariableCount)
	Writef(os.Stderr, "Parse Time: %v\n", parseTime)
}
