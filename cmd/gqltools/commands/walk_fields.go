package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/gqltools/walker"
)

// handleWalkFields implements the "walk fields" subcommand.
// It collects fields from the document, applies filters, and renders output.
func handleWalkFields(args []string) error {
	fs := flag.NewFlagSet("walk fields", flag.ContinueOnError)

	// Field-specific flags
	name := fs.String("name", "", "Filter by field name")
	operation := fs.String("operation", "", "Filter by enclosing operation name")
	fragment := fs.String("fragment", "", "Filter by enclosing fragment name")
	aliased := fs.Bool("aliased", false, "Only show aliased fields")

	var flags WalkFlags
	bindWalkFlags(fs, &flags)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("walk fields requires a document file argument")
	}
	queryPath := fs.Arg(0)

	// 1. Collect: parse the document and collect fields
	result, err := parseQuery(queryPath, 0)
	if err != nil {
		return fmt.Errorf("walk fields: %w", err)
	}

	collector, err := walker.CollectFields(result.Document)
	if err != nil {
		return fmt.Errorf("walk fields: collecting fields: %w", err)
	}

	// 2. Filter
	matched := filterFields(collector.All, *name, *operation, *fragment, *aliased)

	if len(matched) == 0 {
		renderNoResults("fields", flags.Quiet)
		return nil
	}

	// 3. Render
	headers := []string{"NAME", "ALIAS", "OPERATION", "FRAGMENT", "PATH"}
	rows := make([][]string, 0, len(matched))
	for _, f := range matched {
		rows = append(rows, []string{
			f.Name,
			f.Alias,
			describeOperation(f.OperationType, f.OperationName),
			f.FragmentName,
			f.Path,
		})
	}

	if flags.Detail || flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, structuredFormat(flags.Format))
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

// filterFields applies all field filters and returns the matching subset.
func filterFields(fields []*walker.FieldInfo[string], name, operation, fragment string, aliased bool) []*walker.FieldInfo[string] {
	var matched []*walker.FieldInfo[string]
	for _, f := range fields {
		if name != "" && f.Name != name {
			continue
		}
		if operation != "" && f.OperationName != operation {
			continue
		}
		if fragment != "" && f.FragmentName != fragment {
			continue
		}
		if aliased && f.Alias == "" {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// describeOperation renders an operation scope as "type Name" or just the
// type for anonymous operations.
func describeOperation(opType, opName string) string {
	if opType == "" {
		return ""
	}
	if opName == "" {
		return opType
	}
	return opType + " " + opName
}

// structuredFormat maps the text format to YAML for detail rendering; JSON
// and YAML pass through.
func structuredFormat(format string) string {
	if format == FormatText {
		return FormatYAML
	}
	return format
}
