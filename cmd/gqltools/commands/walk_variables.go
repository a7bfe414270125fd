package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/gqltools/walker"
)

// handleWalkVariables implements the "walk variables" subcommand.
func handleWalkVariables(args []string) error {
	fs := flag.NewFlagSet("walk variables", flag.ContinueOnError)

	// Variable-specific flags
	name := fs.String("name", "", "Select by variable name (without the leading $)")
	operation := fs.String("operation", "", "Filter by declaring operation name")
	withDefault := fs.Bool("with-default", false, "Only show variables with a default value")

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
		return fmt.Errorf("walk variables requires a document file argument")
	}
	queryPath := fs.Arg(0)

	result, err := parseQuery(queryPath, 0)
	if err != nil {
		return fmt.Errorf("walk variables: %w", err)
	}

	collector, err := walker.CollectVariables(result.Document)
	if err != nil {
		return fmt.Errorf("walk variables: collecting variables: %w", err)
	}

	var matched []*walker.VariableInfo[string]
	for _, v := range collector.All {
		if *name != "" && v.Name != *name {
			continue
		}
		if *operation != "" && v.OperationName != *operation {
			continue
		}
		if *withDefault && v.Definition.DefaultValue == nil {
			continue
		}
		matched = append(matched, v)
	}

	if len(matched) == 0 {
		renderNoResults("variables", flags.Quiet)
		return nil
	}

	headers := []string{"NAME", "TYPE", "DEFAULT", "OPERATION", "PATH"}
	rows := make([][]string, 0, len(matched))
	for _, v := range matched {
		rows = append(rows, []string{
			"$" + v.Name,
			v.Type,
			strconv.FormatBool(v.Definition.DefaultValue != nil),
			describeOperation(v.OperationType, v.OperationName),
			v.Path,
		})
	}

	if flags.Detail || flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, structuredFormat(flags.Format))
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}
