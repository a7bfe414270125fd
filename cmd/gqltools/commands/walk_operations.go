package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/gqltools/walker"
)

// handleWalkOperations implements the "walk operations" subcommand.
func handleWalkOperations(args []string) error {
	fs := flag.NewFlagSet("walk operations", flag.ContinueOnError)

	// Operation-specific flags
	opType := fs.String("type", "", "Filter by operation type (query, mutation, subscription)")
	name := fs.String("name", "", "Select by operation name")
	anonymous := fs.Bool("anonymous", false, "Only show anonymous operations")

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
	if err := validateOperationType(*opType); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("walk operations requires a document file argument")
	}
	queryPath := fs.Arg(0)

	result, err := parseQuery(queryPath, 0)
	if err != nil {
		return fmt.Errorf("walk operations: %w", err)
	}

	collector, err := walker.CollectOperations(result.Document)
	if err != nil {
		return fmt.Errorf("walk operations: collecting operations: %w", err)
	}

	var matched []*walker.OperationInfo[string]
	for _, op := range collector.All {
		if *opType != "" && op.Type != *opType {
			continue
		}
		if *name != "" && op.Name != *name {
			continue
		}
		if *anonymous && op.Name != "" {
			continue
		}
		matched = append(matched, op)
	}

	if len(matched) == 0 {
		renderNoResults("operations", flags.Quiet)
		return nil
	}

	headers := []string{"TYPE", "NAME", "VARIABLES", "PATH"}
	rows := make([][]string, 0, len(matched))
	for _, op := range matched {
		rows = append(rows, []string{
			op.Type,
			op.Name,
			strconv.Itoa(op.VariableCount),
			op.Path,
		})
	}

	if flags.Detail || flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, structuredFormat(flags.Format))
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

func validateOperationType(opType string) error {
	switch opType {
	case "", "query", "mutation", "subscription":
		return nil
	default:
		return fmt.Errorf("invalid operation type '%s'. Valid types: query, mutation, subscription", opType)
	}
}
