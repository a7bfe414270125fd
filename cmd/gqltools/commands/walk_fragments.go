package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/gqltools/walker"
)

// handleWalkFragments implements the "walk fragments" subcommand.
func handleWalkFragments(args []string) error {
	fs := flag.NewFlagSet("walk fragments", flag.ContinueOnError)

	// Fragment-specific flags
	name := fs.String("name", "", "Select by fragment name")
	on := fs.String("on", "", "Filter by type condition")
	unused := fs.Bool("unused", false, "Only show fragments that are never spread")
	spreads := fs.Bool("spreads", false, "List fragment spreads instead of definitions")

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
		return fmt.Errorf("walk fragments requires a document file argument")
	}
	queryPath := fs.Arg(0)

	result, err := parseQuery(queryPath, 0)
	if err != nil {
		return fmt.Errorf("walk fragments: %w", err)
	}

	collector, err := walker.CollectFragments(result.Document)
	if err != nil {
		return fmt.Errorf("walk fragments: collecting fragments: %w", err)
	}

	if *spreads {
		return renderFragmentSpreads(collector, *name, flags)
	}

	unusedNames := make(map[string]bool)
	for _, n := range collector.Unused() {
		unusedNames[n] = true
	}

	var matched []*walker.FragmentDefinitionInfo[string]
	for _, def := range collector.Definitions {
		if *name != "" && def.Name != *name {
			continue
		}
		if *on != "" && def.TypeCondition != *on {
			continue
		}
		if *unused && !unusedNames[def.Name] {
			continue
		}
		matched = append(matched, def)
	}

	if len(matched) == 0 {
		renderNoResults("fragments", flags.Quiet)
		return nil
	}

	headers := []string{"NAME", "ON", "SPREADS", "PATH"}
	rows := make([][]string, 0, len(matched))
	for _, def := range matched {
		rows = append(rows, []string{
			def.Name,
			def.TypeCondition,
			strconv.Itoa(len(collector.SpreadsByName[def.Name])),
			def.Path,
		})
	}

	if flags.Detail || flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, structuredFormat(flags.Format))
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

// renderFragmentSpreads renders spreads instead of definitions.
func renderFragmentSpreads(collector *walker.FragmentCollector[string], name string, flags WalkFlags) error {
	var matched []*walker.FragmentSpreadInfo[string]
	for _, spread := range collector.Spreads {
		if name != "" && spread.Name != name {
			continue
		}
		matched = append(matched, spread)
	}

	if len(matched) == 0 {
		renderNoResults("fragment spreads", flags.Quiet)
		return nil
	}

	headers := []string{"NAME", "DEFINED", "PATH"}
	rows := make([][]string, 0, len(matched))
	for _, spread := range matched {
		_, defined := collector.ByName[spread.Name]
		rows = append(rows, []string{
			spread.Name,
			strconv.FormatBool(defined),
			spread.Path,
		})
	}

	if flags.Detail || flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, structuredFormat(flags.Format))
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}
