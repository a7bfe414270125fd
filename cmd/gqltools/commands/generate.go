package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/gqltools/generator"
)

// HandleGenerate routes the generate command to the appropriate subcommand
// handler.
func HandleGenerate(args []string) error {
	if len(args) == 0 {
		printGenerateUsage()
		return fmt.Errorf("generate command requires a subcommand")
	}

	subcommand := args[0]

	if subcommand == "--help" || subcommand == "-h" || subcommand == "help" {
		printGenerateUsage()
		return nil
	}

	switch subcommand {
	case "visitor":
		return handleGenerateVisitor(args[1:])
	default:
		printGenerateUsage()
		return fmt.Errorf("unknown generate subcommand: %s", subcommand)
	}
}

// handleGenerateVisitor implements the "generate visitor" subcommand.
func handleGenerateVisitor(args []string) error {
	fs := flag.NewFlagSet("generate visitor", flag.ContinueOnError)

	packageName := fs.String("package", "visitors", "Package name for the generated file")
	typeName := fs.String("name", "Visitor", "Visitor type name (any word separation is accepted)")
	textType := fs.String("text-type", "string", "Text representation the visitor is instantiated with")
	hooks := fs.String("hooks", "", "Comma-separated hooks to override (e.g. Field,FragmentSpread); empty means all")
	output := fs.String("o", "", "Output file path (default: stdout)")
	fs.StringVar(output, "output", "", "Output file path (default: stdout)")

	fs.Usage = func() {
		out := fs.Output()
		Writef(out, "Usage: gqltools generate visitor [flags]\n\n")
		Writef(out, "Emit a ready-to-edit Go visitor skeleton.\n\n")
		Writef(out, "Flags:\n")
		fs.PrintDefaults()
		Writef(out, "\nExamples:\n")
		Writef(out, "  gqltools generate visitor --name FieldCounter --hooks Field\n")
		Writef(out, "  gqltools generate visitor --package myvisitors -o visitor.go\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	opts := generator.Options{
		PackageName: *packageName,
		TypeName:    *typeName,
		TextType:    *textType,
	}
	if *hooks != "" {
		for _, h := range strings.Split(*hooks, ",") {
			opts.Hooks = append(opts.Hooks, strings.TrimSpace(h))
		}
	}

	src, err := generator.GenerateVisitor(opts)
	if err != nil {
		return fmt.Errorf("generate visitor: %w", err)
	}

	if *output == "" {
		Writef(os.Stdout, "%s", src)
		return nil
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		return fmt.Errorf("generate visitor: writing output: %w", err)
	}
	return nil
}

func printGenerateUsage() {
	Writef(os.Stderr, `Usage: gqltools generate <subcommand> [flags]

Generate Go source from document tooling templates.

Subcommands:
  visitor    Emit a visitor skeleton embedding walker.NoopVisitor

Examples:
  gqltools generate visitor --name FieldCounter --hooks Field
  gqltools generate visitor --package myvisitors -o visitor.go

Run 'gqltools generate <subcommand> --help' for subcommand-specific flags.
`)
}
