package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/gqltools/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving MCP over stdio until the
// client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: gqltools mcp\n\n")
		Writef(output, "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "The server exposes parse, format, and walk tools for query documents.\n")
		Writef(output, "Wire it into an MCP client configuration as:\n\n")
		Writef(output, "  { \"command\": \"gqltools\", \"args\": [\"mcp\"] }\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
