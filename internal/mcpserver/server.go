// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes gqltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	gqltools "github.com/erraggy/gqltools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gqltools MCP server — parses, formats, and walks GraphQL query documents.

Provide documents via the document input as either a file path or inline content (exactly one of the two).

Tool guidance:
- parse returns a structural summary (definition/operation/fragment/field/variable counts); use full=true to also get the canonical document text.
- format returns the document reformatted; use minify=true for single-line output.
- walk_fields, walk_operations, and walk_fragments list document nodes with their dotted paths. Filter before asking for large documents.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "gqltools", Version: gqltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a GraphQL query document. Returns a structural summary: definition, operation, fragment, field, and variable counts plus the maximum selection depth. Use full=true to also return the document in canonical form.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Reformat a GraphQL query document in canonical form. Comments and original whitespace are not preserved. Use minify=true for single-line output, or indent to change the indentation width.",
	}, handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_fields",
		Description: "Walk and query fields in a GraphQL query document, including fields nested under other fields, inline fragments, and fragment definitions. Filter by name, enclosing operation, or enclosing fragment. Each result carries the field's dotted path.",
	}, handleWalkFields)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_operations",
		Description: "Walk and query operations in a GraphQL query document. Filter by type (query, mutation, subscription) or name. Anonymous operations and the bare selection set shorthand report an empty name; the shorthand reports type \"query\".",
	}, handleWalkOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_fragments",
		Description: "Walk and query fragment definitions and spreads in a GraphQL query document. Returns definitions with their type conditions and spread counts; unused_only=true restricts to definitions that are never spread.",
	}, handleWalkFragments)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
