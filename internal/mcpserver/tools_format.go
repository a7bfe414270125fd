package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/gqltools/format"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type formatInput struct {
	Document queryInput `json:"document"         jsonschema:"The query document to format"`
	Minify   bool       `json:"minify,omitempty" jsonschema:"Render the document on a single line"`
	Indent   int        `json:"indent,omitempty" jsonschema:"Spaces per indentation level (default 2)"`
}

type formatOutput struct {
	Document string `json:"document"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	opts := format.Options{Minified: input.Minify}
	if input.Indent > 0 {
		opts.Indent = strings.Repeat(" ", input.Indent)
	}

	return nil, formatOutput{Document: format.FormatWithOptions(result.Document, opts)}, nil
}
