package mcpserver

import (
	"context"

	"github.com/erraggy/gqltools/format"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Document queryInput `json:"document"       jsonschema:"The query document to parse"`
	Full     bool       `json:"full,omitempty" jsonschema:"Also return the document in canonical form"`
}

type parseOutput struct {
	DefinitionCount     int    `json:"definition_count"`
	OperationCount      int    `json:"operation_count"`
	FragmentCount       int    `json:"fragment_count"`
	FieldCount          int    `json:"field_count"`
	FragmentSpreadCount int    `json:"fragment_spread_count"`
	InlineFragmentCount int    `json:"inline_fragment_count"`
	VariableCount       int    `json:"variable_count"`
	MaxSelectionDepth   int    `json:"max_selection_depth"`
	ParseDuration       string `json:"parse_duration"`
	FullDocument        string `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		DefinitionCount:     result.Stats.DefinitionCount,
		OperationCount:      result.Stats.OperationCount,
		FragmentCount:       result.Stats.FragmentCount,
		FieldCount:          result.Stats.FieldCount,
		FragmentSpreadCount: result.Stats.FragmentSpreadCount,
		InlineFragmentCount: result.Stats.InlineFragmentCount,
		VariableCount:       result.Stats.VariableCount,
		MaxSelectionDepth:   result.Stats.MaxSelectionDepth,
		ParseDuration:       result.ParseDuration.String(),
	}

	if input.Full {
		output.FullDocument = format.Format(result.Document)
	}

	return nil, output, nil
}
