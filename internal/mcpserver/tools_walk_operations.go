package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/gqltools/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkOperationsInput struct {
	Document queryInput `json:"document"       jsonschema:"The query document to walk"`
	Type     string     `json:"type,omitempty" jsonschema:"Filter by operation type: query, mutation, or subscription"`
	Name     string     `json:"name,omitempty" jsonschema:"Select by operation name"`
}

type operationSummary struct {
	Type          string `json:"type"`
	Name          string `json:"name,omitempty"`
	Path          string `json:"path"`
	VariableCount int    `json:"variable_count"`
}

type walkOperationsOutput struct {
	Total      int                `json:"total"`
	Operations []operationSummary `json:"operations"`
}

func handleWalkOperations(_ context.Context, _ *mcp.CallToolRequest, input walkOperationsInput) (*mcp.CallToolResult, walkOperationsOutput, error) {
	switch input.Type {
	case "", "query", "mutation", "subscription":
	default:
		return errResult(fmt.Errorf("invalid operation type %q: must be query, mutation, or subscription", input.Type)), walkOperationsOutput{}, nil
	}

	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), walkOperationsOutput{}, nil
	}

	collector, err := walker.CollectOperations(result.Document)
	if err != nil {
		return errResult(err), walkOperationsOutput{}, nil
	}

	output := walkOperationsOutput{Operations: []operationSummary{}}
	for _, op := range collector.All {
		if input.Type != "" && op.Type != input.Type {
			continue
		}
		if input.Name != "" && op.Name != input.Name {
			continue
		}
		output.Operations = append(output.Operations, operationSummary{
			Type:          op.Type,
			Name:          op.Name,
			Path:          op.Path,
			VariableCount: op.VariableCount,
		})
	}
	output.Total = len(output.Operations)

	return nil, output, nil
}
