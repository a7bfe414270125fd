package mcpserver

import (
	"context"

	"github.com/erraggy/gqltools/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkFragmentsInput struct {
	Document   queryInput `json:"document"              jsonschema:"The query document to walk"`
	Name       string     `json:"name,omitempty"        jsonschema:"Select by fragment name"`
	UnusedOnly bool       `json:"unused_only,omitempty" jsonschema:"Only return fragments that are never spread"`
}

type fragmentSummary struct {
	Name          string `json:"name"`
	TypeCondition string `json:"type_condition"`
	Path          string `json:"path"`
	SpreadCount   int    `json:"spread_count"`
}

type walkFragmentsOutput struct {
	Total     int               `json:"total"`
	Fragments []fragmentSummary `json:"fragments"`
}

func handleWalkFragments(_ context.Context, _ *mcp.CallToolRequest, input walkFragmentsInput) (*mcp.CallToolResult, walkFragmentsOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), walkFragmentsOutput{}, nil
	}

	collector, err := walker.CollectFragments(result.Document)
	if err != nil {
		return errResult(err), walkFragmentsOutput{}, nil
	}

	output := walkFragmentsOutput{Fragments: []fragmentSummary{}}
	for _, def := range collector.Definitions {
		spreadCount := len(collector.SpreadsByName[def.Name])
		if input.Name != "" && def.Name != input.Name {
			continue
		}
		if input.UnusedOnly && spreadCount > 0 {
			continue
		}
		output.Fragments = append(output.Fragments, fragmentSummary{
			Name:          def.Name,
			TypeCondition: def.TypeCondition,
			Path:          def.Path,
			SpreadCount:   spreadCount,
		})
	}
	output.Total = len(output.Fragments)

	return nil, output, nil
}
