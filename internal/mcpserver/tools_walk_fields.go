package mcpserver

import (
	"context"

	"github.com/erraggy/gqltools/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkFieldsInput struct {
	Document  queryInput `json:"document"            jsonschema:"The query document to walk"`
	Name      string     `json:"name,omitempty"      jsonschema:"Filter by field name"`
	Operation string     `json:"operation,omitempty" jsonschema:"Filter by enclosing operation name"`
	Fragment  string     `json:"fragment,omitempty"  jsonschema:"Filter by enclosing fragment name"`
}

type fieldSummary struct {
	Name          string `json:"name"`
	Alias         string `json:"alias,omitempty"`
	Path          string `json:"path"`
	OperationType string `json:"operation_type,omitempty"`
	OperationName string `json:"operation_name,omitempty"`
	FragmentName  string `json:"fragment_name,omitempty"`
}

type walkFieldsOutput struct {
	Total  int            `json:"total"`
	Fields []fieldSummary `json:"fields"`
}

func handleWalkFields(_ context.Context, _ *mcp.CallToolRequest, input walkFieldsInput) (*mcp.CallToolResult, walkFieldsOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), walkFieldsOutput{}, nil
	}

	collector, err := walker.CollectFields(result.Document)
	if err != nil {
		return errResult(err), walkFieldsOutput{}, nil
	}

	output := walkFieldsOutput{Fields: []fieldSummary{}}
	for _, f := range collector.All {
		if input.Name != "" && f.Name != input.Name {
			continue
		}
		if input.Operation != "" && f.OperationName != input.Operation {
			continue
		}
		if input.Fragment != "" && f.FragmentName != input.Fragment {
			continue
		}
		output.Fields = append(output.Fields, fieldSummary{
			Name:          f.Name,
			Alias:         f.Alias,
			Path:          f.Path,
			OperationType: f.OperationType,
			OperationName: f.OperationName,
			FragmentName:  f.FragmentName,
		})
	}
	output.Total = len(output.Fields)

	return nil, output, nil
}
