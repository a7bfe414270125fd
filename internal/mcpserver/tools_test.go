package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireErrResult asserts that a tool reported a domain error to the caller
// rather than failing the protocol exchange.
func requireErrResult(t *testing.T, result *mcp.CallToolResult) {
	t.Helper()
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
}

func TestHandleParse(t *testing.T) {
	input := parseInput{Document: queryInput{Content: `
		query GetUser($id: ID!) { user(id: $id) { id ...f } }
		fragment f on User { name }
	`}}

	result, output, err := handleParse(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.DefinitionCount)
	assert.Equal(t, 1, output.OperationCount)
	assert.Equal(t, 1, output.FragmentCount)
	assert.Equal(t, 3, output.FieldCount)
	assert.Equal(t, 1, output.FragmentSpreadCount)
	assert.Equal(t, 1, output.VariableCount)
	assert.Equal(t, 2, output.MaxSelectionDepth)
	assert.NotEmpty(t, output.ParseDuration)
	assert.Empty(t, output.FullDocument)
}

func TestHandleParse_Full(t *testing.T) {
	input := parseInput{
		Document: queryInput{Content: `{user{id}}`},
		Full:     true,
	}

	result, output, err := handleParse(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "{\n  user {\n    id\n  }\n}\n", output.FullDocument)
}

func TestHandleParse_SyntaxError(t *testing.T) {
	result, _, err := handleParse(context.Background(), nil, parseInput{Document: queryInput{Content: `query {`}})
	require.NoError(t, err)
	requireErrResult(t, result)
}

func TestHandleFormat(t *testing.T) {
	input := formatInput{Document: queryInput{Content: `query Q{user{id}}`}}

	result, output, err := handleFormat(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "query Q {\n  user {\n    id\n  }\n}\n", output.Document)
}

func TestHandleFormat_Minify(t *testing.T) {
	input := formatInput{
		Document: queryInput{Content: "query Q {\n  user {\n    id\n  }\n}"},
		Minify:   true,
	}

	result, output, err := handleFormat(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "query Q{user{id}}", output.Document)
}

func TestHandleFormat_CustomIndent(t *testing.T) {
	input := formatInput{
		Document: queryInput{Content: `{a}`},
		Indent:   4,
	}

	result, output, err := handleFormat(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "{\n    a\n}\n", output.Document)
}

func TestHandleWalkFields(t *testing.T) {
	input := walkFieldsInput{Document: queryInput{Content: `
		query GetUser { user { id fullName: name } }
		fragment f on User { id }
	`}}

	result, output, err := handleWalkFields(context.Background(), nil, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Equal(t, 4, output.Total)
	assert.Equal(t, "user", output.Fields[0].Name)
	assert.Equal(t, "query", output.Fields[0].OperationType)
	assert.Equal(t, "fullName", output.Fields[2].Alias)
	assert.Equal(t, "f", output.Fields[3].FragmentName)
}

func TestHandleWalkFields_Filters(t *testing.T) {
	spec := queryInput{Content: `
		query GetUser { user { id } }
		fragment f on User { id }
	`}

	result, _, _ := handleWalkFields(context.Background(), nil, walkFieldsInput{Document: spec, Name: "id"})
	require.Nil(t, result)

	_, output, err := handleWalkFields(context.Background(), nil, walkFieldsInput{Document: spec, Name: "id", Fragment: "f"})
	require.NoError(t, err)
	require.Equal(t, 1, output.Total)
	assert.Equal(t, "f", output.Fields[0].FragmentName)

	_, output, err = handleWalkFields(context.Background(), nil, walkFieldsInput{Document: spec, Operation: "Missing"})
	require.NoError(t, err)
	assert.Zero(t, output.Total)
	assert.NotNil(t, output.Fields)
}

func TestHandleWalkOperations(t *testing.T) {
	spec := queryInput{Content: `
		query GetUser($id: ID!) { user { id } }
		mutation UpdateUser { updateUser { id } }
		{ shorthand }
	`}

	result, output, err := handleWalkOperations(context.Background(), nil, walkOperationsInput{Document: spec})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Equal(t, 3, output.Total)
	assert.Equal(t, 1, output.Operations[0].VariableCount)
	assert.Equal(t, "query", output.Operations[2].Type)
	assert.Empty(t, output.Operations[2].Name)

	_, output, err = handleWalkOperations(context.Background(), nil, walkOperationsInput{Document: spec, Type: "mutation"})
	require.NoError(t, err)
	require.Equal(t, 1, output.Total)
	assert.Equal(t, "UpdateUser", output.Operations[0].Name)
}

func TestHandleWalkOperations_InvalidType(t *testing.T) {
	result, _, err := handleWalkOperations(context.Background(), nil, walkOperationsInput{
		Document: queryInput{Content: `{ id }`},
		Type:     "bogus",
	})
	require.NoError(t, err)
	requireErrResult(t, result)
}

func TestHandleWalkFragments(t *testing.T) {
	spec := queryInput{Content: `
		{ ...used ...used }
		fragment used on User { id }
		fragment unused on User { name }
	`}

	result, output, err := handleWalkFragments(context.Background(), nil, walkFragmentsInput{Document: spec})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Equal(t, 2, output.Total)
	assert.Equal(t, "used", output.Fragments[0].Name)
	assert.Equal(t, "User", output.Fragments[0].TypeCondition)
	assert.Equal(t, 2, output.Fragments[0].SpreadCount)

	_, output, err = handleWalkFragments(context.Background(), nil, walkFragmentsInput{Document: spec, UnusedOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, output.Total)
	assert.Equal(t, "unused", output.Fragments[0].Name)
	assert.Zero(t, output.Fragments[0].SpreadCount)
}
