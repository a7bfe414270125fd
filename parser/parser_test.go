package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/gqltools/ast"
)

func TestParseQuery_SimpleQuery(t *testing.T) {
	doc, err := ParseQuery[string](`query GetUser { user { id name } }`)
	require.NoError(t, err)

	require.Len(t, doc.Definitions, 1)
	q, ok := doc.Definitions[0].(*ast.Query[string])
	require.True(t, ok)
	assert.Equal(t, "GetUser", q.Name)
	require.NotNil(t, q.SelectionSet)
	require.Len(t, q.SelectionSet.Items, 1)

	user, ok := q.SelectionSet.Items[0].(*ast.Field[string])
	require.True(t, ok)
	assert.Equal(t, "user", user.Name)
	require.NotNil(t, user.SelectionSet)
	assert.Len(t, user.SelectionSet.Items, 2)
}

func TestParseQuery_Shorthand(t *testing.T) {
	doc, err := ParseQuery[string](`{ id }`)
	require.NoError(t, err)

	require.Len(t, doc.Definitions, 1)
	set, ok := doc.Definitions[0].(*ast.SelectionSet[string])
	require.True(t, ok)
	assert.Len(t, set.Items, 1)
}

func TestParseQuery_AnonymousOperation(t *testing.T) {
	doc, err := ParseQuery[string](`query { id }`)
	require.NoError(t, err)

	q, ok := doc.Definitions[0].(*ast.Query[string])
	require.True(t, ok)
	assert.Empty(t, q.Name)
}

func TestParseQuery_MutationAndSubscription(t *testing.T) {
	doc, err := ParseQuery[string](`
		mutation UpdateUser { updateUser { id } }
		subscription OnUpdate { userUpdated { id } }
	`)
	require.NoError(t, err)

	require.Len(t, doc.Definitions, 2)
	m, ok := doc.Definitions[0].(*ast.Mutation[string])
	require.True(t, ok)
	assert.Equal(t, "UpdateUser", m.Name)

	s, ok := doc.Definitions[1].(*ast.Subscription[string])
	require.True(t, ok)
	assert.Equal(t, "OnUpdate", s.Name)
}

func TestParseQuery_FragmentDefinition(t *testing.T) {
	doc, err := ParseQuery[string](`fragment userFields on User @cached { id name }`)
	require.NoError(t, err)

	frag, ok := doc.Definitions[0].(*ast.FragmentDefinition[string])
	require.True(t, ok)
	assert.Equal(t, "userFields", frag.Name)
	assert.Equal(t, "User", frag.TypeCondition)
	require.Len(t, frag.Directives, 1)
	assert.Equal(t, "cached", frag.Directives[0].Name)
	assert.Len(t, frag.SelectionSet.Items, 2)
}

func TestParseQuery_FragmentNameOnRejected(t *testing.T) {
	_, err := ParseQuery[string](`fragment on on User { id }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `fragment name must not be "on"`)
}

func TestParseQuery_VariableDefinitions(t *testing.T) {
	doc, err := ParseQuery[string](`query Q($id: ID!, $limit: Int = 10, $tags: [String!]) { user { id } }`)
	require.NoError(t, err)

	q := doc.Definitions[0].(*ast.Query[string])
	require.Len(t, q.VariableDefinitions, 3)

	id := q.VariableDefinitions[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "ID!", id.Type.String())
	assert.Nil(t, id.DefaultValue)

	limit := q.VariableDefinitions[1]
	assert.Equal(t, "Int", limit.Type.String())
	def, ok := limit.DefaultValue.(*ast.IntValue[string])
	require.True(t, ok)
	assert.Equal(t, int64(10), def.Value)

	tags := q.VariableDefinitions[2]
	assert.Equal(t, "[String!]", tags.Type.String())
}

func TestParseQuery_NestedTypeReference(t *testing.T) {
	doc, err := ParseQuery[string](`query Q($e: [[Episode!]]!) { id }`)
	require.NoError(t, err)

	q := doc.Definitions[0].(*ast.Query[string])
	assert.Equal(t, "[[Episode!]]!", q.VariableDefinitions[0].Type.String())
}

func TestParseQuery_VariableInConstDefaultRejected(t *testing.T) {
	_, err := ParseQuery[string](`query Q($a: Int = $b) { id }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variables are not allowed in constant values")
}

func TestParseQuery_AliasedField(t *testing.T) {
	doc, err := ParseQuery[string](`{ fullName: name }`)
	require.NoError(t, err)

	set := doc.Definitions[0].(*ast.SelectionSet[string])
	field := set.Items[0].(*ast.Field[string])
	assert.Equal(t, "fullName", field.Alias)
	assert.Equal(t, "name", field.Name)
	assert.Equal(t, "fullName", field.ResponseKey())
}

func TestParseQuery_ArgumentsAndDirectives(t *testing.T) {
	doc, err := ParseQuery[string](`{ user(id: 4, active: true) @include(if: $cond) { id } }`)
	require.NoError(t, err)

	set := doc.Definitions[0].(*ast.SelectionSet[string])
	field := set.Items[0].(*ast.Field[string])

	require.Len(t, field.Arguments, 2)
	assert.Equal(t, "id", field.Arguments[0].Name)
	idVal, ok := field.Arguments[0].Value.(*ast.IntValue[string])
	require.True(t, ok)
	assert.Equal(t, int64(4), idVal.Value)

	boolVal, ok := field.Arguments[1].Value.(*ast.BooleanValue[string])
	require.True(t, ok)
	assert.True(t, boolVal.Value)

	require.Len(t, field.Directives, 1)
	assert.Equal(t, "include", field.Directives[0].Name)
	require.Len(t, field.Directives[0].Arguments, 1)
	_, ok = field.Directives[0].Arguments[0].Value.(*ast.Variable[string])
	assert.True(t, ok)
}

func TestParseQuery_ValueKinds(t *testing.T) {
	doc, err := ParseQuery[string](`{ f(
		i: -42,
		fl: 3.14,
		ex: 1e10,
		s: "hi\n",
		b: false,
		n: null,
		e: RED,
		l: [1, 2],
		o: {nested: {x: 1}, list: ["a"]}
	) }`)
	require.NoError(t, err)

	set := doc.Definitions[0].(*ast.SelectionSet[string])
	args := set.Items[0].(*ast.Field[string]).Arguments
	require.Len(t, args, 9)

	assert.Equal(t, int64(-42), args[0].Value.(*ast.IntValue[string]).Value)
	assert.InDelta(t, 3.14, args[1].Value.(*ast.FloatValue[string]).Value, 1e-9)
	assert.InDelta(t, 1e10, args[2].Value.(*ast.FloatValue[string]).Value, 1)
	assert.Equal(t, "hi\n", args[3].Value.(*ast.StringValue[string]).Value)
	assert.False(t, args[4].Value.(*ast.BooleanValue[string]).Value)
	_, isNull := args[5].Value.(*ast.NullValue[string])
	assert.True(t, isNull)
	assert.Equal(t, "RED", args[6].Value.(*ast.EnumValue[string]).Value)

	list := args[7].Value.(*ast.ListValue[string])
	require.Len(t, list.Values, 2)

	obj := args[8].Value.(*ast.ObjectValue[string])
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "nested", obj.Fields[0].Name)
	_, isObj := obj.Fields[0].Value.(*ast.ObjectValue[string])
	assert.True(t, isObj)
}

func TestParseQuery_BlockString(t *testing.T) {
	doc, err := ParseQuery[string]("{ f(s: \"\"\"\n    hello\n      world\n    \"\"\") }")
	require.NoError(t, err)

	set := doc.Definitions[0].(*ast.SelectionSet[string])
	sv := set.Items[0].(*ast.Field[string]).Arguments[0].Value.(*ast.StringValue[string])
	assert.True(t, sv.Block)
	assert.Equal(t, "hello\n  world", sv.Value)
}

func TestParseQuery_FragmentSpreadAndInlineFragment(t *testing.T) {
	doc, err := ParseQuery[string](`{
		...userFields @include(if: $x)
		... on Admin { role }
		... @skip(if: $y) { hidden }
	}`)
	require.NoError(t, err)

	set := doc.Definitions[0].(*ast.SelectionSet[string])
	require.Len(t, set.Items, 3)

	spread, ok := set.Items[0].(*ast.FragmentSpread[string])
	require.True(t, ok)
	assert.Equal(t, "userFields", spread.FragmentName)
	assert.Len(t, spread.Directives, 1)

	inline, ok := set.Items[1].(*ast.InlineFragment[string])
	require.True(t, ok)
	assert.Equal(t, "Admin", inline.TypeCondition)

	bare, ok := set.Items[2].(*ast.InlineFragment[string])
	require.True(t, ok)
	assert.Empty(t, bare.TypeCondition)
	assert.Len(t, bare.Directives, 1)
}

func TestParseQuery_CommentsAndCommas(t *testing.T) {
	doc, err := ParseQuery[string](`
		# leading comment
		query Q { # trailing comment
			a, b,, c
		}
	`)
	require.NoError(t, err)

	q := doc.Definitions[0].(*ast.Query[string])
	assert.Len(t, q.SelectionSet.Items, 3)
}

func TestParseQuery_EmptyDocument(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "# only a comment"} {
		_, err := ParseQuery[string](src)
		require.Error(t, err, "source %q", src)
		assert.Contains(t, err.Error(), "document has no definitions")
	}
}

func TestParseQuery_ErrorPositions(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantPos string
		wantMsg string
	}{
		{
			name:    "unexpected top level token",
			src:     "query Q { id }\n!",
			wantPos: "2:1",
			wantMsg: "expected operation or fragment definition",
		},
		{
			name:    "unclosed selection set",
			src:     "{ id ",
			wantPos: "1:6",
			wantMsg: "unclosed selection set",
		},
		{
			name:    "empty selection set",
			src:     "query Q { }",
			wantPos: "1:9",
			wantMsg: "selection set must not be empty",
		},
		{
			name:    "missing type condition",
			src:     "fragment f User { id }",
			wantPos: "1:12",
			wantMsg: `expected "on"`,
		},
		{
			name:    "bad number",
			src:     "{ f(x: 012) }",
			wantPos: "1:8",
			wantMsg: "unexpected digit after leading zero",
		},
		{
			name:    "unterminated string",
			src:     "{ f(x: \"abc) }",
			wantPos: "1:8",
			wantMsg: "unterminated string",
		},
		{
			name:    "lone dot",
			src:     "{ .id }",
			wantPos: "1:3",
			wantMsg: "did you mean '...'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery[string](tt.src)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantPos, parseErr.Position.String())
			assert.Contains(t, parseErr.Message, tt.wantMsg)
		})
	}
}

func TestParseQuery_Positions(t *testing.T) {
	doc, err := ParseQuery[string]("query Q {\n  user {\n    id\n  }\n}")
	require.NoError(t, err)

	q := doc.Definitions[0].(*ast.Query[string])
	assert.Equal(t, ast.Position{Line: 1, Column: 1}, q.Position)

	user := q.SelectionSet.Items[0].(*ast.Field[string])
	assert.Equal(t, ast.Position{Line: 2, Column: 3}, user.Position)

	id := user.SelectionSet.Items[0].(*ast.Field[string])
	assert.Equal(t, ast.Position{Line: 3, Column: 5}, id.Position)
}

func TestParser_MaxDepth(t *testing.T) {
	p := New[string]()
	p.MaxDepth = 3

	_, err := p.Parse(`{ a { b { c } } }`)
	require.NoError(t, err)

	_, err = p.Parse(`{ a { b { c { d } } } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested deeper than 3")
}

func TestParser_Stats(t *testing.T) {
	p := New[string]()
	result, err := p.Parse(`
		query GetUser($id: ID!) {
			user(id: $id) {
				id
				...extra
				... on Admin { role }
			}
		}
		fragment extra on User { email }
	`)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.DefinitionCount)
	assert.Equal(t, 1, result.Stats.OperationCount)
	assert.Equal(t, 1, result.Stats.FragmentCount)
	// user, id, role, email
	assert.Equal(t, 4, result.Stats.FieldCount)
	assert.Equal(t, 1, result.Stats.FragmentSpreadCount)
	assert.Equal(t, 1, result.Stats.InlineFragmentCount)
	assert.Equal(t, 1, result.Stats.VariableCount)
	assert.Equal(t, 3, result.Stats.MaxSelectionDepth)
	assert.GreaterOrEqual(t, result.ParseDuration, time.Duration(0))
}

func TestParser_ParseReader(t *testing.T) {
	p := New[string]()
	result, err := p.ParseReader(strings.NewReader(`{ id }`))
	require.NoError(t, err)
	assert.Len(t, result.Document.Definitions, 1)
	assert.Empty(t, result.SourcePath)
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.graphql")
	require.NoError(t, os.WriteFile(path, []byte(`query Q { id }`), 0o600))

	p := New[string]()
	result, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, 1, result.Stats.OperationCount)
}

func TestParser_ParseFileMissing(t *testing.T) {
	p := New[string]()
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.graphql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")
}

type symbol string

func TestParseQuery_CustomTextType(t *testing.T) {
	doc, err := ParseQuery[symbol](`query Q { id }`)
	require.NoError(t, err)

	q := doc.Definitions[0].(*ast.Query[symbol])
	assert.Equal(t, symbol("Q"), q.Name)
}

func TestParser_ZeroValueUsable(t *testing.T) {
	var p Parser[string]
	result, err := p.Parse(`{ id }`)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FieldCount)
}
