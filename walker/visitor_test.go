package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/gqltools/ast"
	"github.com/erraggy/gqltools/parser"
)

// mustParse parses a query source or fails the test.
func mustParse(t *testing.T, src string) *ast.Document[string] {
	t.Helper()
	doc, err := parser.ParseQuery[string](src)
	require.NoError(t, err)
	return doc
}

// countingVisitor counts how many times each hook fires.
type countingVisitor struct {
	NoopVisitor[string]

	documents           int
	definitions         int
	fragmentDefinitions int
	operations          int
	queries             int
	mutations           int
	subscriptions       int
	selectionSets       int
	variableDefinitions int
	selections          int
	fields              int
	fragmentSpreads     int
	inlineFragments     int
}

func (v *countingVisitor) VisitDocument(*ast.Document[string])                     { v.documents++ }
func (v *countingVisitor) VisitDefinition(ast.Definition[string])                  { v.definitions++ }
func (v *countingVisitor) VisitFragmentDefinition(*ast.FragmentDefinition[string]) { v.fragmentDefinitions++ }
func (v *countingVisitor) VisitOperationDefinition(ast.OperationDefinition[string]) {
	v.operations++
}
func (v *countingVisitor) VisitQuery(*ast.Query[string])                           { v.queries++ }
func (v *countingVisitor) VisitMutation(*ast.Mutation[string])                     { v.mutations++ }
func (v *countingVisitor) VisitSubscription(*ast.Subscription[string])             { v.subscriptions++ }
func (v *countingVisitor) VisitSelectionSet(*ast.SelectionSet[string])             { v.selectionSets++ }
func (v *countingVisitor) VisitVariableDefinition(*ast.VariableDefinition[string]) { v.variableDefinitions++ }
func (v *countingVisitor) VisitSelection(ast.Selection[string])                    { v.selections++ }
func (v *countingVisitor) VisitField(*ast.Field[string])                           { v.fields++ }
func (v *countingVisitor) VisitFragmentSpread(*ast.FragmentSpread[string])         { v.fragmentSpreads++ }
func (v *countingVisitor) VisitInlineFragment(*ast.InlineFragment[string])         { v.inlineFragments++ }

// fieldNameVisitor records field names in visit order.
type fieldNameVisitor struct {
	NoopVisitor[string]
	names []string
}

func (v *fieldNameVisitor) VisitField(node *ast.Field[string]) {
	v.names = append(v.names, node.Name)
}

func TestWalkDocument_NestedFields(t *testing.T) {
	doc := mustParse(t, `query Q { users { id country { id } } }`)

	v := &fieldNameVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, []string{"users", "id", "country", "id"}, v.names)
}

func TestWalkDocument_HookCounts(t *testing.T) {
	doc := mustParse(t, `query Q { users { id country { id } } }`)

	v := &countingVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, 1, v.documents)
	assert.Equal(t, 1, v.definitions)
	assert.Equal(t, 1, v.operations)
	assert.Equal(t, 1, v.queries)
	assert.Equal(t, 3, v.selectionSets)
	assert.Equal(t, 4, v.selections)
	assert.Equal(t, 4, v.fields)
	assert.Equal(t, 0, v.fragmentDefinitions)
	assert.Equal(t, 0, v.mutations)
	assert.Equal(t, 0, v.subscriptions)
	assert.Equal(t, 0, v.variableDefinitions)
	assert.Equal(t, 0, v.fragmentSpreads)
	assert.Equal(t, 0, v.inlineFragments)
}

func TestWalkDocument_DeclarationOrder(t *testing.T) {
	doc := mustParse(t, `{ a b c }`)

	v := &fieldNameVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, []string{"a", "b", "c"}, v.names)
}

// orderVisitor records the kind of each hook as it fires, to verify
// pre-order traversal.
type orderVisitor struct {
	NoopVisitor[string]
	events []string
}

func (v *orderVisitor) VisitDocument(*ast.Document[string]) { v.events = append(v.events, "document") }
func (v *orderVisitor) VisitDefinition(ast.Definition[string]) {
	v.events = append(v.events, "definition")
}
func (v *orderVisitor) VisitOperationDefinition(ast.OperationDefinition[string]) {
	v.events = append(v.events, "operation")
}
func (v *orderVisitor) VisitQuery(*ast.Query[string]) { v.events = append(v.events, "query") }
func (v *orderVisitor) VisitSelectionSet(*ast.SelectionSet[string]) {
	v.events = append(v.events, "selectionSet")
}
func (v *orderVisitor) VisitVariableDefinition(node *ast.VariableDefinition[string]) {
	v.events = append(v.events, "variable:"+node.Name)
}
func (v *orderVisitor) VisitSelection(ast.Selection[string]) {
	v.events = append(v.events, "selection")
}
func (v *orderVisitor) VisitField(node *ast.Field[string]) {
	v.events = append(v.events, "field:"+node.Name)
}
func (v *orderVisitor) VisitInlineFragment(*ast.InlineFragment[string]) {
	v.events = append(v.events, "inlineFragment")
}

func TestWalkDocument_PreOrder(t *testing.T) {
	doc := mustParse(t, `query Q($id: ID!) { user { name } }`)

	v := &orderVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, []string{
		"document",
		"definition",
		"operation",
		"query",
		"variable:id",
		"selectionSet",
		"selection",
		"field:user",
		"selectionSet",
		"selection",
		"field:name",
	}, v.events)
}

func TestWalkDocument_InlineFragmentBeforeItsSelections(t *testing.T) {
	doc := mustParse(t, `{ ... on User { id } }`)

	v := &orderVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, []string{
		"document",
		"definition",
		"operation",
		"selectionSet",
		"selection",
		"inlineFragment",
		"selectionSet",
		"selection",
		"field:id",
	}, v.events)
}

func TestWalkDocument_AllDefinitionKinds(t *testing.T) {
	doc := mustParse(t, `
		query GetUser($id: ID!) { user(id: $id) { ...userFields } }
		mutation UpdateUser { updateUser { id } }
		subscription OnUpdate { userUpdated { id } }
		{ shorthand }
		fragment userFields on User { name ... on Admin { role } }
	`)

	v := &countingVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, 1, v.documents)
	assert.Equal(t, 5, v.definitions)
	assert.Equal(t, 4, v.operations)
	assert.Equal(t, 1, v.queries)
	assert.Equal(t, 1, v.mutations)
	assert.Equal(t, 1, v.subscriptions)
	assert.Equal(t, 1, v.fragmentDefinitions)
	assert.Equal(t, 1, v.variableDefinitions)
	assert.Equal(t, 1, v.fragmentSpreads)
	assert.Equal(t, 1, v.inlineFragments)
	// user, updateUser, id, userUpdated, id, shorthand, name, role
	assert.Equal(t, 8, v.fields)
	// Every selection fires the Selection hook before its concrete hook.
	assert.Equal(t, v.fields+v.fragmentSpreads+v.inlineFragments, v.selections)
}

func TestWalkDocument_FragmentDefinitionVisited(t *testing.T) {
	doc := mustParse(t, `fragment f on User { id name }`)

	v := &countingVisitor{}
	WalkDocument[string](v, doc)

	assert.Equal(t, 1, v.fragmentDefinitions)
	assert.Equal(t, 0, v.operations)
	assert.Equal(t, 2, v.fields)
}

func TestWalkDocument_Idempotent(t *testing.T) {
	doc := mustParse(t, `query Q { users { id country { id } } }`)

	first := &countingVisitor{}
	WalkDocument[string](first, doc)
	second := &countingVisitor{}
	WalkDocument[string](second, doc)

	assert.Equal(t, first, second)
}

func TestWalkDocument_NoopVisitor(t *testing.T) {
	doc := mustParse(t, `query Q { users { id } }`)

	// A visitor that overrides nothing must walk the whole tree with zero
	// observable effect.
	assert.NotPanics(t, func() {
		WalkDocument[string](NoopVisitor[string]{}, doc)
	})
}

type symbol string

type symbolFieldVisitor struct {
	NoopVisitor[symbol]
	names []symbol
}

func (v *symbolFieldVisitor) VisitField(node *ast.Field[symbol]) {
	v.names = append(v.names, node.Name)
}

func TestWalkDocument_CustomTextType(t *testing.T) {
	doc, err := parser.ParseQuery[symbol](`{ users { id } }`)
	require.NoError(t, err)

	v := &symbolFieldVisitor{}
	WalkDocument[symbol](v, doc)

	assert.Equal(t, []symbol{"users", "id"}, v.names)
}

func TestWalkDocument_FieldWithoutSelectionSetIsLeaf(t *testing.T) {
	doc := mustParse(t, `{ id }`)

	v := &countingVisitor{}
	WalkDocument[string](v, doc)

	// One selection set for the shorthand operation, none under the field.
	assert.Equal(t, 1, v.selectionSets)
	assert.Equal(t, 1, v.fields)
}
