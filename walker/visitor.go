package walker

import "github.com/erraggy/gqltools/ast"

// Visitor is the hook contract for [WalkDocument]. It declares exactly one
// hook per node kind in the query grammar. Hooks observe nodes; they return
// nothing and cannot alter the traversal.
//
// Implementations should embed [NoopVisitor], which provides a no-op
// default for every hook, and override only the hooks they need. New node
// kinds add one hook with a no-op default, which is non-breaking for
// embedders.
type Visitor[T ast.Text] interface {
	VisitDocument(node *ast.Document[T])

	VisitDefinition(node ast.Definition[T])

	VisitFragmentDefinition(node *ast.FragmentDefinition[T])

	VisitOperationDefinition(node ast.OperationDefinition[T])

	VisitQuery(node *ast.Query[T])

	VisitMutation(node *ast.Mutation[T])

	VisitSubscription(node *ast.Subscription[T])

	VisitSelectionSet(node *ast.SelectionSet[T])

	VisitVariableDefinition(node *ast.VariableDefinition[T])

	VisitSelection(node ast.Selection[T])

	VisitField(node *ast.Field[T])

	VisitFragmentSpread(node *ast.FragmentSpread[T])

	VisitInlineFragment(node *ast.InlineFragment[T])
}

// NoopVisitor implements every Visitor hook as a no-op. Embed it so your
// visitor only has to declare the hooks it cares about. A visitor that
// overrides nothing walks the whole tree with zero observable effect.
type NoopVisitor[T ast.Text] struct{}

var _ Visitor[string] = NoopVisitor[string]{}

// VisitDocument implements Visitor.
func (NoopVisitor[T]) VisitDocument(*ast.Document[T]) {}

// VisitDefinition implements Visitor.
func (NoopVisitor[T]) VisitDefinition(ast.Definition[T]) {}

// VisitFragmentDefinition implements Visitor.
func (NoopVisitor[T]) VisitFragmentDefinition(*ast.FragmentDefinition[T]) {}

// VisitOperationDefinition implements Visitor.
func (NoopVisitor[T]) VisitOperationDefinition(ast.OperationDefinition[T]) {}

// VisitQuery implements Visitor.
func (NoopVisitor[T]) VisitQuery(*ast.Query[T]) {}

// VisitMutation implements Visitor.
func (NoopVisitor[T]) VisitMutation(*ast.Mutation[T]) {}

// VisitSubscription implements Visitor.
func (NoopVisitor[T]) VisitSubscription(*ast.Subscription[T]) {}

// VisitSelectionSet implements Visitor.
func (NoopVisitor[T]) VisitSelectionSet(*ast.SelectionSet[T]) {}

// VisitVariableDefinition implements Visitor.
func (NoopVisitor[T]) VisitVariableDefinition(*ast.VariableDefinition[T]) {}

// VisitSelection implements Visitor.
func (NoopVisitor[T]) VisitSelection(ast.Selection[T]) {}

// VisitField implements Visitor.
func (NoopVisitor[T]) VisitField(*ast.Field[T]) {}

// VisitFragmentSpread implements Visitor.
func (NoopVisitor[T]) VisitFragmentSpread(*ast.FragmentSpread[T]) {}

// VisitInlineFragment implements Visitor.
func (NoopVisitor[T]) VisitInlineFragment(*ast.InlineFragment[T]) {}
