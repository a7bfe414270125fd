package walker

import (
	"fmt"

	"github.com/erraggy/gqltools/ast"
)

// WalkDocument walks a query syntax tree in pre-order, depth-first order,
// calling the matching Visitor hook once for every node. This is the entry
// point for the Visitor API; the per-kind walk functions below are internal
// traversal helpers.
//
// The document must be a well-formed tree: walking never fails and never
// returns early. A union node holding an unknown variant is a contract
// violation by the tree's builder and panics.
func WalkDocument[T ast.Text](v Visitor[T], doc *ast.Document[T]) {
	v.VisitDocument(doc)
	for _, def := range doc.Definitions {
		walkDefinition(v, def)
	}
}

func walkDefinition[T ast.Text](v Visitor[T], node ast.Definition[T]) {
	v.VisitDefinition(node)
	switch n := node.(type) {
	case *ast.FragmentDefinition[T]:
		walkFragmentDefinition(v, n)
	case ast.OperationDefinition[T]:
		walkOperationDefinition(v, n)
	default:
		panic(fmt.Sprintf("walker: unknown Definition variant %T", node))
	}
}

func walkFragmentDefinition[T ast.Text](v Visitor[T], node *ast.FragmentDefinition[T]) {
	v.VisitFragmentDefinition(node)
	walkSelectionSet(v, node.SelectionSet)
}

func walkOperationDefinition[T ast.Text](v Visitor[T], node ast.OperationDefinition[T]) {
	v.VisitOperationDefinition(node)
	switch n := node.(type) {
	case *ast.SelectionSet[T]:
		walkSelectionSet(v, n)
	case *ast.Query[T]:
		walkQuery(v, n)
	case *ast.Mutation[T]:
		walkMutation(v, n)
	case *ast.Subscription[T]:
		walkSubscription(v, n)
	default:
		panic(fmt.Sprintf("walker: unknown OperationDefinition variant %T", node))
	}
}

func walkQuery[T ast.Text](v Visitor[T], node *ast.Query[T]) {
	v.VisitQuery(node)
	for _, varDef := range node.VariableDefinitions {
		walkVariableDefinition(v, varDef)
	}
	walkSelectionSet(v, node.SelectionSet)
}

func walkMutation[T ast.Text](v Visitor[T], node *ast.Mutation[T]) {
	v.VisitMutation(node)
	for _, varDef := range node.VariableDefinitions {
		walkVariableDefinition(v, varDef)
	}
	walkSelectionSet(v, node.SelectionSet)
}

func walkSubscription[T ast.Text](v Visitor[T], node *ast.Subscription[T]) {
	v.VisitSubscription(node)
	for _, varDef := range node.VariableDefinitions {
		walkVariableDefinition(v, varDef)
	}
	walkSelectionSet(v, node.SelectionSet)
}

func walkSelectionSet[T ast.Text](v Visitor[T], node *ast.SelectionSet[T]) {
	v.VisitSelectionSet(node)
	for _, sel := range node.Items {
		walkSelection(v, sel)
	}
}

func walkVariableDefinition[T ast.Text](v Visitor[T], node *ast.VariableDefinition[T]) {
	v.VisitVariableDefinition(node)
}

func walkSelection[T ast.Text](v Visitor[T], node ast.Selection[T]) {
	v.VisitSelection(node)
	switch n := node.(type) {
	case *ast.Field[T]:
		walkField(v, n)
	case *ast.FragmentSpread[T]:
		walkFragmentSpread(v, n)
	case *ast.InlineFragment[T]:
		walkInlineFragment(v, n)
	default:
		panic(fmt.Sprintf("walker: unknown Selection variant %T", node))
	}
}

func walkField[T ast.Text](v Visitor[T], node *ast.Field[T]) {
	v.VisitField(node)
	if node.SelectionSet != nil {
		walkSelectionSet(v, node.SelectionSet)
	}
}

func walkFragmentSpread[T ast.Text](v Visitor[T], node *ast.FragmentSpread[T]) {
	v.VisitFragmentSpread(node)
}

func walkInlineFragment[T ast.Text](v Visitor[T], node *ast.InlineFragment[T]) {
	v.VisitInlineFragment(node)
	walkSelectionSet(v, node.SelectionSet)
}
