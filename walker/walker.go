package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/gqltools/ast"
)

// Action controls the walker's behavior after a handler visits a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each query node kind.
// Each handler receives the walk context and the node, and returns an Action.

// DocumentHandler is called for the document root.
type DocumentHandler[T ast.Text] func(wc *WalkContext[T], node *ast.Document[T]) Action

// DefinitionHandler is called for each top-level definition, before the
// handler of its concrete variant.
type DefinitionHandler[T ast.Text] func(wc *WalkContext[T], node ast.Definition[T]) Action

// FragmentDefinitionHandler is called for each fragment definition.
type FragmentDefinitionHandler[T ast.Text] func(wc *WalkContext[T], node *ast.FragmentDefinition[T]) Action

// OperationHandler is called for each operation definition, before the
// handler of its concrete variant.
type OperationHandler[T ast.Text] func(wc *WalkContext[T], node ast.OperationDefinition[T]) Action

// QueryHandler is called for each typed query operation.
type QueryHandler[T ast.Text] func(wc *WalkContext[T], node *ast.Query[T]) Action

// MutationHandler is called for each mutation operation.
type MutationHandler[T ast.Text] func(wc *WalkContext[T], node *ast.Mutation[T]) Action

// SubscriptionHandler is called for each subscription operation.
type SubscriptionHandler[T ast.Text] func(wc *WalkContext[T], node *ast.Subscription[T]) Action

// SelectionSetHandler is called for each selection set, including nested ones.
type SelectionSetHandler[T ast.Text] func(wc *WalkContext[T], node *ast.SelectionSet[T]) Action

// VariableDefinitionHandler is called for each declared variable.
type VariableDefinitionHandler[T ast.Text] func(wc *WalkContext[T], node *ast.VariableDefinition[T]) Action

// SelectionHandler is called for each selection, before the handler of its
// concrete variant.
type SelectionHandler[T ast.Text] func(wc *WalkContext[T], node ast.Selection[T]) Action

// FieldHandler is called for each field.
type FieldHandler[T ast.Text] func(wc *WalkContext[T], node *ast.Field[T]) Action

// FragmentSpreadHandler is called for each fragment spread.
type FragmentSpreadHandler[T ast.Text] func(wc *WalkContext[T], node *ast.FragmentSpread[T]) Action

// InlineFragmentHandler is called for each inline fragment.
type InlineFragmentHandler[T ast.Text] func(wc *WalkContext[T], node *ast.InlineFragment[T]) Action

// Walker traverses query documents and calls handlers for each node kind.
// Unlike the Visitor API, handlers return an [Action] so a walk can skip a
// subtree or stop early.
type Walker[T ast.Text] struct {
	// Handlers
	onDocument           DocumentHandler[T]
	onDefinition         DefinitionHandler[T]
	onFragmentDefinition FragmentDefinitionHandler[T]
	onOperation          OperationHandler[T]
	onQuery              QueryHandler[T]
	onMutation           MutationHandler[T]
	onSubscription       SubscriptionHandler[T]
	onSelectionSet       SelectionSetHandler[T]
	onVariableDefinition VariableDefinitionHandler[T]
	onSelection          SelectionHandler[T]
	onField              FieldHandler[T]
	onFragmentSpread     FragmentSpreadHandler[T]
	onInlineFragment     InlineFragmentHandler[T]

	// Configuration
	trackParent bool
	userCtx     context.Context

	// Internal state
	stopped bool
}

// newWalker creates a Walker with default settings.
func newWalker[T ast.Text]() *Walker[T] {
	return &Walker[T]{}
}

// Walk traverses the document and calls registered handlers for each node.
// It returns an error only for a nil document; the traversal itself cannot
// fail on a well-formed tree.
func Walk[T ast.Text](doc *ast.Document[T], opts ...Option[T]) error {
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}

	w := newWalker[T]()
	for _, opt := range opts {
		opt(w)
	}

	w.walkDocument(doc)
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker[T]) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
