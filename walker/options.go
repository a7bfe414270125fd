package walker

import (
	"context"

	"github.com/erraggy/gqltools/ast"
)

// Option configures the handler-based Walker.
type Option[T ast.Text] func(*Walker[T])

// WithDocumentHandler sets the handler for the document root.
func WithDocumentHandler[T ast.Text](fn DocumentHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onDocument = fn }
}

// WithDefinitionHandler sets the handler for top-level definitions.
// It is called before the handler of the definition's concrete variant.
func WithDefinitionHandler[T ast.Text](fn DefinitionHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onDefinition = fn }
}

// WithFragmentDefinitionHandler sets the handler for fragment definitions.
func WithFragmentDefinitionHandler[T ast.Text](fn FragmentDefinitionHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onFragmentDefinition = fn }
}

// WithOperationHandler sets the handler for operation definitions.
// It is called before the handler of the operation's concrete variant.
func WithOperationHandler[T ast.Text](fn OperationHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onOperation = fn }
}

// WithQueryHandler sets the handler for typed query operations.
func WithQueryHandler[T ast.Text](fn QueryHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onQuery = fn }
}

// WithMutationHandler sets the handler for mutation operations.
func WithMutationHandler[T ast.Text](fn MutationHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onMutation = fn }
}

// WithSubscriptionHandler sets the handler for subscription operations.
func WithSubscriptionHandler[T ast.Text](fn SubscriptionHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onSubscription = fn }
}

// WithSelectionSetHandler sets the handler for selection sets, including
// nested ones.
func WithSelectionSetHandler[T ast.Text](fn SelectionSetHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onSelectionSet = fn }
}

// WithVariableDefinitionHandler sets the handler for variable definitions.
func WithVariableDefinitionHandler[T ast.Text](fn VariableDefinitionHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onVariableDefinition = fn }
}

// WithSelectionHandler sets the handler for selections. It is called before
// the handler of the selection's concrete variant.
func WithSelectionHandler[T ast.Text](fn SelectionHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onSelection = fn }
}

// WithFieldHandler sets the handler for fields.
func WithFieldHandler[T ast.Text](fn FieldHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onField = fn }
}

// WithFragmentSpreadHandler sets the handler for fragment spreads.
func WithFragmentSpreadHandler[T ast.Text](fn FragmentSpreadHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onFragmentSpread = fn }
}

// WithInlineFragmentHandler sets the handler for inline fragments.
func WithInlineFragmentHandler[T ast.Text](fn InlineFragmentHandler[T]) Option[T] {
	return func(w *Walker[T]) { w.onInlineFragment = fn }
}

// WithParentTracking enables tracking of parent nodes during traversal.
// When enabled, WalkContext.Parent provides access to ancestor nodes, and
// helper methods like ParentField(), ParentSelectionSet(),
// ParentOperation(), Ancestors(), and Depth() become available.
//
// This adds some overhead (ancestor chain management), so only enable when
// needed. By default, parent tracking is disabled.
func WithParentTracking[T ast.Text]() Option[T] {
	return func(w *Walker[T]) { w.trackParent = true }
}

// WithUserContext sets the context for cancellation and deadline
// propagation. The context is available to handlers via wc.Context(); a
// handler that observes cancellation typically returns Stop.
func WithUserContext[T ast.Text](ctx context.Context) Option[T] {
	return func(w *Walker[T]) { w.userCtx = ctx }
}
