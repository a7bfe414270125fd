package walker

import (
	"context"

	"github.com/erraggy/gqltools/ast"
)

// WalkContext provides contextual information about the current node being
// visited by a handler.
type WalkContext[T ast.Text] struct {
	// Path is the dotted path from the document root to the current node.
	// Always populated. Example: "$.definitions[0].selectionSet.items[1]"
	Path string

	// OperationType is "query", "mutation", or "subscription" when walking
	// within an operation scope. A bare selection set is the query
	// shorthand and reports "query". Empty when not in operation scope.
	OperationType string

	// OperationName is the name of the enclosing operation.
	// Empty for anonymous operations or outside operation scope.
	OperationName string

	// FragmentName is the name of the enclosing fragment definition.
	// Empty when not walking inside a fragment definition.
	FragmentName string

	// Parent is the immediate ancestor node. Only populated when parent
	// tracking is enabled via WithParentTracking.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline
// propagation. Returns context.Background() if no context was set.
func (wc *WalkContext[T]) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// InOperationScope returns true if currently walking within an operation.
func (wc *WalkContext[T]) InOperationScope() bool {
	return wc.OperationType != ""
}

// InFragmentScope returns true if currently walking within a fragment
// definition.
func (wc *WalkContext[T]) InFragmentScope() bool {
	return wc.FragmentName != ""
}

// walkState tracks scope as the walker descends through the document.
// This is internal to the walker and used to build WalkContext instances.
type walkState struct {
	operationType string
	operationName string
	fragmentName  string
	parent        *ParentInfo
	ctx           context.Context
}

// buildContext creates a WalkContext from the current walk state.
func buildContext[T ast.Text](s *walkState, path string) *WalkContext[T] {
	return &WalkContext[T]{
		Path:          path,
		OperationType: s.operationType,
		OperationName: s.operationName,
		FragmentName:  s.fragmentName,
		Parent:        s.parent,
		ctx:           s.ctx,
	}
}

// clone creates a copy of the walk state for child traversal.
func (s *walkState) clone() *walkState {
	return &walkState{
		operationType: s.operationType,
		operationName: s.operationName,
		fragmentName:  s.fragmentName,
		parent:        s.parent,
		ctx:           s.ctx,
	}
}

// withParent returns a child state with node pushed onto the ancestor
// chain when tracking is enabled, or the state unchanged otherwise.
func (s *walkState) withParent(track bool, node any, path string) *walkState {
	if !track {
		return s
	}
	child := s.clone()
	child.parent = &ParentInfo{Node: node, Path: path, Parent: s.parent}
	return child
}
