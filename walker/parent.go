package walker

import "github.com/erraggy/gqltools/ast"

// ParentInfo provides information about a parent node in the traversal.
// This enables handlers to access ancestor nodes for context-aware
// processing.
type ParentInfo struct {
	// Node is the parent node (*ast.Field, *ast.SelectionSet, etc.)
	Node any

	// Path is the dotted path to this parent node
	Path string

	// Parent is the grandparent, enabling ancestor chain traversal.
	// nil for the root-level parent.
	Parent *ParentInfo
}

// ParentField returns the nearest ancestor that is a Field, if any.
// This is useful for determining which field a nested selection belongs to.
func (wc *WalkContext[T]) ParentField() (*ast.Field[T], bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if f, ok := p.Node.(*ast.Field[T]); ok {
			return f, true
		}
	}
	return nil, false
}

// ParentSelectionSet returns the nearest ancestor that is a SelectionSet,
// if any.
func (wc *WalkContext[T]) ParentSelectionSet() (*ast.SelectionSet[T], bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if ss, ok := p.Node.(*ast.SelectionSet[T]); ok {
			return ss, true
		}
	}
	return nil, false
}

// ParentOperation returns the nearest ancestor that is a typed operation
// (Query, Mutation, or Subscription), if any. A shorthand operation is a
// plain selection set and is not matched here; use OperationType to detect
// that scope.
func (wc *WalkContext[T]) ParentOperation() (ast.OperationDefinition[T], bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		switch p.Node.(type) {
		case *ast.Query[T], *ast.Mutation[T], *ast.Subscription[T]:
			return p.Node.(ast.OperationDefinition[T]), true
		}
	}
	return nil, false
}

// ParentFragmentDefinition returns the nearest ancestor that is a fragment
// definition, if any.
func (wc *WalkContext[T]) ParentFragmentDefinition() (*ast.FragmentDefinition[T], bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if fd, ok := p.Node.(*ast.FragmentDefinition[T]); ok {
			return fd, true
		}
	}
	return nil, false
}

// ParentInlineFragment returns the nearest ancestor that is an inline
// fragment, if any.
func (wc *WalkContext[T]) ParentInlineFragment() (*ast.InlineFragment[T], bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if inf, ok := p.Node.(*ast.InlineFragment[T]); ok {
			return inf, true
		}
	}
	return nil, false
}

// Ancestors returns all ancestors from immediate parent to root.
// The first element is the immediate parent, the last is the root-level
// ancestor. Returns nil if parent tracking is not enabled or there are no
// ancestors.
func (wc *WalkContext[T]) Ancestors() []*ParentInfo {
	var ancestors []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Depth returns the number of ancestors (nesting depth).
// Returns 0 at root level or when parent tracking is not enabled.
func (wc *WalkContext[T]) Depth() int {
	depth := 0
	for p := wc.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
