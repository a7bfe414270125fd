package walker

import (
	"fmt"

	"github.com/erraggy/gqltools/ast"
)

// operationScope reports the operation type and name of an operation
// definition. A bare selection set is the query shorthand.
func operationScope[T ast.Text](node ast.OperationDefinition[T]) (opType, opName string) {
	switch n := node.(type) {
	case *ast.SelectionSet[T]:
		return "query", ""
	case *ast.Query[T]:
		return "query", string(n.Name)
	case *ast.Mutation[T]:
		return "mutation", string(n.Name)
	case *ast.Subscription[T]:
		return "subscription", string(n.Name)
	default:
		panic(fmt.Sprintf("walker: unknown OperationDefinition variant %T", node))
	}
}

// walkDocument drives the handler-based traversal from the root.
func (w *Walker[T]) walkDocument(doc *ast.Document[T]) {
	state := &walkState{ctx: w.userCtx}

	if w.onDocument != nil {
		if !w.handleAction(w.onDocument(buildContext[T](state, "$"), doc)) {
			return
		}
	}

	state = state.withParent(w.trackParent, doc, "$")

	for i, def := range doc.Definitions {
		if w.stopped {
			return
		}
		w.walkDefinition(def, fmt.Sprintf("$.definitions[%d]", i), state)
	}
}

func (w *Walker[T]) walkDefinition(node ast.Definition[T], path string, state *walkState) {
	if w.onDefinition != nil {
		if !w.handleAction(w.onDefinition(buildContext[T](state, path), node)) {
			return
		}
	}

	switch n := node.(type) {
	case *ast.FragmentDefinition[T]:
		w.walkFragmentDefinition(n, path, state)
	case ast.OperationDefinition[T]:
		w.walkOperation(n, path, state)
	default:
		panic(fmt.Sprintf("walker: unknown Definition variant %T", node))
	}
}

func (w *Walker[T]) walkFragmentDefinition(node *ast.FragmentDefinition[T], path string, state *walkState) {
	fragState := state.clone()
	fragState.fragmentName = string(node.Name)

	if w.onFragmentDefinition != nil {
		if !w.handleAction(w.onFragmentDefinition(buildContext[T](fragState, path), node)) {
			return
		}
	}

	fragState = fragState.withParent(w.trackParent, node, path)
	w.walkSelectionSet(node.SelectionSet, path+".selectionSet", fragState)
}

func (w *Walker[T]) walkOperation(node ast.OperationDefinition[T], path string, state *walkState) {
	opState := state.clone()
	opState.operationType, opState.operationName = operationScope[T](node)

	if w.onOperation != nil {
		if !w.handleAction(w.onOperation(buildContext[T](opState, path), node)) {
			return
		}
	}

	switch n := node.(type) {
	case *ast.SelectionSet[T]:
		w.walkSelectionSet(n, path, opState)
	case *ast.Query[T]:
		w.walkQuery(n, path, opState)
	case *ast.Mutation[T]:
		w.walkMutation(n, path, opState)
	case *ast.Subscription[T]:
		w.walkSubscription(n, path, opState)
	}
}

func (w *Walker[T]) walkQuery(node *ast.Query[T], path string, state *walkState) {
	if w.onQuery != nil {
		if !w.handleAction(w.onQuery(buildContext[T](state, path), node)) {
			return
		}
	}

	state = state.withParent(w.trackParent, node, path)

	for i, varDef := range node.VariableDefinitions {
		if w.stopped {
			return
		}
		w.walkVariableDefinition(varDef, fmt.Sprintf("%s.variableDefinitions[%d]", path, i), state)
	}
	if w.stopped {
		return
	}
	w.walkSelectionSet(node.SelectionSet, path+".selectionSet", state)
}

func (w *Walker[T]) walkMutation(node *ast.Mutation[T], path string, state *walkState) {
	if w.onMutation != nil {
		if !w.handleAction(w.onMutation(buildContext[T](state, path), node)) {
			return
		}
	}

	state = state.withParent(w.trackParent, node, path)

	for i, varDef := range node.VariableDefinitions {
		if w.stopped {
			return
		}
		w.walkVariableDefinition(varDef, fmt.Sprintf("%s.variableDefinitions[%d]", path, i), state)
	}
	if w.stopped {
		return
	}
	w.walkSelectionSet(node.SelectionSet, path+".selectionSet", state)
}

func (w *Walker[T]) walkSubscription(node *ast.Subscription[T], path string, state *walkState) {
	if w.onSubscription != nil {
		if !w.handleAction(w.onSubscription(buildContext[T](state, path), node)) {
			return
		}
	}

	state = state.withParent(w.trackParent, node, path)

	for i, varDef := range node.VariableDefinitions {
		if w.stopped {
			return
		}
		w.walkVariableDefinition(varDef, fmt.Sprintf("%s.variableDefinitions[%d]", path, i), state)
	}
	if w.stopped {
		return
	}
	w.walkSelectionSet(node.SelectionSet, path+".selectionSet", state)
}

func (w *Walker[T]) walkVariableDefinition(node *ast.VariableDefinition[T], path string, state *walkState) {
	if w.onVariableDefinition != nil {
		w.handleAction(w.onVariableDefinition(buildContext[T](state, path), node))
	}
}

func (w *Walker[T]) walkSelectionSet(node *ast.SelectionSet[T], path string, state *walkState) {
	if w.onSelectionSet != nil {
		if !w.handleAction(w.onSelectionSet(buildContext[T](state, path), node)) {
			return
		}
	}

	state = state.withParent(w.trackParent, node, path)

	for i, sel := range node.Items {
		if w.stopped {
			return
		}
		w.walkSelection(sel, fmt.Sprintf("%s.items[%d]", path, i), state)
	}
}

func (w *Walker[T]) walkSelection(node ast.Selection[T], path string, state *walkState) {
	if w.onSelection != nil {
		if !w.handleAction(w.onSelection(buildContext[T](state, path), node)) {
			return
		}
	}

	switch n := node.(type) {
	case *ast.Field[T]:
		w.walkField(n, path, state)
	case *ast.FragmentSpread[T]:
		w.walkFragmentSpread(n, path, state)
	case *ast.InlineFragment[T]:
		w.walkInlineFragment(n, path, state)
	default:
		panic(fmt.Sprintf("walker: unknown Selection variant %T", node))
	}
}

func (w *Walker[T]) walkField(node *ast.Field[T], path string, state *walkState) {
	if w.onField != nil {
		if !w.handleAction(w.onField(buildContext[T](state, path), node)) {
			return
		}
	}

	if node.SelectionSet != nil {
		state = state.withParent(w.trackParent, node, path)
		w.walkSelectionSet(node.SelectionSet, path+".selectionSet", state)
	}
}

func (w *Walker[T]) walkFragmentSpread(node *ast.FragmentSpread[T], path string, state *walkState) {
	if w.onFragmentSpread != nil {
		w.handleAction(w.onFragmentSpread(buildContext[T](state, path), node))
	}
}

func (w *Walker[T]) walkInlineFragment(node *ast.InlineFragment[T], path string, state *walkState) {
	if w.onInlineFragment != nil {
		if !w.handleAction(w.onInlineFragment(buildContext[T](state, path), node)) {
			return
		}
	}

	state = state.withParent(w.trackParent, node, path)
	w.walkSelectionSet(node.SelectionSet, path+".selectionSet", state)
}
