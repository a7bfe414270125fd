package ast

import "fmt"

// Text constrains the representation used for names and name-like values in
// the tree. Any type whose underlying type is string satisfies it, so a
// document may store plain strings or a domain-specific name type. Only
// equality (via comparison) and display (via string conversion) are assumed.
type Text interface {
	~string
}

// Position is a line/column location in the source text. Lines and columns
// are 1-based; the zero value means the position is unknown.
type Position struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Document is the root node of one parsed query-language source unit.
// Definitions appear in declaration order.
type Document[T Text] struct {
	Definitions []Definition[T]
}

// Definition is one top-level entry in a Document: an operation or a
// reusable fragment. The union is closed; the walker dispatches over it
// exhaustively.
type Definition[T Text] interface {
	isDefinition()
}

// OperationDefinition is one executable operation. It is itself a closed
// union: a bare selection set (the query shorthand), or a typed Query,
// Mutation, or Subscription.
type OperationDefinition[T Text] interface {
	Definition[T]
	isOperationDefinition()
}

var (
	_ Definition[string] = (OperationDefinition[string])(nil)
	_ Definition[string] = (*FragmentDefinition[string])(nil)

	_ OperationDefinition[string] = (*SelectionSet[string])(nil)
	_ OperationDefinition[string] = (*Query[string])(nil)
	_ OperationDefinition[string] = (*Mutation[string])(nil)
	_ OperationDefinition[string] = (*Subscription[string])(nil)
)

// Query is a typed query operation with optional name, variables, and
// directives.
type Query[T Text] struct {
	Position Position

	// Name is the operation name. The zero value means anonymous.
	Name T

	VariableDefinitions []*VariableDefinition[T]
	Directives          []*Directive[T]
	SelectionSet        *SelectionSet[T]
}

// Mutation is a typed mutation operation.
type Mutation[T Text] struct {
	Position Position

	// Name is the operation name. The zero value means anonymous.
	Name T

	VariableDefinitions []*VariableDefinition[T]
	Directives          []*Directive[T]
	SelectionSet        *SelectionSet[T]
}

// Subscription is a typed subscription operation.
type Subscription[T Text] struct {
	Position Position

	// Name is the operation name. The zero value means anonymous.
	Name T

	VariableDefinitions []*VariableDefinition[T]
	Directives          []*Directive[T]
	SelectionSet        *SelectionSet[T]
}

// FragmentDefinition is a named reusable selection with a type condition.
type FragmentDefinition[T Text] struct {
	Position Position

	Name T

	// TypeCondition is the type named in the "on Type" clause.
	TypeCondition T

	Directives   []*Directive[T]
	SelectionSet *SelectionSet[T]
}

// VariableDefinition declares one operation variable. It is a leaf for
// traversal purposes; its type reference and default value are carried as
// data, not visited.
type VariableDefinition[T Text] struct {
	Position Position

	Name T
	Type Type[T]

	// DefaultValue is nil when the declaration has no default.
	DefaultValue Value[T]
}

func (*Query[T]) isDefinition()              {}
func (*Query[T]) isOperationDefinition()     {}
func (*Mutation[T]) isDefinition()           {}
func (*Mutation[T]) isOperationDefinition()  {}
func (*Subscription[T]) isDefinition()       {}
func (*Subscription[T]) isOperationDefinition() {}
func (*FragmentDefinition[T]) isDefinition() {}
