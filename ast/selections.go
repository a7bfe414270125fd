package ast

// SelectionSet is an ordered { ... } block of selections. Items appear in
// declaration order.
type SelectionSet[T Text] struct {
	Position Position
	Items    []Selection[T]
}

// Selection is one entry inside a selection set: a field, a fragment
// spread, or an inline fragment. The union is closed.
type Selection[T Text] interface {
	isSelection()
}

var (
	_ Selection[string] = (*Field[string])(nil)
	_ Selection[string] = (*FragmentSpread[string])(nil)
	_ Selection[string] = (*InlineFragment[string])(nil)
)

// Field is one requested field, optionally aliased and optionally carrying
// its own nested selection set.
type Field[T Text] struct {
	Position Position

	// Alias is the response key override. The zero value means no alias.
	Alias T

	Name       T
	Arguments  []*Argument[T]
	Directives []*Directive[T]

	// SelectionSet is nil when the field has no nested block.
	SelectionSet *SelectionSet[T]
}

// ResponseKey returns the key under which the field appears in a response:
// the alias when present, the field name otherwise.
func (f *Field[T]) ResponseKey() T {
	var zero T
	if f.Alias != zero {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread is a "...Name" reference to a fragment definition.
type FragmentSpread[T Text] struct {
	Position Position

	FragmentName T
	Directives   []*Directive[T]
}

// InlineFragment is a "... on Type { }" block with an optional type
// condition.
type InlineFragment[T Text] struct {
	Position Position

	// TypeCondition is the type named in the "on Type" clause.
	// The zero value means the fragment has no type condition.
	TypeCondition T

	Directives   []*Directive[T]
	SelectionSet *SelectionSet[T]
}

func (*Field[T]) isSelection()          {}
func (*FragmentSpread[T]) isSelection() {}
func (*InlineFragment[T]) isSelection() {}

// SelectionSet doubles as the query-shorthand operation variant.
func (*SelectionSet[T]) isDefinition()          {}
func (*SelectionSet[T]) isOperationDefinition() {}
