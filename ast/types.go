package ast

import "fmt"

// Type is one type reference in a variable definition: a named type, a
// list type, or a non-null wrapper. The union is closed.
type Type[T Text] interface {
	isType()

	// String renders the reference in query syntax, e.g. "[Episode!]!".
	String() string
}

var (
	_ Type[string] = (*NamedType[string])(nil)
	_ Type[string] = (*ListType[string])(nil)
	_ Type[string] = (*NonNullType[string])(nil)
)

// NamedType is a plain type name such as "Int" or "Episode".
type NamedType[T Text] struct {
	Position Position
	Name     T
}

// ListType is a [Elem] reference.
type ListType[T Text] struct {
	Position Position
	OfType   Type[T]
}

// NonNullType is an Elem! reference. OfType is never another NonNullType.
type NonNullType[T Text] struct {
	Position Position
	OfType   Type[T]
}

func (*NamedType[T]) isType()   {}
func (*ListType[T]) isType()    {}
func (*NonNullType[T]) isType() {}

func (t *NamedType[T]) String() string {
	return string(t.Name)
}

func (t *ListType[T]) String() string {
	return fmt.Sprintf("[%s]", t.OfType)
}

func (t *NonNullType[T]) String() string {
	return t.OfType.String() + "!"
}
