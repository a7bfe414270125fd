package ast

// Argument is one name:value pair in a field, directive, or fragment
// argument list.
type Argument[T Text] struct {
	Position Position
	Name     T
	Value    Value[T]
}

// Directive is one @name(...) annotation.
type Directive[T Text] struct {
	Position  Position
	Name      T
	Arguments []*Argument[T]
}

// Value is one input value: a variable reference, a scalar literal, an
// enum value, a list, or an input object. The union is closed.
type Value[T Text] interface {
	isValue()
}

var (
	_ Value[string] = (*Variable[string])(nil)
	_ Value[string] = (*IntValue[string])(nil)
	_ Value[string] = (*FloatValue[string])(nil)
	_ Value[string] = (*StringValue[string])(nil)
	_ Value[string] = (*BooleanValue[string])(nil)
	_ Value[string] = (*NullValue[string])(nil)
	_ Value[string] = (*EnumValue[string])(nil)
	_ Value[string] = (*ListValue[string])(nil)
	_ Value[string] = (*ObjectValue[string])(nil)
)

// Variable is a $name reference.
type Variable[T Text] struct {
	Position Position
	Name     T
}

// IntValue is an integer literal.
type IntValue[T Text] struct {
	Position Position
	Value    int64
}

// FloatValue is a floating point literal.
type FloatValue[T Text] struct {
	Position Position
	Value    float64
}

// StringValue is a string or block string literal, stored unescaped.
type StringValue[T Text] struct {
	Position Position
	Value    string

	// Block is true when the literal used triple-quote syntax.
	Block bool
}

// BooleanValue is a true or false literal.
type BooleanValue[T Text] struct {
	Position Position
	Value    bool
}

// NullValue is the null literal.
type NullValue[T Text] struct {
	Position Position
}

// EnumValue is a bare name used as an enum literal.
type EnumValue[T Text] struct {
	Position Position
	Value    T
}

// ListValue is a [ ... ] literal. Values appear in declaration order.
type ListValue[T Text] struct {
	Position Position
	Values   []Value[T]
}

// ObjectValue is a { name: value ... } input object literal. Fields appear
// in declaration order.
type ObjectValue[T Text] struct {
	Position Position
	Fields   []*ObjectField[T]
}

// ObjectField is one name:value entry inside an ObjectValue.
type ObjectField[T Text] struct {
	Position Position
	Name     T
	Value    Value[T]
}

func (*Variable[T]) isValue()     {}
func (*IntValue[T]) isValue()     {}
func (*FloatValue[T]) isValue()   {}
func (*StringValue[T]) isValue()  {}
func (*BooleanValue[T]) isValue() {}
func (*NullValue[T]) isValue()    {}
func (*EnumValue[T]) isValue()    {}
func (*ListValue[T]) isValue()    {}
func (*ObjectValue[T]) isValue()  {}
