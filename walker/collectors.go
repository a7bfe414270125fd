package walker

import "github.com/erraggy/gqltools/ast"

// FieldInfo contains information about a collected field.
type FieldInfo[T ast.Text] struct {
	// Field is the collected field.
	Field *ast.Field[T]

	// Name is the field name.
	Name string

	// Alias is the response key override. Empty when the field is not aliased.
	Alias string

	// Path is the dotted path to the field.
	Path string

	// OperationType and OperationName identify the enclosing operation.
	// Both are empty inside fragment definitions.
	OperationType string
	OperationName string

	// FragmentName is the enclosing fragment definition name, if any.
	FragmentName string
}

// FieldCollector holds fields collected during a walk.
type FieldCollector[T ast.Text] struct {
	// All contains all fields in traversal order.
	All []*FieldInfo[T]

	// ByName provides lookup by field name. A name selected more than once
	// maps to every occurrence, in traversal order.
	ByName map[string][]*FieldInfo[T]
}

// CollectFields walks the document and collects every field, including
// fields nested under other fields, inline fragments, and fragment
// definitions.
func CollectFields[T ast.Text](doc *ast.Document[T]) (*FieldCollector[T], error) {
	collector := &FieldCollector[T]{
		All:    make([]*FieldInfo[T], 0),
		ByName: make(map[string][]*FieldInfo[T]),
	}

	err := Walk(doc,
		WithFieldHandler(func(wc *WalkContext[T], field *ast.Field[T]) Action {
			info := &FieldInfo[T]{
				Field:         field,
				Name:          string(field.Name),
				Alias:         string(field.Alias),
				Path:          wc.Path,
				OperationType: wc.OperationType,
				OperationName: wc.OperationName,
				FragmentName:  wc.FragmentName,
			}

			collector.All = append(collector.All, info)
			collector.ByName[info.Name] = append(collector.ByName[info.Name], info)

			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}

// OperationInfo contains information about a collected operation.
type OperationInfo[T ast.Text] struct {
	// Operation is the collected operation definition.
	Operation ast.OperationDefinition[T]

	// Type is "query", "mutation", or "subscription". A bare selection set
	// reports "query".
	Type string

	// Name is the operation name. Empty for anonymous operations.
	Name string

	// Path is the dotted path to the operation.
	Path string

	// VariableCount is the number of declared variables.
	VariableCount int
}

// OperationCollector holds operations collected during a walk.
type OperationCollector[T ast.Text] struct {
	// All contains all operations in traversal order.
	All []*OperationInfo[T]

	// ByName provides lookup by operation name. Anonymous operations are
	// not included. If multiple operations share a name, only the last one
	// is stored.
	ByName map[string]*OperationInfo[T]

	// ByType groups operations by operation type.
	ByType map[string][]*OperationInfo[T]
}

// CollectOperations walks the document and collects all operation
// definitions.
func CollectOperations[T ast.Text](doc *ast.Document[T]) (*OperationCollector[T], error) {
	collector := &OperationCollector[T]{
		All:    make([]*OperationInfo[T], 0),
		ByName: make(map[string]*OperationInfo[T]),
		ByType: make(map[string][]*OperationInfo[T]),
	}

	err := Walk(doc,
		WithOperationHandler(func(wc *WalkContext[T], op ast.OperationDefinition[T]) Action {
			info := &OperationInfo[T]{
				Operation:     op,
				Type:          wc.OperationType,
				Name:          wc.OperationName,
				Path:          wc.Path,
				VariableCount: operationVariableCount[T](op),
			}

			collector.All = append(collector.All, info)
			if info.Name != "" {
				collector.ByName[info.Name] = info
			}
			collector.ByType[info.Type] = append(collector.ByType[info.Type], info)

			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}

func operationVariableCount[T ast.Text](op ast.OperationDefinition[T]) int {
	switch n := op.(type) {
	case *ast.Query[T]:
		return len(n.VariableDefinitions)
	case *ast.Mutation[T]:
		return len(n.VariableDefinitions)
	case *ast.Subscription[T]:
		return len(n.VariableDefinitions)
	default:
		return 0
	}
}

// FragmentDefinitionInfo contains information about a collected fragment
// definition.
type FragmentDefinitionInfo[T ast.Text] struct {
	Definition *ast.FragmentDefinition[T]

	// Name is the fragment name.
	Name string

	// TypeCondition is the type named in the "on Type" clause.
	TypeCondition string

	// Path is the dotted path to the definition.
	Path string
}

// FragmentSpreadInfo contains information about a collected fragment spread.
type FragmentSpreadInfo[T ast.Text] struct {
	Spread *ast.FragmentSpread[T]

	// Name is the spread fragment name.
	Name string

	// Path is the dotted path to the spread.
	Path string
}

// FragmentCollector holds fragment definitions and spreads collected during
// a walk.
type FragmentCollector[T ast.Text] struct {
	// Definitions contains all fragment definitions in traversal order.
	Definitions []*FragmentDefinitionInfo[T]

	// Spreads contains all fragment spreads in traversal order.
	Spreads []*FragmentSpreadInfo[T]

	// ByName provides definition lookup by fragment name.
	ByName map[string]*FragmentDefinitionInfo[T]

	// SpreadsByName groups spreads by the fragment name they reference.
	SpreadsByName map[string][]*FragmentSpreadInfo[T]
}

// Unused returns the names of fragment definitions that are never spread,
// in definition order.
func (c *FragmentCollector[T]) Unused() []string {
	var unused []string
	for _, def := range c.Definitions {
		if len(c.SpreadsByName[def.Name]) == 0 {
			unused = append(unused, def.Name)
		}
	}
	return unused
}

// CollectFragments walks the document and collects all fragment definitions
// and fragment spreads.
func CollectFragments[T ast.Text](doc *ast.Document[T]) (*FragmentCollector[T], error) {
	collector := &FragmentCollector[T]{
		Definitions:   make([]*FragmentDefinitionInfo[T], 0),
		Spreads:       make([]*FragmentSpreadInfo[T], 0),
		ByName:        make(map[string]*FragmentDefinitionInfo[T]),
		SpreadsByName: make(map[string][]*FragmentSpreadInfo[T]),
	}

	err := Walk(doc,
		WithFragmentDefinitionHandler(func(wc *WalkContext[T], def *ast.FragmentDefinition[T]) Action {
			info := &FragmentDefinitionInfo[T]{
				Definition:    def,
				Name:          string(def.Name),
				TypeCondition: string(def.TypeCondition),
				Path:          wc.Path,
			}
			collector.Definitions = append(collector.Definitions, info)
			collector.ByName[info.Name] = info
			return Continue
		}),
		WithFragmentSpreadHandler(func(wc *WalkContext[T], spread *ast.FragmentSpread[T]) Action {
			info := &FragmentSpreadInfo[T]{
				Spread: spread,
				Name:   string(spread.FragmentName),
				Path:   wc.Path,
			}
			collector.Spreads = append(collector.Spreads, info)
			collector.SpreadsByName[info.Name] = append(collector.SpreadsByName[info.Name], info)
			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}

// VariableInfo contains information about a collected variable definition.
type VariableInfo[T ast.Text] struct {
	Definition *ast.VariableDefinition[T]

	// Name is the variable name, without the leading "$".
	Name string

	// Type is the variable's type reference rendered in query syntax.
	Type string

	// Path is the dotted path to the definition.
	Path string

	// OperationType and OperationName identify the declaring operation.
	OperationType string
	OperationName string
}

// VariableCollector holds variable definitions collected during a walk.
type VariableCollector[T ast.Text] struct {
	// All contains all variable definitions in traversal order.
	All []*VariableInfo[T]

	// ByName provides lookup by variable name. A name declared by more
	// than one operation maps to every declaration, in traversal order.
	ByName map[string][]*VariableInfo[T]

	// ByOperation groups variables by declaring operation name. Variables
	// of anonymous operations are grouped under the empty string.
	ByOperation map[string][]*VariableInfo[T]
}

// CollectVariables walks the document and collects all variable
// definitions.
func CollectVariables[T ast.Text](doc *ast.Document[T]) (*VariableCollector[T], error) {
	collector := &VariableCollector[T]{
		All:         make([]*VariableInfo[T], 0),
		ByName:      make(map[string][]*VariableInfo[T]),
		ByOperation: make(map[string][]*VariableInfo[T]),
	}

	err := Walk(doc,
		WithVariableDefinitionHandler(func(wc *WalkContext[T], varDef *ast.VariableDefinition[T]) Action {
			info := &VariableInfo[T]{
				Definition:    varDef,
				Name:          string(varDef.Name),
				Path:          wc.Path,
				OperationType: wc.OperationType,
				OperationName: wc.OperationName,
			}
			if varDef.Type != nil {
				info.Type = varDef.Type.String()
			}

			collector.All = append(collector.All, info)
			collector.ByName[info.Name] = append(collector.ByName[info.Name], info)
			collector.ByOperation[info.OperationName] = append(collector.ByOperation[info.OperationName], info)

			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}
