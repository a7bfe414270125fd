// Package parser parses GraphQL query documents into a syntax tree.
//
// The parser handles executable documents: named and anonymous queries,
// mutations, subscriptions, the bare selection set shorthand, and fragment
// definitions, together with variable definitions, arguments, directives,
// aliases, and all input value kinds.
//
// # Quick Start
//
// Parse a query into an ast.Document:
//
//	doc, err := parser.ParseQuery[string]("query Q { users { id } }")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For parse metadata (source path, duration, document statistics) or
// configuration (logging, depth limits), use a [Parser]:
//
//	p := parser.New[string]()
//	result, err := p.ParseFile("query.graphql")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d fields in %d operations\n",
//	    result.Stats.FieldCount, result.Stats.OperationCount)
//
// # Text Representation
//
// The document's type parameter selects the representation used for names
// inside nodes; any named string type works:
//
//	type symbol string
//	doc, err := parser.ParseQuery[symbol]("{ id }")
//
// # Errors
//
// Syntax errors are reported as a [*ParseError] carrying the 1-based
// line/column position and what the parser expected.
package parser
