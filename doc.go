// Package gqltools provides tools for working with GraphQL query documents.
//
// gqltools parses GraphQL executable documents (queries, mutations,
// subscriptions, and fragments) into a typed syntax tree and offers a
// traversal API for analyzing them without writing a new recursive descent
// for every use case.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - ast: the query syntax tree node types, generic over the text representation
//   - parser: parse GraphQL query documents into an ast.Document
//   - walker: visit every node of a parsed document with custom hooks
//   - format: render a document back to canonical query text
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/gqltools
//
// # Quick Start
//
// Parse a query and count its fields:
//
//	import (
//	    "github.com/erraggy/gqltools/ast"
//	    "github.com/erraggy/gqltools/parser"
//	    "github.com/erraggy/gqltools/walker"
//	)
//
//	type fieldCounter struct {
//	    walker.NoopVisitor[string]
//	    count int
//	}
//
//	func (c *fieldCounter) VisitField(node *ast.Field[string]) { c.count++ }
//
//	doc, err := parser.ParseQuery[string]("query Q { users { id country { id } } }")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	counter := &fieldCounter{}
//	walker.WalkDocument[string](counter, doc)
//	fmt.Println(counter.count) // 4
//
// For collection-style analysis without defining a visitor type, see the
// walker package's handler API and built-in collectors such as
// [github.com/erraggy/gqltools/walker.CollectFields].
//
// # Command Line
//
// The gqltools CLI exposes the same capabilities:
//
//	gqltools parse query.graphql
//	gqltools walk fields query.graphql
//	gqltools format --minify query.graphql
//	gqltools mcp
package gqltools
