package walker_test

import (
	"fmt"

	"github.com/erraggy/gqltools/ast"
	"github.com/erraggy/gqltools/parser"
	"github.com/erraggy/gqltools/walker"
)

// fieldCounter counts fields at any nesting depth.
type fieldCounter struct {
	walker.NoopVisitor[string]
	count int
}

func (c *fieldCounter) VisitField(*ast.Field[string]) {
	c.count++
}

func ExampleWalkDocument() {
	doc, _ := parser.ParseQuery[string](`query Q { users { id country { id } } }`)

	counter := &fieldCounter{}
	walker.WalkDocument[string](counter, doc)

	fmt.Println(counter.count)
	// Output:
	// 4
}

func ExampleWalk() {
	doc, _ := parser.ParseQuery[string](`
		query GetUser { user { name } }
		mutation UpdateUser { updateUser { name } }
	`)

	_ = walker.Walk(doc,
		walker.WithFieldHandler(func(wc *walker.WalkContext[string], node *ast.Field[string]) walker.Action {
			fmt.Printf("%s %s: %s\n", wc.OperationType, wc.OperationName, node.Name)
			return walker.Continue
		}),
	)

	// Output:
	// query GetUser: user
	// query GetUser: name
	// mutation UpdateUser: updateUser
	// mutation UpdateUser: name
}

func ExampleCollectFragments() {
	doc, _ := parser.ParseQuery[string](`
		{ ...used }
		fragment used on User { id }
		fragment unused on User { name }
	`)

	collector, _ := walker.CollectFragments(doc)
	for _, name := range collector.Unused() {
		fmt.Println(name)
	}
	// Output:
	// unused
}
