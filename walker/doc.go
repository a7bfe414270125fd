// Package walker provides traversal APIs for GraphQL query documents.
//
// Two APIs are offered over the same pre-order, depth-first traversal.
//
// # Visitor API
//
// [Visitor] declares one hook per node kind. Embed [NoopVisitor] and
// override only the hooks you need, then start the walk with
// [WalkDocument]:
//
//	type fieldCounter struct {
//	    walker.NoopVisitor[string]
//	    count int
//	}
//
//	func (c *fieldCounter) VisitField(node *ast.Field[string]) { c.count++ }
//
//	counter := &fieldCounter{}
//	walker.WalkDocument[string](counter, doc)
//
// Every node is visited exactly once, in declaration order, and a node's
// own hook always fires before any hook of its descendants. Sibling
// subtrees complete in order, without interleaving. The walk itself has no
// side effects; whatever the visitor records in its own state is the only
// output channel. Visitor hooks cannot prune their subtree or stop the
// walk; a walk always runs to completion.
//
// # Handler API
//
// [Walk] registers typed handler functions per node kind via functional
// options. Unlike visitor hooks, handlers return an [Action] to control
// traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Example:
//
//	err := walker.Walk(doc,
//	    walker.WithFieldHandler(func(wc *walker.WalkContext[string], f *ast.Field[string]) walker.Action {
//	        fmt.Println(wc.Path, f.Name)
//	        return walker.Continue
//	    }),
//	)
//
// Every handler receives a [WalkContext] describing the current node: its
// dotted path from the document root, the enclosing operation or fragment,
// and (with [WithParentTracking]) the chain of ancestor nodes.
//
// # Built-in Collectors
//
// For common collection patterns the package provides pre-built helpers
// that reduce boilerplate: [CollectFields], [CollectOperations],
// [CollectFragments], and [CollectVariables]. Each returns the collected
// nodes in traversal order plus lookup maps.
//
// # Concurrency
//
// A walk is single-threaded and synchronous. The document is never
// mutated, so multiple walks may run concurrently over the same tree as
// long as each uses its own visitor or handler state.
//
// # Related Packages
//
//   - [github.com/erraggy/gqltools/parser] - Parse query documents before walking
//   - [github.com/erraggy/gqltools/format] - Render documents back to query text
package walker
