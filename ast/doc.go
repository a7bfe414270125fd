// Package ast defines the syntax tree for GraphQL query documents.
//
// The tree is produced by the parser package and traversed by the walker
// package. All node types are generic over a [Text] representation, so
// documents may be built over plain strings or any named string type
// without duplicating the node definitions.
//
// # Node Categories
//
// Three node categories are closed unions, modeled as unexported-marker
// interfaces with a fixed set of variants:
//
//   - [Definition]: [OperationDefinition] or *[FragmentDefinition]
//   - [OperationDefinition]: *[SelectionSet] (query shorthand), *[Query],
//     *[Mutation], or *[Subscription]
//   - [Selection]: *[Field], *[FragmentSpread], or *[InlineFragment]
//
// Value and type references form two further unions, [Value] and [Type],
// which are carried by nodes but not visited by the walker.
//
// # Immutability
//
// Nodes are plain data. Once a document has been parsed, callers should
// treat it as read-only: the walker takes no ownership and never copies
// node contents, so mutating a document during a walk is a data race with
// any concurrent walk over the same tree.
package ast
