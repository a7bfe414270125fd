// Package generator emits Go source for visitor skeletons.
//
// GenerateVisitor produces a ready-to-edit type that embeds
// walker.NoopVisitor and overrides the requested hooks. The output is run
// through goimports-equivalent processing, so it is immediately compilable.
//
//	src, err := generator.GenerateVisitor(generator.Options{
//	    PackageName: "visitors",
//	    TypeName:    "field counter",
//	    Hooks:       []string{"Field", "FragmentSpread"},
//	})
package generator
