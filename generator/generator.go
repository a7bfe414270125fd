package generator

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/erraggy/gqltools"
)

// Options configures visitor skeleton generation.
type Options struct {
	// PackageName is the package of the generated file.
	// Defaults to "visitors".
	PackageName string

	// TypeName is the visitor type to generate. Any word separation is
	// accepted ("field counter", "field-counter", "fieldCounter") and is
	// converted to PascalCase. Defaults to "Visitor".
	TypeName string

	// TextType is the text representation the visitor is instantiated
	// with. Defaults to "string". Named types must be resolvable in the
	// generated file's package.
	TextType string

	// Hooks names the hooks to override, e.g. "Field" or "VisitField"
	// (matched case-insensitively, the "Visit" prefix is optional).
	// Empty means all hooks.
	Hooks []string
}

// hookSpec describes one visitor hook for generation purposes.
type hookSpec struct {
	// Name is the canonical hook name without the "Visit" prefix.
	Name string

	// ParamType is the node parameter type with "T" as a placeholder for
	// the text type.
	ParamType string

	// Doc is the comment line for the generated method.
	Doc string
}

// hookSpecs lists every hook, in traversal-relevant declaration order.
var hookSpecs = []hookSpec{
	{"Document", "*ast.Document[T]", "called once for the document root."},
	{"Definition", "ast.Definition[T]", "called for every top-level definition."},
	{"FragmentDefinition", "*ast.FragmentDefinition[T]", "called for every fragment definition."},
	{"OperationDefinition", "ast.OperationDefinition[T]", "called for every operation definition."},
	{"Query", "*ast.Query[T]", "called for every query operation."},
	{"Mutation", "*ast.Mutation[T]", "called for every mutation operation."},
	{"Subscription", "*ast.Subscription[T]", "called for every subscription operation."},
	{"SelectionSet", "*ast.SelectionSet[T]", "called for every selection set."},
	{"VariableDefinition", "*ast.VariableDefinition[T]", "called for every variable definition."},
	{"Selection", "ast.Selection[T]", "called for every selection."},
	{"Field", "*ast.Field[T]", "called for every field, at any nesting depth."},
	{"FragmentSpread", "*ast.FragmentSpread[T]", "called for every fragment spread."},
	{"InlineFragment", "*ast.InlineFragment[T]", "called for every inline fragment."},
}

// resolveHooks maps user-supplied hook names to hookSpecs, preserving the
// canonical declaration order.
func resolveHooks(names []string) ([]hookSpec, error) {
	if len(names) == 0 {
		return hookSpecs, nil
	}

	byKey := make(map[string]hookSpec, len(hookSpecs))
	for _, h := range hookSpecs {
		byKey[strings.ToLower(h.Name)] = h
	}

	selected := make(map[string]bool, len(names))
	for _, raw := range names {
		key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "Visit"))
		key = strings.TrimPrefix(key, "visit")
		if _, ok := byKey[key]; !ok {
			return nil, fmt.Errorf("unknown hook %q (valid hooks: %s)", raw, validHookNames())
		}
		selected[key] = true
	}

	var hooks []hookSpec
	for _, h := range hookSpecs {
		if selected[strings.ToLower(h.Name)] {
			hooks = append(hooks, h)
		}
	}
	return hooks, nil
}

func validHookNames() string {
	names := make([]string, len(hookSpecs))
	for i, h := range hookSpecs {
		names[i] = h.Name
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

var visitorTemplate = template.Must(template.New("visitor").Parse(`// Code generated by gqltools v{{.Version}}. Edit the hook bodies as needed.

package {{.PackageName}}

import (
	"github.com/erraggy/gqltools/ast"
	"github.com/erraggy/gqltools/walker"
)

// {{.TypeName}} visits query documents. Hooks not overridden here fall
// through to walker.NoopVisitor.
type {{.TypeName}} struct {
	walker.NoopVisitor[{{.TextType}}]
}

var _ walker.Visitor[{{.TextType}}] = (*{{.TypeName}})(nil)
{{range .Hooks}}
// Visit{{.Name}} is {{.Doc}}
func (v *{{.TypeName}}) Visit{{.Name}}(node {{.ParamType}}) {
	_ = node
}
{{end}}`))

type templateHook struct {
	Name      string
	ParamType string
	Doc       string
	TypeName  string
}

// GenerateVisitor renders a visitor skeleton and returns formatted Go
// source.
func GenerateVisitor(opts Options) ([]byte, error) {
	packageName := opts.PackageName
	if packageName == "" {
		packageName = "visitors"
	}
	textType := opts.TextType
	if textType == "" {
		textType = "string"
	}
	typeName := toTypeName(opts.TypeName)

	hooks, err := resolveHooks(opts.Hooks)
	if err != nil {
		return nil, err
	}

	data := struct {
		Version     string
		PackageName string
		TypeName    string
		TextType    string
		Hooks       []templateHook
	}{
		Version:     gqltools.Version(),
		PackageName: packageName,
		TypeName:    typeName,
		TextType:    textType,
	}
	for _, h := range hooks {
		data.Hooks = append(data.Hooks, templateHook{
			Name:      h.Name,
			ParamType: strings.ReplaceAll(h.ParamType, "[T]", "["+textType+"]"),
			Doc:       h.Doc,
			TypeName:  typeName,
		})
	}

	var buf bytes.Buffer
	if err := visitorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering visitor template: %w", err)
	}

	formatted, err := imports.Process(strings.ToLower(typeName)+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
