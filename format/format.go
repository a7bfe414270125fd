// Package format renders query documents back to query-language text.
//
// The output is canonical rather than byte-preserving: comments and
// insignificant whitespace from the original source are not retained, but
// reparsing formatted output yields an equivalent document.
//
//	doc, _ := parser.ParseQuery[string]("query Q($id:ID!){user(id:$id){name}}")
//	fmt.Println(format.Format(doc))
//	// query Q($id: ID!) {
//	//   user(id: $id) {
//	//     name
//	//   }
//	// }
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/erraggy/gqltools/ast"
)

// Options configures rendering.
type Options struct {
	// Indent is the indentation unit. Empty means two spaces.
	Indent string

	// Minified renders the document on a single line with no optional
	// whitespace.
	Minified bool
}

// DefaultOptions returns the options used by Format.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// Format renders doc with default options.
func Format[T ast.Text](doc *ast.Document[T]) string {
	return FormatWithOptions(doc, DefaultOptions())
}

// FormatWithOptions renders doc using the given options.
func FormatWithOptions[T ast.Text](doc *ast.Document[T], opts Options) string {
	var sb strings.Builder
	p := newPrinter[T](&sb, opts)
	p.document(doc)
	return sb.String()
}

// Fprint renders doc to w using the given options.
func Fprint[T ast.Text](w io.Writer, doc *ast.Document[T], opts Options) error {
	_, err := io.WriteString(w, FormatWithOptions(doc, opts))
	return err
}

type printer[T ast.Text] struct {
	sb    *strings.Builder
	opts  Options
	depth int
}

func newPrinter[T ast.Text](sb *strings.Builder, opts Options) *printer[T] {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &printer[T]{sb: sb, opts: opts}
}

func (p *printer[T]) write(s string) {
	p.sb.WriteString(s)
}

// newline starts a new indented line; in minified output it is a no-op so
// callers emit their own single-space separators where required.
func (p *printer[T]) newline() {
	if p.opts.Minified {
		return
	}
	p.write("\n")
	p.write(strings.Repeat(p.opts.Indent, p.depth))
}

func (p *printer[T]) document(doc *ast.Document[T]) {
	if doc == nil {
		return
	}
	for i, def := range doc.Definitions {
		if i > 0 {
			if p.opts.Minified {
				p.write(" ")
			} else {
				p.write("\n\n")
			}
		}
		p.definition(def)
	}
	if !p.opts.Minified && len(doc.Definitions) > 0 {
		p.write("\n")
	}
}

func (p *printer[T]) definition(def ast.Definition[T]) {
	switch node := def.(type) {
	case *ast.SelectionSet[T]:
		p.selectionSet(node)
	case *ast.Query[T]:
		p.operation("query", node.Name, node.VariableDefinitions, node.Directives, node.SelectionSet)
	case *ast.Mutation[T]:
		p.operation("mutation", node.Name, node.VariableDefinitions, node.Directives, node.SelectionSet)
	case *ast.Subscription[T]:
		p.operation("subscription", node.Name, node.VariableDefinitions, node.Directives, node.SelectionSet)
	case *ast.FragmentDefinition[T]:
		p.write("fragment ")
		p.write(string(node.Name))
		p.write(" on ")
		p.write(string(node.TypeCondition))
		p.directives(node.Directives)
		p.blockStart()
		p.selectionSet(node.SelectionSet)
	default:
		panic(fmt.Sprintf("format: unknown Definition variant %T", def))
	}
}

func (p *printer[T]) operation(keyword string, name T, varDefs []*ast.VariableDefinition[T], directives []*ast.Directive[T], selections *ast.SelectionSet[T]) {
	p.write(keyword)
	var zero T
	if name != zero {
		p.write(" ")
		p.write(string(name))
	}
	if len(varDefs) > 0 {
		if name == zero {
			p.write(" ")
		}
		p.write("(")
		for i, vd := range varDefs {
			if i > 0 {
				p.write(", ")
			}
			p.variableDefinition(vd)
		}
		p.write(")")
	}
	p.directives(directives)
	p.blockStart()
	p.selectionSet(selections)
}

// blockStart writes the separator between an operation header and its
// selection set.
func (p *printer[T]) blockStart() {
	if p.opts.Minified {
		return
	}
	p.write(" ")
}

func (p *printer[T]) variableDefinition(vd *ast.VariableDefinition[T]) {
	p.write("$")
	p.write(string(vd.Name))
	p.write(": ")
	p.write(vd.Type.String())
	if vd.DefaultValue != nil {
		p.write(" = ")
		p.value(vd.DefaultValue)
	}
}

func (p *printer[T]) selectionSet(set *ast.SelectionSet[T]) {
	p.write("{")
	p.depth++
	for i, sel := range set.Items {
		if p.opts.Minified && i > 0 {
			p.write(" ")
		}
		p.newline()
		p.selection(sel)
	}
	p.depth--
	p.newline()
	p.write("}")
}

func (p *printer[T]) selection(sel ast.Selection[T]) {
	switch node := sel.(type) {
	case *ast.Field[T]:
		p.field(node)
	case *ast.FragmentSpread[T]:
		p.write("...")
		p.write(string(node.FragmentName))
		p.directives(node.Directives)
	case *ast.InlineFragment[T]:
		p.write("...")
		var zero T
		if node.TypeCondition != zero {
			p.write(" on ")
			p.write(string(node.TypeCondition))
		}
		p.directives(node.Directives)
		p.blockStart()
		p.selectionSet(node.SelectionSet)
	default:
		panic(fmt.Sprintf("format: unknown Selection variant %T", sel))
	}
}

func (p *printer[T]) field(f *ast.Field[T]) {
	var zero T
	if f.Alias != zero {
		p.write(string(f.Alias))
		p.write(": ")
	}
	p.write(string(f.Name))
	p.arguments(f.Arguments)
	p.directives(f.Directives)
	if f.SelectionSet != nil {
		p.blockStart()
		p.selectionSet(f.SelectionSet)
	}
}

func (p *printer[T]) arguments(args []*ast.Argument[T]) {
	if len(args) == 0 {
		return
	}
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.write(string(arg.Name))
		p.write(": ")
		p.value(arg.Value)
	}
	p.write(")")
}

func (p *printer[T]) directives(directives []*ast.Directive[T]) {
	for _, d := range directives {
		p.write(" @")
		p.write(string(d.Name))
		p.arguments(d.Arguments)
	}
}

func (p *printer[T]) value(v ast.Value[T]) {
	switch node := v.(type) {
	case *ast.Variable[T]:
		p.write("$")
		p.write(string(node.Name))
	case *ast.IntValue[T]:
		p.write(strconv.FormatInt(node.Value, 10))
	case *ast.FloatValue[T]:
		p.write(formatFloat(node.Value))
	case *ast.StringValue[T]:
		if node.Block {
			p.blockString(node.Value)
		} else {
			p.write(quoteString(node.Value))
		}
	case *ast.BooleanValue[T]:
		p.write(strconv.FormatBool(node.Value))
	case *ast.NullValue[T]:
		p.write("null")
	case *ast.EnumValue[T]:
		p.write(string(node.Value))
	case *ast.ListValue[T]:
		p.write("[")
		for i, item := range node.Values {
			if i > 0 {
				p.write(", ")
			}
			p.value(item)
		}
		p.write("]")
	case *ast.ObjectValue[T]:
		p.write("{")
		for i, f := range node.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.write(string(f.Name))
			p.write(": ")
			p.value(f.Value)
		}
		p.write("}")
	default:
		panic(fmt.Sprintf("format: unknown Value variant %T", v))
	}
}

// formatFloat renders a float so it reparses as a float token: a value with
// no fractional part gains a ".0" suffix.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString renders a single-line string literal with the escapes the
// query language defines.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf(`\u%04X`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// blockString renders a triple-quoted literal, escaping embedded closing
// quote runs.
func (p *printer[T]) blockString(s string) {
	escaped := strings.ReplaceAll(s, `"""`, `\"""`)
	if p.opts.Minified || !strings.Contains(s, "\n") {
		p.write(`"""`)
		p.write(escaped)
		p.write(`"""`)
		return
	}
	indent := strings.Repeat(p.opts.Indent, p.depth)
	p.write(`"""`)
	for _, line := range strings.Split(escaped, "\n") {
		p.write("\n")
		if line != "" {
			p.write(indent)
			p.write(line)
		}
	}
	p.write("\n")
	p.write(indent)
	p.write(`"""`)
}
