package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/gqltools/ast"
)

// DefaultMaxDepth is the default limit on selection set nesting. It guards
// the recursive descent against stack exhaustion on adversarial input.
const DefaultMaxDepth = 500

// Parser parses query documents with configurable behavior. The zero value
// is usable; New returns one with the defaults filled in.
type Parser[T ast.Text] struct {
	// Logger receives diagnostic output during parsing.
	// Defaults to NopLogger.
	Logger Logger

	// MaxDepth limits selection set nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// New creates a Parser with default settings.
func New[T ast.Text]() *Parser[T] {
	return &Parser[T]{
		Logger:   NopLogger{},
		MaxDepth: DefaultMaxDepth,
	}
}

// DocumentStats summarizes the shape of a parsed document.
type DocumentStats struct {
	// DefinitionCount is the number of top-level definitions.
	DefinitionCount int `json:"definitionCount" yaml:"definitionCount"`

	// OperationCount is the number of operation definitions, including the
	// bare selection set shorthand.
	OperationCount int `json:"operationCount" yaml:"operationCount"`

	// FragmentCount is the number of fragment definitions.
	FragmentCount int `json:"fragmentCount" yaml:"fragmentCount"`

	// FieldCount is the number of fields at any nesting depth.
	FieldCount int `json:"fieldCount" yaml:"fieldCount"`

	// FragmentSpreadCount is the number of fragment spreads.
	FragmentSpreadCount int `json:"fragmentSpreadCount" yaml:"fragmentSpreadCount"`

	// InlineFragmentCount is the number of inline fragments.
	InlineFragmentCount int `json:"inlineFragmentCount" yaml:"inlineFragmentCount"`

	// VariableCount is the number of variable definitions.
	VariableCount int `json:"variableCount" yaml:"variableCount"`

	// MaxSelectionDepth is the deepest selection set nesting reached.
	MaxSelectionDepth int `json:"maxSelectionDepth" yaml:"maxSelectionDepth"`
}

// ParseResult contains a parsed document along with parse metadata.
type ParseResult[T ast.Text] struct {
	// Document is the parsed syntax tree.
	Document *ast.Document[T]

	// SourcePath is the file the document was read from. Empty when the
	// source was a string or reader.
	SourcePath string

	// ParseDuration is how long lexing and parsing took.
	ParseDuration time.Duration

	// Stats summarizes the document's shape.
	Stats DocumentStats
}

// ParseQuery parses a query source into a document. It is the convenience
// entry point when no configuration or metadata is needed.
func ParseQuery[T ast.Text](src string) (*ast.Document[T], error) {
	result, err := New[T]().Parse(src)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Parse parses query source text.
func (p *Parser[T]) Parse(src string) (*ParseResult[T], error) {
	logger := p.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	start := time.Now()

	tokens, err := newLexer(src).tokenize()
	if err != nil {
		logger.Debug("lexing failed", "error", err)
		return nil, err
	}
	logger.Debug("lexed document", "tokens", len(tokens)-1)

	dp := &docParser[T]{tokens: tokens, maxDepth: maxDepth}
	doc, err := dp.parseDocument()
	if err != nil {
		logger.Debug("parsing failed", "error", err)
		return nil, err
	}

	result := &ParseResult[T]{
		Document:      doc,
		ParseDuration: time.Since(start),
		Stats:         dp.stats,
	}
	logger.Debug("parsed document",
		"definitions", result.Stats.DefinitionCount,
		"operations", result.Stats.OperationCount,
		"fragments", result.Stats.FragmentCount,
		"fields", result.Stats.FieldCount,
		"duration", result.ParseDuration)
	return result, nil
}

// ParseReader parses query source read from r.
func (p *Parser[T]) ParseReader(r io.Reader) (*ParseResult[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading query source: %w", err)
	}
	return p.Parse(string(data))
}

// ParseFile parses the query document at path. The returned result carries
// the path in SourcePath.
func (p *Parser[T]) ParseFile(path string) (*ParseResult[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	result, err := p.Parse(string(data))
	if err != nil {
		return nil, err
	}
	result.SourcePath = path
	return result, nil
}

// docParser is the recursive descent state over a token stream.
type docParser[T ast.Text] struct {
	tokens   []token
	pos      int
	depth    int
	maxDepth int
	stats    DocumentStats
}

func (dp *docParser[T]) peek() token {
	return dp.tokens[dp.pos]
}

func (dp *docParser[T]) next() token {
	tok := dp.tokens[dp.pos]
	if tok.kind != tokenEOF {
		dp.pos++
	}
	return tok
}

func (dp *docParser[T]) expect(kind tokenKind) (token, error) {
	tok := dp.peek()
	if tok.kind != kind {
		return token{}, errorf(tok.pos, "expected %s, found %s", kindName(kind), tok.describe())
	}
	return dp.next(), nil
}

// isKeyword reports whether the upcoming token is the given bare name.
func (dp *docParser[T]) isKeyword(word string) bool {
	tok := dp.peek()
	return tok.kind == tokenName && tok.value == word
}

func (dp *docParser[T]) parseDocument() (*ast.Document[T], error) {
	if dp.peek().kind == tokenEOF {
		return nil, errorf(dp.peek().pos, "document has no definitions")
	}

	doc := &ast.Document[T]{}
	for dp.peek().kind != tokenEOF {
		def, err := dp.parseDefinition()
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
		dp.stats.DefinitionCount++
	}
	return doc, nil
}

func (dp *docParser[T]) parseDefinition() (ast.Definition[T], error) {
	tok := dp.peek()
	switch {
	case tok.kind == tokenBraceL:
		dp.stats.OperationCount++
		return dp.parseSelectionSet()
	case dp.isKeyword("query"), dp.isKeyword("mutation"), dp.isKeyword("subscription"):
		dp.stats.OperationCount++
		return dp.parseOperation()
	case dp.isKeyword("fragment"):
		dp.stats.FragmentCount++
		return dp.parseFragmentDefinition()
	default:
		return nil, errorf(tok.pos, "expected operation or fragment definition, found %s", tok.describe())
	}
}

func (dp *docParser[T]) parseOperation() (ast.OperationDefinition[T], error) {
	keyword := dp.next()

	var name T
	if dp.peek().kind == tokenName {
		name = T(dp.next().value)
	}

	varDefs, err := dp.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := dp.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selections, err := dp.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	switch keyword.value {
	case "query":
		return &ast.Query[T]{
			Position:            keyword.pos,
			Name:                name,
			VariableDefinitions: varDefs,
			Directives:          directives,
			SelectionSet:        selections,
		}, nil
	case "mutation":
		return &ast.Mutation[T]{
			Position:            keyword.pos,
			Name:                name,
			VariableDefinitions: varDefs,
			Directives:          directives,
			SelectionSet:        selections,
		}, nil
	default:
		return &ast.Subscription[T]{
			Position:            keyword.pos,
			Name:                name,
			VariableDefinitions: varDefs,
			Directives:          directives,
			SelectionSet:        selections,
		}, nil
	}
}

func (dp *docParser[T]) parseFragmentDefinition() (*ast.FragmentDefinition[T], error) {
	keyword := dp.next()

	nameTok, err := dp.expect(tokenName)
	if err != nil {
		return nil, err
	}
	if nameTok.value == "on" {
		return nil, errorf(nameTok.pos, "fragment name must not be \"on\"")
	}

	onTok, err := dp.expect(tokenName)
	if err != nil {
		return nil, err
	}
	if onTok.value != "on" {
		return nil, errorf(onTok.pos, "expected \"on\", found %q", onTok.value)
	}

	condTok, err := dp.expect(tokenName)
	if err != nil {
		return nil, err
	}

	directives, err := dp.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selections, err := dp.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition[T]{
		Position:      keyword.pos,
		Name:          T(nameTok.value),
		TypeCondition: T(condTok.value),
		Directives:    directives,
		SelectionSet:  selections,
	}, nil
}

func (dp *docParser[T]) parseVariableDefinitions() ([]*ast.VariableDefinition[T], error) {
	if dp.peek().kind != tokenParenL {
		return nil, nil
	}
	dp.next()

	var defs []*ast.VariableDefinition[T]
	for dp.peek().kind != tokenParenR {
		def, err := dp.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		dp.stats.VariableCount++
	}
	dp.next()

	if len(defs) == 0 {
		return nil, errorf(dp.peek().pos, "variable definitions must not be empty")
	}
	return defs, nil
}

func (dp *docParser[T]) parseVariableDefinition() (*ast.VariableDefinition[T], error) {
	dollar, err := dp.expect(tokenDollar)
	if err != nil {
		return nil, err
	}
	nameTok, err := dp.expect(tokenName)
	if err != nil {
		return nil, err
	}
	if _, err := dp.expect(tokenColon); err != nil {
		return nil, err
	}
	typ, err := dp.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value[T]
	if dp.peek().kind == tokenEquals {
		dp.next()
		defaultValue, err = dp.parseValue(true)
		if err != nil {
			return nil, err
		}
	}

	return &ast.VariableDefinition[T]{
		Position:     dollar.pos,
		Name:         T(nameTok.value),
		Type:         typ,
		DefaultValue: defaultValue,
	}, nil
}

func (dp *docParser[T]) parseType() (ast.Type[T], error) {
	var inner ast.Type[T]

	tok := dp.peek()
	switch tok.kind {
	case tokenBracketL:
		dp.next()
		ofType, err := dp.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := dp.expect(tokenBracketR); err != nil {
			return nil, err
		}
		inner = &ast.ListType[T]{Position: tok.pos, OfType: ofType}
	case tokenName:
		dp.next()
		inner = &ast.NamedType[T]{Position: tok.pos, Name: T(tok.value)}
	default:
		return nil, errorf(tok.pos, "expected type reference, found %s", tok.describe())
	}

	if dp.peek().kind == tokenBang {
		bang := dp.next()
		return &ast.NonNullType[T]{Position: bang.pos, OfType: inner}, nil
	}
	return inner, nil
}

func (dp *docParser[T]) parseSelectionSet() (*ast.SelectionSet[T], error) {
	dp.depth++
	defer func() { dp.depth-- }()
	if dp.depth > dp.maxDepth {
		return nil, errorf(dp.peek().pos, "selection sets nested deeper than %d", dp.maxDepth)
	}
	if dp.depth > dp.stats.MaxSelectionDepth {
		dp.stats.MaxSelectionDepth = dp.depth
	}

	open, err := dp.expect(tokenBraceL)
	if err != nil {
		return nil, err
	}

	set := &ast.SelectionSet[T]{Position: open.pos}
	for dp.peek().kind != tokenBraceR {
		if dp.peek().kind == tokenEOF {
			return nil, errorf(dp.peek().pos, "unclosed selection set")
		}
		sel, err := dp.parseSelection()
		if err != nil {
			return nil, err
		}
		set.Items = append(set.Items, sel)
	}
	dp.next()

	if len(set.Items) == 0 {
		return nil, errorf(open.pos, "selection set must not be empty")
	}
	return set, nil
}

func (dp *docParser[T]) parseSelection() (ast.Selection[T], error) {
	if dp.peek().kind == tokenSpread {
		return dp.parseFragmentSelection()
	}
	return dp.parseField()
}

// parseFragmentSelection parses the selection after a "...": a named
// fragment spread, or an inline fragment with or without a type condition.
func (dp *docParser[T]) parseFragmentSelection() (ast.Selection[T], error) {
	spread := dp.next()

	if dp.peek().kind == tokenName && dp.peek().value != "on" {
		nameTok := dp.next()
		directives, err := dp.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		dp.stats.FragmentSpreadCount++
		return &ast.FragmentSpread[T]{
			Position:     spread.pos,
			FragmentName: T(nameTok.value),
			Directives:   directives,
		}, nil
	}

	var typeCondition T
	if dp.isKeyword("on") {
		dp.next()
		condTok, err := dp.expect(tokenName)
		if err != nil {
			return nil, err
		}
		typeCondition = T(condTok.value)
	}

	directives, err := dp.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selections, err := dp.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	dp.stats.InlineFragmentCount++
	return &ast.InlineFragment[T]{
		Position:      spread.pos,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selections,
	}, nil
}

func (dp *docParser[T]) parseField() (*ast.Field[T], error) {
	nameTok, err := dp.expect(tokenName)
	if err != nil {
		return nil, err
	}

	field := &ast.Field[T]{
		Position: nameTok.pos,
		Name:     T(nameTok.value),
	}

	if dp.peek().kind == tokenColon {
		dp.next()
		actual, err := dp.expect(tokenName)
		if err != nil {
			return nil, err
		}
		field.Alias = field.Name
		field.Name = T(actual.value)
	}

	field.Arguments, err = dp.parseArguments(false)
	if err != nil {
		return nil, err
	}

	field.Directives, err = dp.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	if dp.peek().kind == tokenBraceL {
		field.SelectionSet, err = dp.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	dp.stats.FieldCount++
	return field, nil
}

func (dp *docParser[T]) parseArguments(isConst bool) ([]*ast.Argument[T], error) {
	if dp.peek().kind != tokenParenL {
		return nil, nil
	}
	open := dp.next()

	var args []*ast.Argument[T]
	for dp.peek().kind != tokenParenR {
		nameTok, err := dp.expect(tokenName)
		if err != nil {
			return nil, err
		}
		if _, err := dp.expect(tokenColon); err != nil {
			return nil, err
		}
		value, err := dp.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument[T]{
			Position: nameTok.pos,
			Name:     T(nameTok.value),
			Value:    value,
		})
	}
	dp.next()

	if len(args) == 0 {
		return nil, errorf(open.pos, "argument list must not be empty")
	}
	return args, nil
}

func (dp *docParser[T]) parseDirectives(isConst bool) ([]*ast.Directive[T], error) {
	var directives []*ast.Directive[T]
	for dp.peek().kind == tokenAt {
		at := dp.next()
		nameTok, err := dp.expect(tokenName)
		if err != nil {
			return nil, err
		}
		args, err := dp.parseArguments(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, &ast.Directive[T]{
			Position:  at.pos,
			Name:      T(nameTok.value),
			Arguments: args,
		})
	}
	return directives, nil
}

// parseValue parses one input value. When isConst is true, variable
// references are rejected; default values must be constant.
func (dp *docParser[T]) parseValue(isConst bool) (ast.Value[T], error) {
	tok := dp.peek()
	switch tok.kind {
	case tokenDollar:
		if isConst {
			return nil, errorf(tok.pos, "variables are not allowed in constant values")
		}
		dp.next()
		nameTok, err := dp.expect(tokenName)
		if err != nil {
			return nil, err
		}
		return &ast.Variable[T]{Position: tok.pos, Name: T(nameTok.value)}, nil

	case tokenInt:
		dp.next()
		n, err := strconv.ParseInt(tok.value, 10, 64)
		if err != nil {
			return nil, errorf(tok.pos, "integer %q out of range", tok.value)
		}
		return &ast.IntValue[T]{Position: tok.pos, Value: n}, nil

	case tokenFloat:
		dp.next()
		f, err := strconv.ParseFloat(tok.value, 64)
		if err != nil {
			return nil, errorf(tok.pos, "invalid float %q", tok.value)
		}
		return &ast.FloatValue[T]{Position: tok.pos, Value: f}, nil

	case tokenString, tokenBlockString:
		dp.next()
		return &ast.StringValue[T]{
			Position: tok.pos,
			Value:    tok.value,
			Block:    tok.kind == tokenBlockString,
		}, nil

	case tokenName:
		dp.next()
		switch tok.value {
		case "true":
			return &ast.BooleanValue[T]{Position: tok.pos, Value: true}, nil
		case "false":
			return &ast.BooleanValue[T]{Position: tok.pos, Value: false}, nil
		case "null":
			return &ast.NullValue[T]{Position: tok.pos}, nil
		default:
			return &ast.EnumValue[T]{Position: tok.pos, Value: T(tok.value)}, nil
		}

	case tokenBracketL:
		dp.next()
		list := &ast.ListValue[T]{Position: tok.pos}
		for dp.peek().kind != tokenBracketR {
			if dp.peek().kind == tokenEOF {
				return nil, errorf(dp.peek().pos, "unclosed list value")
			}
			v, err := dp.parseValue(isConst)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, v)
		}
		dp.next()
		return list, nil

	case tokenBraceL:
		dp.next()
		obj := &ast.ObjectValue[T]{Position: tok.pos}
		for dp.peek().kind != tokenBraceR {
			if dp.peek().kind == tokenEOF {
				return nil, errorf(dp.peek().pos, "unclosed object value")
			}
			nameTok, err := dp.expect(tokenName)
			if err != nil {
				return nil, err
			}
			if _, err := dp.expect(tokenColon); err != nil {
				return nil, err
			}
			v, err := dp.parseValue(isConst)
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, &ast.ObjectField[T]{
				Position: nameTok.pos,
				Name:     T(nameTok.value),
				Value:    v,
			})
		}
		dp.next()
		return obj, nil

	default:
		return nil, errorf(tok.pos, "expected value, found %s", tok.describe())
	}
}
