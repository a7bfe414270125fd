package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/gqltools/ast"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenName
	tokenInt
	tokenFloat
	tokenString      // quoted "...", value stored unescaped
	tokenBlockString // triple-quoted """...""", value stored dedented
	tokenBang        // !
	tokenDollar      // $
	tokenParenL      // (
	tokenParenR      // )
	tokenSpread      // ...
	tokenColon       // :
	tokenEquals      // =
	tokenAt          // @
	tokenBracketL    // [
	tokenBracketR    // ]
	tokenBraceL      // {
	tokenBraceR      // }
	tokenPipe        // |
	tokenAmp         // &
)

// kindName returns a human-readable name for error messages.
func kindName(k tokenKind) string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenName:
		return "name"
	case tokenInt:
		return "integer"
	case tokenFloat:
		return "float"
	case tokenString, tokenBlockString:
		return "string"
	case tokenBang:
		return "'!'"
	case tokenDollar:
		return "'$'"
	case tokenParenL:
		return "'('"
	case tokenParenR:
		return "')'"
	case tokenSpread:
		return "'...'"
	case tokenColon:
		return "':'"
	case tokenEquals:
		return "'='"
	case tokenAt:
		return "'@'"
	case tokenBracketL:
		return "'['"
	case tokenBracketR:
		return "']'"
	case tokenBraceL:
		return "'{'"
	case tokenBraceR:
		return "'}'"
	case tokenPipe:
		return "'|'"
	case tokenAmp:
		return "'&'"
	default:
		return fmt.Sprintf("token(%d)", k)
	}
}

type token struct {
	kind  tokenKind
	value string
	pos   ast.Position
}

// describe renders a token for error messages.
func (t token) describe() string {
	switch t.kind {
	case tokenName, tokenInt, tokenFloat:
		return fmt.Sprintf("%q", t.value)
	case tokenString, tokenBlockString:
		return "string value"
	default:
		return kindName(t.kind)
	}
}

// lexer scans a query source into tokens. Line and column tracking is
// byte-based; GraphQL punctuation and names are ASCII, and non-ASCII bytes
// only appear inside strings and comments.
type lexer struct {
	src       string
	pos       int
	line      int // 1-based
	lineStart int // byte offset where the current line starts
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) position() ast.Position {
	return ast.Position{Line: l.line, Column: l.pos - l.lineStart + 1}
}

func (l *lexer) newline() {
	l.line++
	l.lineStart = l.pos
}

// tokenize scans the entire source and returns its tokens, terminated by
// an EOF token.
func (l *lexer) tokenize() ([]token, error) {
	// Skip a UTF-8 byte order mark if present.
	if strings.HasPrefix(l.src, "\uFEFF") {
		l.pos += len("\uFEFF")
		l.lineStart = l.pos
	}

	var tokens []token
	for {
		l.skipIgnored()
		if l.pos >= len(l.src) {
			tokens = append(tokens, token{kind: tokenEOF, pos: l.position()})
			return tokens, nil
		}

		tok, err := l.readToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// skipIgnored advances past whitespace, commas, and comments. Commas are
// insignificant separators in the query language.
func (l *lexer) skipIgnored() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', ',':
			l.pos++
		case '\r':
			l.pos++
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				l.pos++
			}
			l.newline()
		case '\n':
			l.pos++
			l.newline()
		case '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) readToken() (token, error) {
	pos := l.position()
	c := l.src[l.pos]

	switch {
	case isNameStart(c):
		return token{kind: tokenName, value: l.readName(), pos: pos}, nil
	case c == '-' || isDigit(c):
		return l.readNumber(pos)
	case c == '"':
		if strings.HasPrefix(l.src[l.pos:], `"""`) {
			return l.readBlockString(pos)
		}
		return l.readString(pos)
	case c == '.':
		if strings.HasPrefix(l.src[l.pos:], "...") {
			l.pos += 3
			return token{kind: tokenSpread, value: "...", pos: pos}, nil
		}
		return token{}, errorf(pos, "unexpected character '.', did you mean '...'?")
	}

	var kind tokenKind
	switch c {
	case '!':
		kind = tokenBang
	case '$':
		kind = tokenDollar
	case '(':
		kind = tokenParenL
	case ')':
		kind = tokenParenR
	case ':':
		kind = tokenColon
	case '=':
		kind = tokenEquals
	case '@':
		kind = tokenAt
	case '[':
		kind = tokenBracketL
	case ']':
		kind = tokenBracketR
	case '{':
		kind = tokenBraceL
	case '}':
		kind = tokenBraceR
	case '|':
		kind = tokenPipe
	case '&':
		kind = tokenAmp
	default:
		return token{}, errorf(pos, "unexpected character %q", string(rune(c)))
	}

	l.pos++
	return token{kind: kind, value: string(c), pos: pos}, nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) readName() string {
	start := l.pos
	for l.pos < len(l.src) && isNameContinue(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos]
}

func (l *lexer) readNumber(pos ast.Position) (token, error) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}

	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		return token{}, errorf(pos, "invalid number: expected digit")
	}
	if l.src[l.pos] == '0' {
		l.pos++
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			return token{}, errorf(pos, "invalid number: unexpected digit after leading zero")
		}
	} else {
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	isFloat := false

	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		// A lone '.' after digits is the start of a spread, not a
		// fraction; only consume it when a digit follows.
		if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			isFloat = true
			l.pos++
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		}
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			return token{}, errorf(pos, "invalid number: expected exponent digits")
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	kind := tokenInt
	if isFloat {
		kind = tokenFloat
	}
	return token{kind: kind, value: l.src[start:l.pos], pos: pos}, nil
}

func (l *lexer) readString(pos ast.Position) (token, error) {
	l.pos++ // opening quote

	var out strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokenString, value: out.String(), pos: pos}, nil
		case '\n', '\r':
			return token{}, errorf(pos, "unterminated string")
		case '\\':
			if l.pos+1 >= len(l.src) {
				return token{}, errorf(pos, "unterminated string")
			}
			esc := l.src[l.pos+1]
			switch esc {
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			case '/':
				out.WriteByte('/')
			case 'b':
				out.WriteByte('\b')
			case 'f':
				out.WriteByte('\f')
			case 'n':
				out.WriteByte('\n')
			case 'r':
				out.WriteByte('\r')
			case 't':
				out.WriteByte('\t')
			case 'u':
				if l.pos+6 > len(l.src) {
					return token{}, errorf(l.position(), "invalid unicode escape")
				}
				r, err := decodeHexRune(l.src[l.pos+2 : l.pos+6])
				if err != nil {
					return token{}, errorf(l.position(), "invalid unicode escape %q", l.src[l.pos:l.pos+6])
				}
				out.WriteRune(r)
				l.pos += 4
			default:
				return token{}, errorf(l.position(), "invalid escape character %q", string(rune(esc)))
			}
			l.pos += 2
		default:
			out.WriteByte(c)
			l.pos++
		}
	}
	return token{}, errorf(pos, "unterminated string")
}

func decodeHexRune(hex string) (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		c := hex[i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", string(rune(c)))
		}
		r = r<<4 | d
	}
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("invalid rune %U", r)
	}
	return r, nil
}

func (l *lexer) readBlockString(pos ast.Position) (token, error) {
	l.pos += 3 // opening quotes

	var raw strings.Builder
	for l.pos < len(l.src) {
		if strings.HasPrefix(l.src[l.pos:], `\"""`) {
			raw.WriteString(`"""`)
			l.pos += 4
			continue
		}
		if strings.HasPrefix(l.src[l.pos:], `"""`) {
			l.pos += 3
			return token{kind: tokenBlockString, value: blockStringValue(raw.String()), pos: pos}, nil
		}
		c := l.src[l.pos]
		raw.WriteByte(c)
		l.pos++
		if c == '\n' {
			l.newline()
		} else if c == '\r' {
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				raw.WriteByte('\n')
				l.pos++
			}
			l.newline()
		}
	}
	return token{}, errorf(pos, "unterminated block string")
}

// blockStringValue strips the common indentation and surrounding blank
// lines from a raw block string body.
func blockStringValue(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == len(line) {
			continue // blank line
		}
		if commonIndent < 0 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i, line := range lines[1:] {
			if len(line) >= commonIndent {
				lines[i+1] = line[commonIndent:]
			} else {
				lines[i+1] = ""
			}
		}
	}

	start := 0
	for start < len(lines) && strings.TrimLeft(lines[start], " \t") == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimLeft(lines[end-1], " \t") == "" {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}
