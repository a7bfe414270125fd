package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go keywords that cannot be used as identifiers.
// Predeclared identifiers like "error" are deliberately absent; they can be
// shadowed and make reasonable type names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord appends an underscore when name collides with a Go
// keyword. The check is case-insensitive so PascalCase names like "Range"
// are still escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// titleCaser is used instead of the deprecated strings.Title.
var titleCaser = cases.Title(language.English)

// toTypeName converts a raw name to a valid exported Go type name
// (PascalCase). Words may be separated by spaces, hyphens, underscores, or
// case changes in the input.
func toTypeName(s string) string {
	if s == "" {
		return "Visitor"
	}

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	prevLower := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) && prevLower {
				flush()
			}
			current.WriteRune(r)
			prevLower = unicode.IsLower(r)
		case unicode.IsDigit(r):
			current.WriteRune(r)
			prevLower = false
		default:
			flush()
			prevLower = false
		}
	}
	flush()

	var result strings.Builder
	for _, w := range words {
		result.WriteString(titleCaser.String(strings.ToLower(w)))
	}

	name := result.String()
	if name == "" {
		return "Visitor"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "V" + name
	}
	return escapeReservedWord(name)
}
