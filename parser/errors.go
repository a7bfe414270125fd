package parser

import (
	"fmt"

	"github.com/erraggy/gqltools/ast"
)

// ParseError describes a syntax error in a query document.
type ParseError struct {
	// Position is the 1-based line/column location of the error.
	Position ast.Position

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Position, e.Message)
}

// errorf builds a ParseError at the given position.
func errorf(pos ast.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	}
}
