package mcpserver

import (
	"fmt"

	"github.com/erraggy/gqltools/parser"
)

// maxInlineSize bounds inline document content. Query documents are small;
// anything larger is almost certainly a mistake.
const maxInlineSize = 1 << 20

// queryInput represents the two ways a query document can be provided to a
// tool. Exactly one of File or Content must be set.
type queryInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a query document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline query document content"`
}

// resolve parses the provided document. Documents are small enough that no
// caching layer is warranted; every call parses fresh.
func (q queryInput) resolve() (*parser.ParseResult[string], error) {
	count := 0
	if q.File != "" {
		count++
	}
	if q.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if len(q.Content) > maxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead", len(q.Content), maxInlineSize)
	}

	p := parser.New[string]()
	if q.File != "" {
		return p.ParseFile(q.File)
	}
	return p.Parse(q.Content)
}
