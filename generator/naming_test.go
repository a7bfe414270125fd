package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"field counter", "FieldCounter"},
		{"field-counter", "FieldCounter"},
		{"field_counter", "FieldCounter"},
		{"fieldCounter", "FieldCounter"},
		{"FieldCounter", "FieldCounter"},
		{"HTTPTracer", "Httptracer"},
		{"parseTree walker", "ParseTreeWalker"},
		{"visitor2", "Visitor2"},
		{"", "Visitor"},
		{"---", "Visitor"},
		{"range", "Range_"},
		{"9lives", "V9Lives"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toTypeName(tt.in))
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	assert.Equal(t, "Type_", escapeReservedWord("Type"))
	assert.Equal(t, "map_", escapeReservedWord("map"))
	assert.Equal(t, "Counter", escapeReservedWord("Counter"))
	// Predeclared identifiers are not escaped, only keywords.
	assert.Equal(t, "Error", escapeReservedWord("Error"))
}
