package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf,
		[]string{"NAME", "PATH"},
		[][]string{
			{"user", "$.definitions[0]"},
			{"id", "$.definitions[0].selectionSet.items[0]"},
		},
		false)

	out := buf.String()
	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "PATH")
	// Columns are padded to the widest cell.
	assert.Contains(t, out, "user  $.definitions[0]")
}

func TestRenderSummaryTable_Quiet(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf,
		[]string{"NAME", "PATH"},
		[][]string{{"user", "$.definitions[0]"}},
		true)

	assert.Equal(t, "user\t$.definitions[0]\n", buf.String())
}

func TestRenderSummaryTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"NAME"}, nil, false)
	assert.Empty(t, buf.String())
}

func TestRenderSummaryStructured(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummaryStructured(&buf,
		[]string{"NAME", "TYPE"},
		[][]string{{"id", "ID!"}},
		FormatJSON)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"name": "id", "type": "ID!"}]`, buf.String())
}

func TestRenderDetail(t *testing.T) {
	node := map[string]int{"fields": 4}

	var jsonBuf bytes.Buffer
	require.NoError(t, RenderDetail(&jsonBuf, node, FormatJSON))
	assert.JSONEq(t, `{"fields": 4}`, jsonBuf.String())

	var yamlBuf bytes.Buffer
	require.NoError(t, RenderDetail(&yamlBuf, node, FormatYAML))
	assert.Equal(t, "fields: 4\n", yamlBuf.String())

	var buf bytes.Buffer
	err := RenderDetail(&buf, node, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
