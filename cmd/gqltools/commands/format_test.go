package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFormat_RequiresFilePath(t *testing.T) {
	err := HandleFormat([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one file path")
}

func TestHandleFormat_Help(t *testing.T) {
	assert.NoError(t, HandleFormat([]string{"--help"}))
}

func TestHandleFormat_InvalidIndent(t *testing.T) {
	err := HandleFormat([]string{"--indent", "0", "query.graphql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent must be at least 1")
}

func TestHandleFormat_WritesOutputFile(t *testing.T) {
	path := writeQueryFile(t, `query Q{user{id}}`)
	outPath := filepath.Join(t.TempDir(), "formatted.graphql")

	require.NoError(t, HandleFormat([]string{"-o", outPath, path}))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "query Q {\n  user {\n    id\n  }\n}\n", string(out))
}

func TestHandleFormat_Minify(t *testing.T) {
	path := writeQueryFile(t, "query Q {\n  user {\n    id\n  }\n}\n")
	outPath := filepath.Join(t.TempDir(), "min.graphql")

	require.NoError(t, HandleFormat([]string{"--minify", "-o", outPath, path}))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "query Q{user{id}}\n", string(out))
}

func TestHandleFormat_CustomIndent(t *testing.T) {
	path := writeQueryFile(t, `{ a }`)
	outPath := filepath.Join(t.TempDir(), "out.graphql")

	require.NoError(t, HandleFormat([]string{"--indent", "4", "-o", outPath, path}))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n    a\n}\n", string(out))
}

func TestHandleFormat_ParseError(t *testing.T) {
	path := writeQueryFile(t, `query {`)
	err := HandleFormat([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing document")
}
