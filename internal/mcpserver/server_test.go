package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "gqltools-test", Version: "0.0.0"},
		nil,
	)
	assert.NotPanics(t, func() { registerAllTools(server) })
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}
