package mcp

import (
	"context"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultready/consultready/internal/application"
	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
)

func TestHandleDomainResource_NameFromURIWithoutArguments(t *testing.T) {
	handler := handleDomainResource(application.NewCatalog(pathways.All(), nil))

	contents, err := handler(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{URI: "consult://domains/appendicitis"},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"name": "appendicitis"`)

	_, err = handler(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{URI: "consult://domains/ortho"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestHandleDomainResource_ArgumentWinsOverURI(t *testing.T) {
	handler := handleDomainResource(application.NewCatalog(pathways.All(), nil))

	contents, err := handler(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{
			URI:       "consult://domains/ignored",
			Arguments: map[string]any{"name": "burn"},
		},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcplib.TextResourceContents)
	assert.Contains(t, text.Text, `"name": "burn"`)
}

func TestTemplateArg(t *testing.T) {
	assert.Equal(t, "burn", templateArg(map[string]any{"name": "burn"}, "name"))
	assert.Equal(t, "burn", templateArg(map[string]any{"name": []string{"burn"}}, "name"))
	assert.Empty(t, templateArg(map[string]any{"name": []string{}}, "name"))
	assert.Empty(t, templateArg(nil, "name"))
}
