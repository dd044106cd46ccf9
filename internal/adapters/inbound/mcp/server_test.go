package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/consultready/consultready/internal/adapters/inbound/mcp"
	"github.com/consultready/consultready/internal/application"
	"github.com/consultready/consultready/internal/domain/pathways"
)

func newServer(t *testing.T) *server.MCPServer {
	t.Helper()
	catalog := application.NewCatalog(pathways.All(), nil)
	s := mcpadapter.NewConsultReadyMCPServer(catalog, application.NewEvaluateService(catalog, zerolog.Nop()))
	require.NotNil(t, s)
	return s
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	res, err := tool.Handler(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestMCPServerHasTools(t *testing.T) {
	tools := newServer(t).ListTools()

	expected := []string{"consult_evaluate", "consult_list_domains", "consult_estimate_tbsa"}
	for _, name := range expected {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expected))
}

func TestConsultEvaluate(t *testing.T) {
	s := newServer(t)
	intake := `{
		"inputs": {"clinical_suspicion": "High", "vitals_reviewed": true, "pain_location_documented": true},
		"details": [{"label": "Onset", "value": "12h periumbilical pain"}]
	}`

	res := callTool(t, s, "consult_evaluate", map[string]any{
		"domain":    "appendicitis",
		"intake":    intake,
		"checklist": true,
	})
	require.False(t, res.IsError, text(t, res))

	var body struct {
		Result struct {
			Domain  string `json:"domain"`
			Scope   string `json:"scope"`
			Message string `json:"message"`
		} `json:"result"`
		Checklist struct {
			Items []struct {
				Key  string `json:"key"`
				Done bool   `json:"done"`
			} `json:"items"`
		} `json:"checklist"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &body))
	assert.Equal(t, "appendicitis", body.Result.Domain)
	assert.Equal(t, "WITHIN_SCOPE", body.Result.Scope)
	assert.Contains(t, body.Result.Message, "Onset: 12h periumbilical pain")
	assert.Len(t, body.Checklist.Items, len(pathways.Appendicitis().Required))
}

func TestConsultEvaluate_YAMLIntakeWithRegions(t *testing.T) {
	s := newServer(t)
	intake := "inputs:\n  mechanism_type: thermal\ntbsa_regions: [torso_ant, torso_post]\n"

	res := callTool(t, s, "consult_evaluate", map[string]any{"domain": "burn", "intake": intake})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), `"tbsa": 36`)
}

func TestConsultEvaluate_Errors(t *testing.T) {
	s := newServer(t)
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing domain", map[string]any{"intake": "{}"}, "domain"},
		{"unknown domain", map[string]any{"domain": "cardiology", "intake": "{}"}, "unknown domain"},
		{"bad document", map[string]any{"domain": "burn", "intake": "[1, 2"}, "parsing intake"},
		{"invalid value", map[string]any{"domain": "burn", "intake": `{"inputs": {"tbsa_pct": 250}}`}, "invalid intake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, s, "consult_evaluate", tt.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
		})
	}
}

func TestConsultListDomains(t *testing.T) {
	res := callTool(t, newServer(t), "consult_list_domains", nil)
	require.False(t, res.IsError)

	var domains []struct {
		Name     string   `json:"name"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &domains))
	require.Len(t, domains, 2)
	assert.Equal(t, "burn", domains[0].Name)
	assert.Contains(t, domains[0].Required, "Burn depth assessed")
}

func TestConsultEstimateTBSA(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "consult_estimate_tbsa", map[string]any{"regions": "head_ant, r_arm_ant"})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), `"tbsa": 9`)

	res = callTool(t, s, "consult_estimate_tbsa", map[string]any{"regions": "tail"})
	assert.True(t, res.IsError)
}
