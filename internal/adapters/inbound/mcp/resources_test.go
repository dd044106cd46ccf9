package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcReply struct {
	Result struct {
		Contents []struct {
			URI      string `json:"uri"`
			MIMEType string `json:"mimeType"`
			Text     string `json:"text"`
		} `json:"contents"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func readResource(t *testing.T, s *server.MCPServer, uri string) rpcReply {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "resources/read",
		"params":  map[string]any{"uri": uri},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(s.HandleMessage(context.Background(), msg))
	require.NoError(t, err)

	var reply rpcReply
	require.NoError(t, json.Unmarshal(raw, &reply), string(raw))
	return reply
}

func TestDomainsResource(t *testing.T) {
	reply := readResource(t, newServer(t), "consult://domains")
	require.Nil(t, reply.Error)
	require.Len(t, reply.Result.Contents, 1)
	assert.Contains(t, reply.Result.Contents[0].Text, `"name": "appendicitis"`)
}

func TestDomainTemplateResource(t *testing.T) {
	s := newServer(t)

	reply := readResource(t, s, "consult://domains/burn")
	require.Nil(t, reply.Error)
	require.Len(t, reply.Result.Contents, 1)
	content := reply.Result.Contents[0]
	assert.Equal(t, "consult://domains/burn", content.URI)
	assert.Equal(t, "application/json", content.MIMEType)

	var cfg struct {
		Name               string  `json:"name"`
		ReadinessThreshold float64 `json:"readiness_threshold"`
	}
	require.NoError(t, json.Unmarshal([]byte(content.Text), &cfg))
	assert.Equal(t, "burn", cfg.Name)
	assert.Equal(t, 70.0, cfg.ReadinessThreshold)

	reply = readResource(t, s, "consult://domains/cardiology")
	require.NotNil(t, reply.Error)
	assert.Contains(t, reply.Error.Message, "unknown domain")
}
