package mcp

import (
	"github.com/consultready/consultready/internal/application"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients during initialization.
var Version = "0.1.0"

// NewConsultReadyMCPServer creates an MCP server exposing evaluation tools
// and the domain catalogue as resources.
func NewConsultReadyMCPServer(catalog *application.Catalog, svc *application.EvaluateService) *server.MCPServer {
	s := server.NewMCPServer(
		"consultready",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, catalog, svc)
	registerResources(s, catalog)

	return s
}
