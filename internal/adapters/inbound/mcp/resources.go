package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/consultready/consultready/internal/application"
)

const (
	domainsURI       = "consult://domains"
	domainURIPattern = "consult://domains/{name}"
)

// registerResources exposes the catalogue and each full domain config.
func registerResources(s *server.MCPServer, catalog *application.Catalog) {
	s.AddResource(
		mcplib.NewResource(
			domainsURI,
			"Consult Domains",
			mcplib.WithResourceDescription("Available consult domains and their required fields"),
			mcplib.WithMIMEType("application/json"),
		),
		handleDomainsResource(catalog),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			domainURIPattern,
			"Domain Config",
			mcplib.WithTemplateDescription("Full rule table for one consult domain"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleDomainResource(catalog),
	)
}

func handleDomainsResource(catalog *application.Catalog) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(catalog.Summaries(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling domains: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      domainsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleDomainResource(catalog *application.Catalog) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			name = strings.TrimPrefix(request.Params.URI, domainsURI+"/")
		}

		cfg, err := catalog.Get(name)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling domain: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// templateArg reads a matched URI variable, which arrives as a string or a
// single-element list depending on the template expression.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
