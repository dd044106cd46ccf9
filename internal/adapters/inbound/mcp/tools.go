package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/consultready/consultready/internal/adapters/outbound/intake"
	"github.com/consultready/consultready/internal/application"
	"github.com/consultready/consultready/internal/domain/tbsa"
)

// registerTools registers the consult tools on the given server.
func registerTools(s *server.MCPServer, catalog *application.Catalog, svc *application.EvaluateService) {
	// 1. consult_evaluate
	s.AddTool(
		mcplib.NewTool("consult_evaluate",
			mcplib.WithDescription("Evaluate consult readiness, scope and recommendation tier for an intake, returning the paste-ready consult message"),
			mcplib.WithString("domain",
				mcplib.Required(),
				mcplib.Description("Consult domain name (see consult_list_domains)"),
			),
			mcplib.WithString("intake",
				mcplib.Required(),
				mcplib.Description("Intake document as JSON or YAML with inputs, details and optional tbsa_regions"),
			),
			mcplib.WithBoolean("checklist", mcplib.Description("Include the per-item required checklist")),
		),
		handleEvaluate(catalog, svc),
	)

	// 2. consult_list_domains
	s.AddTool(
		mcplib.NewTool("consult_list_domains",
			mcplib.WithDescription("List the available consult domains with their required fields"),
		),
		handleListDomains(catalog),
	)

	// 3. consult_estimate_tbsa
	s.AddTool(
		mcplib.NewTool("consult_estimate_tbsa",
			mcplib.WithDescription("Estimate burned total body surface area from body regions (rule of nines)"),
			mcplib.WithString("regions",
				mcplib.Required(),
				mcplib.Description("Comma-separated region ids, e.g. head_ant,torso_post,r_arm_ant"),
			),
		),
		handleEstimateTBSA(),
	)
}

type evaluateResponse struct {
	Result    any `json:"result"`
	Checklist any `json:"checklist,omitempty"`
	TBSA      any `json:"tbsa,omitempty"`
}

func handleEvaluate(catalog *application.Catalog, svc *application.EvaluateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("domain")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		raw, err := request.RequireString("intake")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		withChecklist, _ := request.GetArguments()["checklist"].(bool)

		cfg, err := catalog.Get(name)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		doc, err := intake.ParseDocument([]byte(raw))
		if err != nil {
			return errorResult(fmt.Sprintf("parsing intake: %v", err)), nil
		}
		in, err := intake.Convert(doc, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid intake: %v", err)), nil
		}

		res, err := svc.Evaluate(cfg.Name, in.Inputs, in.Details)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		resp := evaluateResponse{Result: res}
		if in.TBSA != nil {
			resp.TBSA = in.TBSA
		}
		if withChecklist {
			cl, err := svc.Checklist(cfg.Name, in.Inputs)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			resp.Checklist = cl
		}
		return jsonResult(resp)
	}
}

func handleListDomains(catalog *application.Catalog) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(catalog.Summaries())
	}
}

func handleEstimateTBSA() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		regions, err := request.RequireString("regions")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		est, err := tbsa.Compute(strings.Split(regions, ","))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(est)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
