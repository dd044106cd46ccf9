package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/consultready/consultready/internal/adapters/inbound/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ConsultReady MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(a))
	return cmd
}

func newMCPServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start ConsultReady MCP server (stdio)",
		Long:  "Start the MCP server on stdio so assistants can evaluate intakes and read domain configs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mcpadapter.Version = version
			s := mcpadapter.NewConsultReadyMCPServer(a.catalog, a.evaluator)
			return server.ServeStdio(s)
		},
	}
}
