package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/config"
	"github.com/consultready/consultready/internal/adapters/outbound/tui"
)

func newDomainsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List available consult domains",
		Long:  "List the built-in pathways and any configs loaded from the domains directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return renderJSON(cmd, a.catalog.List())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDomains(a.catalog.List()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.AddCommand(newDomainsShowCmd(a))

	return cmd
}

func newDomainsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a domain's full rule table as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
