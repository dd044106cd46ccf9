package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/tui"
)

func newChecklistCmd(a *app) *cobra.Command {
	var (
		domainName string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "checklist <intake-file>",
		Short: "Show which required items an intake documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, in, err := a.readIntake(args[0], domainName)
			if err != nil {
				return err
			}
			cl, err := a.evaluator.Checklist(cfg.Name, in.Inputs)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, cl)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderChecklist(cl))
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "", "Consult domain (overrides the intake's domain field)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
