package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/tui"
	"github.com/consultready/consultready/internal/domain/tbsa"
)

func newTBSACmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tbsa [region...]",
		Short: "Estimate burned body surface area (rule of nines)",
		Long:  "Sum the selected body regions. With no regions, list the region ids.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if jsonOutput {
					return renderJSON(cmd, tbsa.Regions())
				}
				for _, r := range tbsa.Regions() {
					fmt.Fprintf(out, "%-11s %5.1f%%  %s\n", r.ID, r.Percent, r.Name)
				}
				return nil
			}

			est, err := tbsa.Compute(args)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, est)
			}
			fmt.Fprint(out, tui.RenderTBSA(est))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
