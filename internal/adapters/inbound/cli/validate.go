package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/config"
	"github.com/consultready/consultready/internal/adapters/outbound/scanner"
	"github.com/consultready/consultready/internal/application"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <file-or-dir> ...",
		Short: "Check domain config files for errors",
		Long: "Load each domain config file and report schema or rule-table errors. Directories are\n" +
			"searched for *.yaml and *.yml files. Fails if any file is invalid.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := scanner.New().Expand(args, scanner.ConfigExtensions...)
			if err != nil {
				return fmt.Errorf("scanning: %w", err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no domain config files found")
			}
			reports := application.NewValidateService(config.New()).Validate(paths)

			failed := 0
			for _, r := range reports {
				if !r.OK() {
					failed++
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, r := range reports {
					if r.OK() {
						fmt.Fprintf(out, "✓ %s  (%s, %d fields)\n", r.Path, r.Domain, r.Fields)
					} else {
						fmt.Fprintf(out, "✗ %s  %s\n", r.Path, r.Error)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("validation failed: %d of %d file(s) invalid", failed, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
