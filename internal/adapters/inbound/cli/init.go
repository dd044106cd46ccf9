package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/config"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		domainName string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a built-in domain config as an editable starting point",
		Long: "Export a domain's rule table to <dir>/<name>.yaml. dir defaults to the domains directory,\n" +
			"so the exported file replaces the built-in on the next run.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.settings.DomainsDir
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := a.catalog.Get(domainName)
			if err != nil {
				return err
			}

			dest := filepath.Join(dir, cfg.Name+".yaml")
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
				}
			}

			data, err := config.Encode(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "burn", "Domain to export")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing file")

	return cmd
}
