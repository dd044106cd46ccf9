package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/config"
	"github.com/consultready/consultready/internal/adapters/outbound/gitinfo"
	"github.com/consultready/consultready/internal/application"
	appconfig "github.com/consultready/consultready/internal/config"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/consultready/consultready/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// envFile is read from the working directory when present.
const envFile = ".env"

// app is filled in by the root PersistentPreRunE before any command runs.
type app struct {
	settings  appconfig.Settings
	logger    zerolog.Logger
	catalog   *application.Catalog
	evaluator *application.EvaluateService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "consultready",
		Short: "Check a consult is ready before you call it",
		Long: "ConsultReady scores how complete a specialty consult request is, classifies whether it\n" +
			"falls within the specialty's scope, recommends an urgency tier and drafts a paste-ready message.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("domains-dir", "", "Directory of domain config YAML files (default .consultready/domains)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default info)")
	flags.String("log-format", "", "Log format: console or json (default console)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd(a))
	cmd.AddCommand(newChecklistCmd(a))
	cmd.AddCommand(newDomainsCmd(a))
	cmd.AddCommand(newTBSACmd())
	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newMCPCmd(a))
	cmd.AddCommand(newServeCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	s, err := appconfig.Load(envFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	catalog, err := application.LoadCatalog(pathways.All(), config.New(), gitinfo.New(), s.DomainsDir, logger)
	if err != nil {
		return err
	}

	a.settings = s
	a.logger = logger
	a.catalog = catalog
	a.evaluator = application.NewEvaluateService(catalog, logger)
	return nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
