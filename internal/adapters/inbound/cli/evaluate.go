package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/outbound/intake"
	"github.com/consultready/consultready/internal/adapters/outbound/tui"
	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/tbsa"
)

type evaluateOutput struct {
	Result domain.Result  `json:"result"`
	TBSA   *tbsa.Estimate `json:"tbsa,omitempty"`
}

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		domainName  string
		jsonOutput  bool
		messageOnly bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <intake-file>",
		Short: "Evaluate an intake and draft the consult message",
		Long: "Read a YAML or JSON intake, then report readiness, scope and the recommended tier.\n" +
			"The domain comes from --domain or the intake's own domain field.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, in, err := a.readIntake(args[0], domainName)
			if err != nil {
				return err
			}

			res, err := a.evaluator.Evaluate(cfg.Name, in.Inputs, in.Details)
			if err != nil {
				return fmt.Errorf("evaluate failed: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				return renderJSON(cmd, evaluateOutput{Result: res, TBSA: in.TBSA})
			case messageOnly:
				_, err := fmt.Fprintln(out, res.Message)
				return err
			}

			title := cfg.Title
			if title == "" {
				title = cfg.Name
			}
			fmt.Fprint(out, tui.RenderEvaluation(res, title))
			if in.TBSA != nil {
				fmt.Fprint(out, tui.RenderTBSA(*in.TBSA))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "", "Consult domain (overrides the intake's domain field)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&messageOnly, "message", "m", false, "Print only the paste-ready consult message")
	cmd.MarkFlagsMutuallyExclusive("json", "message")

	return cmd
}

// readIntake parses path and converts it for the domain named by flag, or
// by the document when flag is empty.
func (a *app) readIntake(path, flag string) (domain.DomainConfig, intake.Intake, error) {
	reader := intake.NewReader()
	doc, err := reader.Parse(path)
	if err != nil {
		return domain.DomainConfig{}, intake.Intake{}, err
	}

	name := flag
	if name == "" {
		name = doc.Domain
	}
	if name == "" {
		return domain.DomainConfig{}, intake.Intake{}, fmt.Errorf("%s: no domain given (use --domain or set domain in the intake)", filepath.Base(path))
	}

	cfg, err := a.catalog.Get(name)
	if err != nil {
		return domain.DomainConfig{}, intake.Intake{}, err
	}
	in, err := intake.Convert(doc, cfg)
	if err != nil {
		return domain.DomainConfig{}, intake.Intake{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, in, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
