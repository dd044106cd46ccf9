package tui

import (
	"fmt"
	"strings"

	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/consultready/consultready/internal/domain/tbsa"
)

// RenderDomains lists the available pathways with their origin.
func RenderDomains(configs []domain.DomainConfig) string {
	if len(configs) == 0 {
		return "  " + dimStyle.Render("No domains configured.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Consult Domains") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, cfg := range configs {
		rev := cfg.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if rev == "" {
			rev = "·······"
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			titleStyle.Render(padRight(cfg.Name, 16)),
			faintStyle.Render(padRight(rev, 8)),
			dimStyle.Render(cfg.Title),
		)
		fmt.Fprintf(&b, "    %s\n", faintStyle.Render(fmt.Sprintf(
			"%d fields · %d required · threshold %.0f%%", len(cfg.Fields), len(cfg.Required), cfg.ReadinessThreshold)))
		if cfg.Source != "" {
			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(cfg.Source))
		}
	}
	return b.String()
}

// RenderTBSA renders a region selection and its total.
func RenderTBSA(est tbsa.Estimate) string {
	names := make(map[string]tbsa.Region)
	for _, r := range tbsa.Regions() {
		names[r.ID] = r
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, id := range est.Selected {
		r := names[id]
		fmt.Fprintf(&b, "    %s %s %s\n", passStyle.Render("●"), padRight(r.Name, 24), dimStyle.Render(fmt.Sprintf("%4.1f%%", r.Percent)))
	}
	b.WriteString("  " + separatorLine + "\n")
	total := fmt.Sprintf("Estimated TBSA: %.1f%%", est.Percent)
	if est.Percent >= pathways.MajorTBSAPercent {
		b.WriteString("  " + failStyle.Bold(true).Render(total) + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render(total) + "\n")
	}
	return b.String()
}
