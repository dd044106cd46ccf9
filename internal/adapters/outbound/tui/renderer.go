package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/consultready/consultready/internal/domain"
)

// ── Clinical palette ──
var (
	accent  = lipgloss.Color("#0EA5E9") // sky
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	tierColors = map[domain.Tier]lipgloss.Color{
		domain.TierConsultNow:        danger,
		domain.TierStrongly:          success,
		domain.TierLow:               warning,
		domain.TierConsiderAlternate: dim,
	}

	scopeColors = map[domain.Scope]lipgloss.Color{
		domain.WithinScope:  success,
		domain.OutsideScope: danger,
		domain.Uncertain:    warning,
	}

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderEvaluation renders a Result for the terminal. The consult message
// is printed last and unstyled so it can be copied as-is.
func RenderEvaluation(res domain.Result, title string) string {
	var b strings.Builder

	// ── Header ──
	if title == "" {
		title = res.Domain
	}
	tier := lipgloss.NewStyle().Bold(true).Foreground(tierColor(res.Tier)).Render(res.TierLabel)
	scope := lipgloss.NewStyle().Foreground(scopeColor(res.Scope)).Render(res.ScopeLabel)
	pct := lipgloss.NewStyle().Bold(true).Foreground(readinessColor(res.Percentage)).
		Render(fmt.Sprintf("%.1f%% ready", res.Percentage))

	b.WriteString(boxStyle.Render(headerStyle.Render(title) + "\n\n" + tier + "\n" + scope + "  " + pct))
	b.WriteString("\n\n")

	// ── Readiness ──
	fmt.Fprintf(&b, "  %s %s  %s\n", titleStyle.Render(padRight("Readiness", 12)), coloredBar(res.Percentage, 30), dimStyle.Render(fmt.Sprintf("%.1f%%", res.Percentage)))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(padRight("Rationale", 12)), dimStyle.Render(res.Rationale))

	if len(res.Missing) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", sectionHeaderStyle.Render("Missing"), dimStyle.Render(fmt.Sprintf("(%d)", len(res.Missing))))
		for _, m := range res.Missing {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), m)
		}
	}

	// ── Message ──
	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString(res.Message)
	b.WriteString("\n\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")

	return b.String()
}

func coloredBar(pct float64, width int) string {
	filled := max(0, min(int(pct)*width/100, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(readinessColor(pct)).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func readinessColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 60:
		return lime
	case pct >= 40:
		return warning
	default:
		return danger
	}
}

func tierColor(t domain.Tier) lipgloss.Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return fg
}

func scopeColor(s domain.Scope) lipgloss.Color {
	if c, ok := scopeColors[s]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
