package domain

import (
	"fmt"
	"strings"
)

// Fallback wording for configs that omit message templates.
const (
	defaultRedirect               = "Consider redirecting to the primary team or an alternate service."
	defaultSevereAlternate        = "Findings suggest a severe alternate process; escalate to the appropriate specialty urgently."
	defaultDetailsHeading         = "Key details documented:"
	defaultMissingLead            = "Missing elements:"
	defaultParallelDetailsHeading = "Key details (documented in parallel):"
	defaultParallelMissingLead    = "Missing items to make consult higher-yield:"
)

func (m MessageTemplates) withDefaults() MessageTemplates {
	set := func(s *string, def string) {
		if strings.TrimSpace(*s) == "" {
			*s = def
		}
	}
	set(&m.Redirect, defaultRedirect)
	set(&m.SevereAlternate, defaultSevereAlternate)
	set(&m.DetailsHeading, defaultDetailsHeading)
	set(&m.MissingLead, defaultMissingLead)
	set(&m.ParallelDetailsHeading, defaultParallelDetailsHeading)
	set(&m.ParallelMissingLead, defaultParallelMissingLead)
	return m
}

// ComposeMessage renders the paste-ready consult note. Sections are
// separated by a blank line and omitted when their source is empty.
func ComposeMessage(
	inputs Inputs,
	details *Details,
	cfg DomainConfig,
	scope Scope,
	tier Tier,
	rationale string,
	missing []string,
) string {
	tmpl := cfg.Message.withDefaults()

	var sections []string
	detailsHeading, missingLead := tmpl.ParallelDetailsHeading, tmpl.ParallelMissingLead

	if scope == OutsideScope {
		branch := tmpl.Redirect
		if cfg.SevereAlternateFlag != "" && inputs.IsTrue(cfg.SevereAlternateFlag) {
			branch = tmpl.SevereAlternate
		}
		sections = append(sections, joinSentences(rationale, branch))
		detailsHeading, missingLead = tmpl.DetailsHeading, tmpl.MissingLead
	} else {
		sections = append(sections, fmt.Sprintf("Recommend: %s. Rationale: %s", cfg.TierLabels.Label(tier), rationale))
	}

	if block := detailsBlock(details); block != "" {
		sections = append(sections, detailsHeading+"\n"+block)
	}
	if short := truncateMissing(missing, cfg.EffectiveMissingCap()); short != "" {
		sections = append(sections, fmt.Sprintf("%s %s.", missingLead, short))
	}

	return strings.Join(sections, "\n\n")
}

func joinSentences(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func detailsBlock(details *Details) string {
	if details.Len() == 0 {
		return ""
	}
	entries := details.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Value) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Label, e.Value))
	}
	return strings.Join(lines, "\n")
}

func truncateMissing(missing []string, limit int) string {
	if len(missing) == 0 {
		return ""
	}
	if len(missing) > limit {
		missing = missing[:limit]
	}
	return strings.Join(missing, "; ")
}
