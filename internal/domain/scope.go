package domain

// Scope is whether the specialty's involvement is appropriate for the case.
type Scope string

const (
	WithinScope  Scope = "WITHIN_SCOPE"
	OutsideScope Scope = "OUTSIDE_SCOPE"
	Uncertain    Scope = "UNCERTAIN"
)

// ScopeRule names the classifier branch that produced a decision.
type ScopeRule string

const (
	RuleHighRisk     ScopeRule = "high_risk"
	RuleConsistent   ScopeRule = "consistent"
	RuleInconsistent ScopeRule = "inconsistent"
	RuleInsufficient ScopeRule = "insufficient"
)

// ScopeDecision is the classifier outcome.
type ScopeDecision struct {
	Scope     Scope     `json:"scope"`
	Rule      ScopeRule `json:"rule"`
	Label     string    `json:"label"`
	Rationale string    `json:"rationale"`
}

// ClassifyScope applies the scope rules in order; the first match wins.
// A true high-risk flag dominates everything below it, including an
// explicitly false consistency flag.
func ClassifyScope(inputs Inputs, cfg DomainConfig) ScopeDecision {
	switch {
	case inputs.AnyTrue(cfg.HighRiskFlags):
		return decision(WithinScope, RuleHighRisk, cfg.ScopeText.HighRisk)
	case allTrue(inputs, cfg.ConsistencyFlags):
		return decision(WithinScope, RuleConsistent, cfg.ScopeText.Consistent)
	case anyFalseOrUnset(inputs, cfg.ConsistencyFlags):
		return decision(OutsideScope, RuleInconsistent, cfg.ScopeText.Inconsistent)
	default:
		return decision(Uncertain, RuleInsufficient, cfg.ScopeText.Insufficient)
	}
}

func decision(s Scope, rule ScopeRule, text ScopeText) ScopeDecision {
	label := text.Label
	if label == "" {
		label = string(s)
	}
	return ScopeDecision{Scope: s, Rule: rule, Label: label, Rationale: text.Rationale}
}

// allTrue is false for an empty key set so that a config without
// consistency flags never claims a consistent presentation.
func allTrue(inputs Inputs, keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !inputs.IsTrue(k) {
			return false
		}
	}
	return true
}

func anyFalseOrUnset(inputs Inputs, keys []string) bool {
	for _, k := range keys {
		if inputs.IsFalseOrUnset(k) {
			return true
		}
	}
	return false
}
