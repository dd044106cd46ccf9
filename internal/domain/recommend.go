package domain

// Tier is the recommended action level for requesting the specialist.
type Tier string

const (
	TierConsiderAlternate Tier = "CONSIDER_ALTERNATE_SERVICE"
	TierLow               Tier = "LOW_RECOMMENDATION"
	TierStrongly          Tier = "STRONGLY_RECOMMEND_CONSULT"
	TierConsultNow        Tier = "CONSULT_NOW"
)

// Urgency ranks tiers from least (0) to most (3) urgent.
func (t Tier) Urgency() int {
	switch t {
	case TierLow:
		return 1
	case TierStrongly:
		return 2
	case TierConsultNow:
		return 3
	default:
		return 0
	}
}

// Label returns the pathway's display text for t.
func (l TierLabels) Label(t Tier) string {
	var s string
	switch t {
	case TierConsiderAlternate:
		s = l.ConsiderAlternate
	case TierLow:
		s = l.Low
	case TierStrongly:
		s = l.Strongly
	case TierConsultNow:
		s = l.ConsultNow
	}
	if s == "" {
		return string(t)
	}
	return s
}

// Recommend derives the tier from readiness, scope and the risk flags.
func Recommend(inputs Inputs, cfg DomainConfig, readinessPct float64, scope Scope) Tier {
	switch {
	case scope == OutsideScope:
		return TierConsiderAlternate
	case inputs.AnyTrue(cfg.HighRiskFlags) || inputs.AnyTrue(cfg.HighRiskLocationFlags):
		return TierConsultNow
	case scope == WithinScope && readinessPct >= cfg.ReadinessThreshold:
		return TierStrongly
	case scope == WithinScope:
		return TierLow
	default:
		return TierConsiderAlternate
	}
}
