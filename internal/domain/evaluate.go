package domain

// Result is the full outcome of one evaluation.
type Result struct {
	Domain     string    `json:"domain"`
	Percentage float64   `json:"readiness_pct"`
	Missing    []string  `json:"missing"`
	Scope      Scope     `json:"scope"`
	ScopeRule  ScopeRule `json:"scope_rule"`
	ScopeLabel string    `json:"scope_label"`
	Rationale  string    `json:"rationale"`
	Tier       Tier      `json:"tier"`
	TierLabel  string    `json:"tier_label"`
	Message    string    `json:"message"`
}

// Evaluate runs readiness, scope, recommendation and message composition in
// that order. It has no side effects and returns identical results for
// identical arguments.
func Evaluate(inputs Inputs, details *Details, cfg DomainConfig) Result {
	resolved := cfg.Resolve(inputs)

	readiness := EvaluateReadiness(resolved, cfg)
	scope := ClassifyScope(resolved, cfg)
	tier := Recommend(resolved, cfg, readiness.Percentage, scope.Scope)
	msg := ComposeMessage(resolved, details, cfg, scope.Scope, tier, scope.Rationale, readiness.Missing)

	return Result{
		Domain:     cfg.Name,
		Percentage: readiness.Percentage,
		Missing:    readiness.Missing,
		Scope:      scope.Scope,
		ScopeRule:  scope.Rule,
		ScopeLabel: scope.Label,
		Rationale:  scope.Rationale,
		Tier:       tier,
		TierLabel:  cfg.TierLabels.Label(tier),
		Message:    msg,
	}
}
