package domain

// ChecklistItem is one required item and whether it is documented.
type ChecklistItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Checklist is the per-item readiness breakdown for an intake.
type Checklist struct {
	Domain    string          `json:"domain"`
	Items     []ChecklistItem `json:"items"`
	Readiness Readiness       `json:"readiness"`
}

// BuildChecklist resolves derived flags and lists every required key in the
// order readiness counts them.
func BuildChecklist(inputs Inputs, cfg DomainConfig) Checklist {
	resolved := cfg.Resolve(inputs)
	keys := cfg.RequiredKeys(resolved)
	items := make([]ChecklistItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, ChecklistItem{Key: k, Label: cfg.Label(k), Done: resolved.IsTrue(k)})
	}
	return Checklist{
		Domain:    cfg.Name,
		Items:     items,
		Readiness: EvaluateReadiness(resolved, cfg),
	}
}
