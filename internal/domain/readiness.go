package domain

import "math"

// Readiness is the documentation-completeness outcome.
type Readiness struct {
	Percentage float64  `json:"percentage"`
	Missing    []string `json:"missing"`
	Required   int      `json:"required"`
	Done       int      `json:"done"`
}

// RequiredKeys returns the core required keys followed by every conditional
// key whose discriminator matches, in declaration order and without duplicates.
func (c DomainConfig) RequiredKeys(inputs Inputs) []string {
	seen := make(map[string]bool, len(c.Required))
	keys := make([]string, 0, len(c.Required))
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	for _, k := range c.Required {
		add(k)
	}
	for _, cond := range c.Conditional {
		token, isEnum := inputs[cond.Discriminator].Token()
		if !isEnum || token != cond.Equals {
			continue
		}
		for _, k := range cond.Keys {
			add(k)
		}
	}
	return keys
}

// EvaluateReadiness scores how much of the required documentation is
// explicitly marked true. False, NotApplicable, absent and non-boolean
// values all count as not done.
func EvaluateReadiness(inputs Inputs, cfg DomainConfig) Readiness {
	required := cfg.RequiredKeys(inputs)

	r := Readiness{Required: len(required), Missing: []string{}}
	for _, k := range required {
		if inputs.IsTrue(k) {
			r.Done++
			continue
		}
		r.Missing = append(r.Missing, cfg.Label(k))
	}

	if r.Required == 0 {
		return r
	}
	r.Percentage = roundTo1(100 * float64(r.Done) / float64(r.Required))
	return r
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
