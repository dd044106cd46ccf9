package domain_test

import (
	"testing"

	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/stretchr/testify/assert"
)

func TestRecommend_DecisionTable(t *testing.T) {
	cfg := pathways.Burn()
	highRisk := domain.Inputs{"inhalation_injury_suspected": domain.Bool(true)}
	location := domain.Inputs{"face_involved": domain.Bool(true)}
	none := domain.Inputs{}

	tests := []struct {
		name   string
		inputs domain.Inputs
		pct    float64
		scope  domain.Scope
		want   domain.Tier
	}{
		{"outside wins over high risk", highRisk, 100, domain.OutsideScope, domain.TierConsiderAlternate},
		{"outside wins over location", location, 100, domain.OutsideScope, domain.TierConsiderAlternate},
		{"high risk within", highRisk, 0, domain.WithinScope, domain.TierConsultNow},
		{"location within", location, 10, domain.WithinScope, domain.TierConsultNow},
		{"location uncertain", location, 10, domain.Uncertain, domain.TierConsultNow},
		{"within at threshold", none, 70, domain.WithinScope, domain.TierStrongly},
		{"within below threshold", none, 69.9, domain.WithinScope, domain.TierLow},
		{"uncertain", none, 100, domain.Uncertain, domain.TierConsiderAlternate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Recommend(tt.inputs, cfg, tt.pct, tt.scope))
		})
	}
}

func TestRecommend_ThresholdIsConfigurable(t *testing.T) {
	burn, appx := pathways.Burn(), pathways.Appendicitis()
	assert.Equal(t, domain.TierLow, domain.Recommend(domain.Inputs{}, burn, 62.5, domain.WithinScope))
	assert.Equal(t, domain.TierStrongly, domain.Recommend(domain.Inputs{}, appx, 62.5, domain.WithinScope))
}

func TestRecommend_MonotonicAcrossThreshold(t *testing.T) {
	cfg := pathways.Burn()
	inputs := []domain.Inputs{
		{},
		{"face_involved": domain.Bool(true)},
		{"chemical_agent_known_if_chemical": domain.Bool(true)},
	}
	scopes := []domain.Scope{domain.WithinScope, domain.OutsideScope, domain.Uncertain}

	for _, in := range inputs {
		for _, s := range scopes {
			prev := -1
			for pct := 0.0; pct <= 100; pct += 0.5 {
				u := domain.Recommend(in, cfg, pct, s).Urgency()
				assert.GreaterOrEqual(t, u, prev, "scope %s pct %.1f", s, pct)
				prev = u
			}
		}
	}
}

func TestTier_Urgency(t *testing.T) {
	assert.Less(t, domain.TierConsiderAlternate.Urgency(), domain.TierLow.Urgency())
	assert.Less(t, domain.TierLow.Urgency(), domain.TierStrongly.Urgency())
	assert.Less(t, domain.TierStrongly.Urgency(), domain.TierConsultNow.Urgency())
}

func TestTierLabels_FallBackToTierValue(t *testing.T) {
	var labels domain.TierLabels
	assert.Equal(t, "CONSULT_NOW", labels.Label(domain.TierConsultNow))
	assert.Equal(t, "STRONGLY RECOMMEND GEN SURG CONSULT", pathways.Appendicitis().TierLabels.Label(domain.TierStrongly))
}
