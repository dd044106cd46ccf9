package domain_test

import (
	"strings"
	"testing"

	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/stretchr/testify/assert"
)

func sampleDetails() *domain.Details {
	d := &domain.Details{}
	d.Add("Mechanism", "Hot oil spill while cooking")
	d.AddList("Regions", []string{"Right hand", " ", "Forearm"})
	return d
}

func TestComposeMessage_OutsideScopeRedirect(t *testing.T) {
	cfg := pathways.Burn()
	msg := domain.ComposeMessage(domain.Inputs{}, sampleDetails(), cfg,
		domain.OutsideScope, domain.TierConsiderAlternate, cfg.ScopeText.Inconsistent.Rationale,
		[]string{"Burn depth assessed"})

	want := cfg.ScopeText.Inconsistent.Rationale + " " + cfg.Message.Redirect +
		"\n\nKey details documented:\n- Mechanism: Hot oil spill while cooking\n- Regions: Right hand, Forearm" +
		"\n\nMissing elements: Burn depth assessed."
	assert.Equal(t, want, msg)
}

func TestComposeMessage_OutsideScopeSevereAlternate(t *testing.T) {
	cfg := pathways.Burn()
	in := domain.Inputs{"severe_skin_reaction_suspected": domain.Bool(true)}
	msg := domain.ComposeMessage(in, nil, cfg,
		domain.OutsideScope, domain.TierConsiderAlternate, cfg.ScopeText.Inconsistent.Rationale, nil)

	assert.Equal(t, cfg.ScopeText.Inconsistent.Rationale+" "+cfg.Message.SevereAlternate, msg)
	assert.NotContains(t, msg, cfg.Message.Redirect)
}

func TestComposeMessage_EmptyDetailsOmitsHeading(t *testing.T) {
	cfg := pathways.Burn()
	msg := domain.ComposeMessage(domain.Inputs{}, &domain.Details{}, cfg,
		domain.OutsideScope, domain.TierConsiderAlternate, cfg.ScopeText.Inconsistent.Rationale,
		[]string{"Burn depth assessed", "Tetanus status addressed"})

	assert.Contains(t, msg, cfg.Message.Redirect)
	assert.NotContains(t, msg, "Key details documented")
	assert.Contains(t, msg, "\n\nMissing elements: Burn depth assessed; Tetanus status addressed.")
}

func TestComposeMessage_WithinScopeTemplate(t *testing.T) {
	cfg := pathways.Appendicitis()
	rationale := cfg.ScopeText.Consistent.Rationale
	msg := domain.ComposeMessage(domain.Inputs{}, sampleDetails(), cfg,
		domain.WithinScope, domain.TierStrongly, rationale, []string{"CBC/WBC addressed"})

	sections := strings.Split(msg, "\n\n")
	assert.Len(t, sections, 3)
	assert.Equal(t, "Recommend: STRONGLY RECOMMEND GEN SURG CONSULT. Rationale: "+rationale, sections[0])
	assert.True(t, strings.HasPrefix(sections[1], "Key details (documented in parallel):\n- Mechanism:"))
	assert.Equal(t, "Missing items to make consult higher-yield: CBC/WBC addressed.", sections[2])
}

func TestComposeMessage_NothingToAppend(t *testing.T) {
	cfg := pathways.Burn()
	msg := domain.ComposeMessage(domain.Inputs{}, nil, cfg,
		domain.WithinScope, domain.TierConsultNow, "Because.", nil)
	assert.Equal(t, "Recommend: CONSULT BURN NOW. Rationale: Because.", msg)
}

func TestComposeMessage_TruncatesMissingToCap(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	burn := domain.ComposeMessage(domain.Inputs{}, nil, pathways.Burn(),
		domain.WithinScope, domain.TierLow, "r", missing)
	assert.True(t, strings.HasSuffix(burn, ": a; b; c; d; e."))

	appx := domain.ComposeMessage(domain.Inputs{}, nil, pathways.Appendicitis(),
		domain.WithinScope, domain.TierLow, "r", missing)
	assert.True(t, strings.HasSuffix(appx, ": a; b; c; d; e; f."))
}

func TestComposeMessage_DefaultsForBareConfig(t *testing.T) {
	cfg := domain.DomainConfig{Name: "bare"}
	missing := []string{"1", "2", "3", "4", "5", "6"}
	msg := domain.ComposeMessage(domain.Inputs{}, nil, cfg,
		domain.OutsideScope, domain.TierConsiderAlternate, "", missing)

	assert.True(t, strings.HasPrefix(msg, "Consider redirecting"), "empty rationale is dropped")
	assert.True(t, strings.HasSuffix(msg, "Missing elements: 1; 2; 3; 4; 5."), "default cap is %d", domain.DefaultMissingCap)
}

func TestComposeMessage_Idempotent(t *testing.T) {
	cfg := pathways.Burn()
	compose := func() string {
		return domain.ComposeMessage(domain.Inputs{}, sampleDetails(), cfg,
			domain.WithinScope, domain.TierStrongly, "r", []string{"x"})
	}
	assert.Equal(t, compose(), compose())
}
