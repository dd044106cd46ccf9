package tui_test

import (
	"strings"
	"testing"

	"github.com/consultready/consultready/internal/adapters/outbound/tui"
	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/stretchr/testify/assert"
)

func sampleResult() domain.Result {
	cfg := pathways.Burn()
	in := domain.Inputs{
		"mechanism_type":       domain.Enum(pathways.MechanismScald),
		"mechanism_documented": domain.Bool(true),
	}
	details := &domain.Details{}
	details.Add("Mechanism", "Scald from kettle")
	return domain.Evaluate(in, details, cfg)
}

func TestRenderEvaluation_ContainsHeader(t *testing.T) {
	res := sampleResult()
	output := tui.RenderEvaluation(res, "Burn Consult Readiness")
	assert.Contains(t, output, "Burn Consult Readiness")
	assert.Contains(t, output, res.TierLabel)
	assert.Contains(t, output, res.ScopeLabel)
	assert.Contains(t, output, "ready")
}

func TestRenderEvaluation_ListsMissing(t *testing.T) {
	res := sampleResult()
	output := tui.RenderEvaluation(res, "")
	assert.Contains(t, output, "Missing")
	for _, m := range res.Missing {
		assert.Contains(t, output, m)
	}
}

func TestRenderEvaluation_MessageIsVerbatim(t *testing.T) {
	res := sampleResult()
	output := tui.RenderEvaluation(res, "")
	assert.True(t, strings.Contains(output, res.Message), "message must be copyable unchanged")
}

func TestRenderEvaluation_NoMissingSectionWhenComplete(t *testing.T) {
	res := domain.Result{Domain: "burn", Percentage: 100, TierLabel: "X", Message: "Recommend: X."}
	output := tui.RenderEvaluation(res, "")
	assert.NotContains(t, output, "Missing")
}
