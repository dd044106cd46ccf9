package pathways_test

import (
	"testing"

	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/pathways"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cfg := range pathways.All() {
		require.False(t, seen[cfg.Name], cfg.Name)
		seen[cfg.Name] = true
		assert.NoError(t, cfg.Validate())
	}
	assert.Len(t, seen, 2)
}

func TestBurn_RequiredFieldsHaveLabels(t *testing.T) {
	for _, cfg := range pathways.All() {
		for _, k := range cfg.Required {
			f, ok := cfg.Field(k)
			require.True(t, ok, "%s: %s", cfg.Name, k)
			assert.NotEmpty(t, f.Label, "%s: %s", cfg.Name, k)
			assert.Equal(t, domain.FieldBool, f.Kind)
		}
	}
}

func TestBurn_Parameters(t *testing.T) {
	cfg := pathways.Burn()
	assert.Equal(t, 70.0, cfg.ReadinessThreshold)
	assert.Equal(t, 5, cfg.MissingCap)
	assert.Len(t, cfg.Required, 10)
	assert.Contains(t, cfg.HighRiskFlags, "major_tbsa")
}

func TestAppendicitis_Parameters(t *testing.T) {
	cfg := pathways.Appendicitis()
	assert.Equal(t, 60.0, cfg.ReadinessThreshold)
	assert.Equal(t, 6, cfg.MissingCap)
	assert.Len(t, cfg.Required, 8)
	assert.Empty(t, cfg.HighRiskLocationFlags)
}
