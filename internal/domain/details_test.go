package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/consultready/consultready/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails_SkipsBlankValues(t *testing.T) {
	var d domain.Details
	d.Add("Mechanism", "  ")
	d.Add("", "value")
	d.AddList("Regions", []string{" ", ""})
	assert.Zero(t, d.Len())
}

func TestDetails_PreservesInsertionOrder(t *testing.T) {
	var d domain.Details
	d.Add("Vitals", "HR 110")
	d.Add("Mechanism", "Scald")
	d.Add("Vitals", "HR 96")

	assert.Equal(t, []domain.Detail{
		{Label: "Vitals", Value: "HR 96"},
		{Label: "Mechanism", Value: "Scald"},
	}, d.Entries())

	v, ok := d.Get("Vitals")
	assert.True(t, ok)
	assert.Equal(t, "HR 96", v)
}

func TestDetails_NilSafe(t *testing.T) {
	var d *domain.Details
	assert.Zero(t, d.Len())
	assert.Nil(t, d.Entries())
	_, ok := d.Get("x")
	assert.False(t, ok)
}

func TestDetails_JSON(t *testing.T) {
	var d domain.Details
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	d.AddList("Regions", []string{"Face", "Neck"})
	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label":"Regions","value":"Face, Neck"}]`, string(b))
}
