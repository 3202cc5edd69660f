package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiskFactor_Validation(t *testing.T) {
	_, err := NewRiskFactor(0.5, "weather")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewRiskFactor(-0.1, RiskAge)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewRiskFactor(1.1, RiskAge)
	require.ErrorIs(t, err, ErrValidation)

	f, err := NewRiskFactor(1, RiskHealth)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.Value)
}

func TestRiskProfile_WithFactorIsImmutable(t *testing.T) {
	base := NewRiskProfile()
	age, _ := NewRiskFactor(0.4, RiskAge)

	next := base.WithFactor(age)
	_, ok := base.Factor(RiskAge)
	assert.False(t, ok, "original profile must be unchanged")

	got, ok := next.Factor(RiskAge)
	require.True(t, ok)
	assert.Equal(t, 0.4, got.Value)

	// replacing a factor of the same type keeps one entry
	older, _ := NewRiskFactor(0.8, RiskAge)
	replaced := next.WithFactor(older)
	got, _ = replaced.Factor(RiskAge)
	assert.Equal(t, 0.8, got.Value)
	assert.Len(t, replaced.Factors, 1)
}

func TestRiskProfile_PremiumMultiplier(t *testing.T) {
	p := NewRiskProfile()
	assert.Equal(t, 1.0, p.PremiumMultiplier())

	age, _ := NewRiskFactor(0.4, RiskAge)
	health, _ := NewRiskFactor(1.0, RiskHealth)
	p = p.WithFactor(age).WithFactor(health)

	// (1 + 0.4/2) * (1 + 1.0/2)
	assert.InDelta(t, 1.2*1.5, p.PremiumMultiplier(), 1e-9)
}
