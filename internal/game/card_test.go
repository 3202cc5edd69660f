package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard_Validation(t *testing.T) {
	_, err := NewCard("", CardTypeLife, 3, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewCard("Mystery", "mystery", 3, 0)
	require.ErrorIs(t, err, ErrInvalidCardType)

	_, err = NewCard("Bad Power", CardTypeLife, -3, 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewCard("Bad Cost", CardTypeLife, 3, -1)
	require.ErrorIs(t, err, ErrValidation)

	c, err := NewCard("Morning Walk", CardTypeLife, 3, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 3, c.Power.Value)
}

func TestCard_WithInsurance(t *testing.T) {
	life, _ := NewCard("Morning Walk", CardTypeLife, 3, 0)
	_, err := life.WithInsurance(InsuranceDetails{InsuranceType: InsuranceMedical, DurationType: DurationTerm, RemainingTurns: 10})
	require.ErrorIs(t, err, ErrInvalidCardType)

	ins, _ := NewCard("Medical Cover", CardTypeInsurance, 5, 4)

	_, err = ins.WithInsurance(InsuranceDetails{InsuranceType: InsuranceMedical, DurationType: "forever"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = ins.WithInsurance(InsuranceDetails{InsuranceType: InsuranceMedical, DurationType: DurationTerm, RemainingTurns: 0})
	require.ErrorIs(t, err, ErrValidation)

	_, err = ins.WithInsurance(InsuranceDetails{InsuranceType: InsuranceMedical, DurationType: DurationTerm, RemainingTurns: 10, Coverage: -1})
	require.ErrorIs(t, err, ErrValidation)

	whole, err := ins.WithInsurance(InsuranceDetails{InsuranceType: InsuranceLife, DurationType: DurationWholeLife, RemainingTurns: 7, Coverage: 30})
	require.NoError(t, err)
	require.True(t, whole.IsInsurance())
	assert.Equal(t, 0, whole.Insurance.RemainingTurns, "whole-life cover carries no turn counter")
	assert.Nil(t, ins.Insurance, "receiver must not be mutated")
}

func TestCard_DecrementRemainingTurns(t *testing.T) {
	life, _ := NewCard("Morning Walk", CardTypeLife, 3, 0)
	_, _, err := life.DecrementRemainingTurns()
	require.ErrorIs(t, err, ErrInvalidCardType)

	base, _ := NewCard("Medical Cover", CardTypeInsurance, 5, 4)
	term, err := base.WithInsurance(InsuranceDetails{InsuranceType: InsuranceMedical, DurationType: DurationTerm, RemainingTurns: 2, Coverage: 20})
	require.NoError(t, err)

	next, expired, err := term.DecrementRemainingTurns()
	require.NoError(t, err)
	assert.False(t, expired)
	assert.Equal(t, 1, next.Insurance.RemainingTurns)
	assert.Equal(t, 2, term.Insurance.RemainingTurns, "original card must be unchanged")

	last, expired, err := next.DecrementRemainingTurns()
	require.NoError(t, err)
	assert.True(t, expired)
	assert.Equal(t, 0, last.Insurance.RemainingTurns)

	whole, _ := base.WithInsurance(InsuranceDetails{InsuranceType: InsuranceLife, DurationType: DurationWholeLife, Coverage: 30})
	for i := 0; i < 5; i++ {
		var err error
		whole, expired, err = whole.DecrementRemainingTurns()
		require.NoError(t, err)
		assert.False(t, expired, "whole-life cover never lapses by turns")
	}
}

func TestCard_WithDreamAndEffects(t *testing.T) {
	life, _ := NewCard("Morning Walk", CardTypeLife, 3, 0)
	_, err := life.WithDream(DreamDetails{Category: DreamPhysical})
	require.ErrorIs(t, err, ErrInvalidCardType)

	dream, _ := NewCard("Run a Marathon", CardTypeDream, 0, 0)
	d, err := dream.WithDream(DreamDetails{Category: DreamPhysical})
	require.NoError(t, err)
	assert.Equal(t, DreamPhysical, d.Dream.Category)
	assert.True(t, d.IsChallengeLike())

	withFx := life.WithEffects([]CardEffect{
		{Type: EffectShield, Value: 2},
		{Type: EffectTurnHeal, Value: 1},
		{Type: EffectShield, Value: 3},
	})
	assert.Equal(t, 5.0, withFx.EffectTotal(EffectShield))
	assert.Equal(t, 1.0, withFx.EffectTotal(EffectTurnHeal))
	assert.Equal(t, 0.0, withFx.EffectTotal(EffectDamageReduction))
	assert.Empty(t, life.Effects)
}
