package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPhase(t *testing.T) {
	allowed := []struct{ from, to Phase }{
		{PhasePreparation, PhaseDraw},
		{PhaseDraw, PhaseChallenge},
		{PhaseChallenge, PhaseCardSelection},
		{PhaseChallenge, PhaseInsuranceTypeSelection},
		{PhaseChallenge, PhaseResolution},
		{PhaseCardSelection, PhaseResolution},
		{PhaseInsuranceTypeSelection, PhaseResolution},
		{PhaseResolution, PhaseDraw},
	}
	for _, tc := range allowed {
		assert.NoError(t, TransitionPhase(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to Phase }{
		{PhaseDraw, PhaseResolution},
		{PhasePreparation, PhaseChallenge},
		{PhaseResolution, PhaseChallenge},
		{PhaseCardSelection, PhaseDraw},
		{PhaseDraw, PhaseDraw},
	}
	for _, tc := range denied {
		err := TransitionPhase(tc.from, tc.to)
		require.ErrorIs(t, err, ErrInvalidPhaseTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionPhase_UnknownPhase(t *testing.T) {
	err := TransitionPhase("limbo", PhaseDraw)
	require.ErrorIs(t, err, ErrUnknownPhase)
	require.NotErrorIs(t, err, ErrInvalidPhaseTransition)

	err = TransitionPhase(PhaseDraw, "limbo")
	require.ErrorIs(t, err, ErrUnknownPhase)
}

func TestPhase_Capabilities(t *testing.T) {
	assert.True(t, PhaseDraw.CanStartChallenge())
	assert.False(t, PhaseChallenge.CanStartChallenge())

	assert.True(t, PhaseChallenge.CanResolveChallenge())
	assert.False(t, PhaseDraw.CanResolveChallenge())

	assert.True(t, PhaseDraw.CanSelectCards())
	assert.True(t, PhaseChallenge.CanSelectCards())
	assert.True(t, PhaseCardSelection.CanSelectCards())
	assert.False(t, PhaseResolution.CanSelectCards())

	assert.True(t, PhaseResolution.CanEndTurn())
	assert.False(t, PhaseDraw.CanEndTurn())
}

func TestPhase_ValidActions(t *testing.T) {
	assert.Contains(t, PhaseDraw.ValidActions(), "start_challenge")
	assert.Contains(t, PhaseResolution.ValidActions(), "next_turn")
	assert.Nil(t, Phase("limbo").ValidActions())
}
