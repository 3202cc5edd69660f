package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCardPower_Validation(t *testing.T) {
	_, err := NewCardPower(-1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewCardPower(1000)
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewCardPower(math.NaN())
	require.ErrorIs(t, err, ErrValidation)

	p, err := NewCardPower(999)
	require.NoError(t, err)
	require.Equal(t, 999, p.Value)
}

func TestSumCardPowers_SaturatesAtCeiling(t *testing.T) {
	one, err := NewCardPower(1)
	require.NoError(t, err)

	powers := make([]CardPower, 1000)
	for i := range powers {
		powers[i] = one
	}
	require.Equal(t, MaxCardPower, SumCardPowers(powers).Value)
	require.Equal(t, 0, SumCardPowers(nil).Value)
}

func TestCardPower_Arithmetic(t *testing.T) {
	p, _ := NewCardPower(500)

	sum := p.Add(p)
	require.Equal(t, 999, sum.Value)
	require.Equal(t, 500, p.Value)

	down, err := p.Decrease(600)
	require.NoError(t, err)
	require.Equal(t, 0, down.Value)

	up, err := p.Increase(600)
	require.NoError(t, err)
	require.Equal(t, 999, up.Value)

	_, err = p.Increase(-1)
	require.ErrorIs(t, err, ErrValidation)
	_, err = p.Decrease(-1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCardPower_MultiplyTruncates(t *testing.T) {
	p, _ := NewCardPower(7)

	half, err := p.Multiply(0.5)
	require.NoError(t, err)
	require.Equal(t, 3, half.Value)

	big, err := p.Multiply(1000)
	require.NoError(t, err)
	require.Equal(t, 999, big.Value)

	_, err = p.Multiply(-1)
	require.ErrorIs(t, err, ErrValidation)
	_, err = p.Multiply(math.Inf(1))
	require.ErrorIs(t, err, ErrValidation)
}
