package game

import (
	"fmt"
	"math"
)

// MaxCardPower is the fixed ceiling for a single card's power.
const MaxCardPower = 999

// CardPower is the non-negative strength a card contributes to a challenge.
// Arithmetic saturates at [0, MaxCardPower]; construction with out-of-range
// input fails.
type CardPower struct {
	Value int `json:"value"`
}

func NewCardPower(value float64) (CardPower, error) {
	if !isFinite(value) {
		return CardPower{}, fmt.Errorf("%w: card power must be a finite number", ErrValidation)
	}
	if value < 0 {
		return CardPower{}, fmt.Errorf("%w: card power must not be negative (got %v)", ErrValidation, value)
	}
	if value > MaxCardPower {
		return CardPower{}, fmt.Errorf("%w: card power %v exceeds maximum %d", ErrValidation, value, MaxCardPower)
	}
	return CardPower{Value: int(value)}, nil
}

// Add returns a new CardPower, clamped at the ceiling.
func (p CardPower) Add(other CardPower) CardPower {
	return CardPower{Value: clampInt(p.Value+other.Value, 0, MaxCardPower)}
}

// Increase returns a new CardPower raised by amount, clamped at the ceiling.
func (p CardPower) Increase(amount int) (CardPower, error) {
	if amount < 0 {
		return CardPower{}, fmt.Errorf("%w: increase amount must not be negative (got %d)", ErrValidation, amount)
	}
	return CardPower{Value: clampInt(p.Value+amount, 0, MaxCardPower)}, nil
}

// Decrease returns a new CardPower lowered by amount, clamped at zero.
func (p CardPower) Decrease(amount int) (CardPower, error) {
	if amount < 0 {
		return CardPower{}, fmt.Errorf("%w: decrease amount must not be negative (got %d)", ErrValidation, amount)
	}
	return CardPower{Value: clampInt(p.Value-amount, 0, MaxCardPower)}, nil
}

// Multiply returns a new CardPower scaled by factor. Fractional results are
// truncated toward zero; negative factors are a caller error.
func (p CardPower) Multiply(factor float64) (CardPower, error) {
	if !isFinite(factor) || factor < 0 {
		return CardPower{}, fmt.Errorf("%w: multiply factor must be a non-negative finite number (got %v)", ErrValidation, factor)
	}
	v := int(math.Floor(float64(p.Value) * factor))
	return CardPower{Value: clampInt(v, 0, MaxCardPower)}, nil
}

// SumCardPowers folds a collection with saturating addition. An empty
// collection yields zero.
func SumCardPowers(powers []CardPower) CardPower {
	total := CardPower{}
	for _, p := range powers {
		total = total.Add(p)
	}
	return total
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
