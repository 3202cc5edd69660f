package game

import (
	"fmt"
	"math"
)

// MaxInsurancePremium is the fixed ceiling for any premium amount.
const MaxInsurancePremium = 99

// InsurancePremium is the per-turn cost of holding an insurance card.
// Like the other bounded types it saturates at its range instead of failing:
// a premium can never exceed MaxInsurancePremium no matter how many cards
// are stacked together.
type InsurancePremium struct {
	Value int `json:"value"`
}

func NewInsurancePremium(value float64) (InsurancePremium, error) {
	if !isFinite(value) {
		return InsurancePremium{}, fmt.Errorf("%w: premium must be a finite number", ErrValidation)
	}
	if value < 0 {
		return InsurancePremium{}, fmt.Errorf("%w: premium must not be negative (got %v)", ErrValidation, value)
	}
	if value > MaxInsurancePremium {
		return InsurancePremium{}, fmt.Errorf("%w: premium %v exceeds maximum %d", ErrValidation, value, MaxInsurancePremium)
	}
	return InsurancePremium{Value: int(value)}, nil
}

// ClampPremium builds a premium from an unbounded computation result,
// clamping into [0, MaxInsurancePremium]. Calculators use it so their
// multiplicative pile-ups saturate rather than fail.
func ClampPremium(value float64) InsurancePremium {
	if !isFinite(value) || value < 0 {
		return InsurancePremium{}
	}
	v := int(math.Floor(value))
	return InsurancePremium{Value: clampInt(v, 0, MaxInsurancePremium)}
}

// Add returns a new premium, clamped at the ceiling.
func (p InsurancePremium) Add(other InsurancePremium) InsurancePremium {
	return InsurancePremium{Value: clampInt(p.Value+other.Value, 0, MaxInsurancePremium)}
}

// Multiply returns a new premium scaled by factor, truncated and clamped.
// Negative factors are a caller error.
func (p InsurancePremium) Multiply(factor float64) (InsurancePremium, error) {
	if !isFinite(factor) || factor < 0 {
		return InsurancePremium{}, fmt.Errorf("%w: multiply factor must be a non-negative finite number (got %v)", ErrValidation, factor)
	}
	v := int(math.Floor(float64(p.Value) * factor))
	return InsurancePremium{Value: clampInt(v, 0, MaxInsurancePremium)}, nil
}

// ApplyDiscount returns a new premium reduced by rate, where rate is a
// fraction in [0,1]. The result is truncated toward zero.
func (p InsurancePremium) ApplyDiscount(rate float64) (InsurancePremium, error) {
	if !isFinite(rate) || rate < 0 || rate > 1 {
		return InsurancePremium{}, fmt.Errorf("%w: discount rate must be in [0,1] (got %v)", ErrValidation, rate)
	}
	v := int(math.Floor(float64(p.Value) * (1 - rate)))
	return InsurancePremium{Value: clampInt(v, 0, MaxInsurancePremium)}, nil
}

// SumPremiums folds a collection with saturating addition; the result never
// exceeds MaxInsurancePremium. An empty collection yields zero.
func SumPremiums(premiums []InsurancePremium) InsurancePremium {
	total := InsurancePremium{}
	for _, p := range premiums {
		total = total.Add(p)
	}
	return total
}
