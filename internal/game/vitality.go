package game

import (
	"fmt"
	"math"
)

// Vitality is the player's life total. The maximum is not fixed: stage
// transitions shrink the ceiling as the character ages, so it travels with
// the value. All arithmetic returns a new instance and saturates at the
// bounds instead of failing; only genuinely invalid inputs are errors.
type Vitality struct {
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// NewVitality validates and builds a Vitality. Negative, non-finite or
// out-of-range inputs fail.
func NewVitality(value, max float64) (Vitality, error) {
	if !isFinite(value) || !isFinite(max) {
		return Vitality{}, fmt.Errorf("%w: vitality must be a finite number", ErrValidation)
	}
	if max <= 0 {
		return Vitality{}, fmt.Errorf("%w: max vitality must be positive (got %v)", ErrValidation, max)
	}
	if value < 0 {
		return Vitality{}, fmt.Errorf("%w: vitality must not be negative (got %v)", ErrValidation, value)
	}
	if value > max {
		return Vitality{}, fmt.Errorf("%w: vitality %v exceeds max %v", ErrValidation, value, max)
	}
	return Vitality{Value: value, Max: max}, nil
}

// Increase returns a new Vitality raised by amount, clamped at Max.
func (v Vitality) Increase(amount float64) (Vitality, error) {
	if !isFinite(amount) || amount < 0 {
		return Vitality{}, fmt.Errorf("%w: increase amount must be a non-negative finite number (got %v)", ErrValidation, amount)
	}
	return Vitality{Value: math.Min(v.Value+amount, v.Max), Max: v.Max}, nil
}

// Decrease returns a new Vitality lowered by amount, clamped at zero.
func (v Vitality) Decrease(amount float64) (Vitality, error) {
	if !isFinite(amount) || amount < 0 {
		return Vitality{}, fmt.Errorf("%w: decrease amount must be a non-negative finite number (got %v)", ErrValidation, amount)
	}
	return Vitality{Value: math.Max(v.Value-amount, 0), Max: v.Max}, nil
}

// WithMaxVitality returns a new instance under a different ceiling. The
// current value is clamped to the new maximum, which is how stage
// transitions shrink vitality without ever producing an out-of-range value.
func (v Vitality) WithMaxVitality(newMax float64) (Vitality, error) {
	if !isFinite(newMax) || newMax <= 0 {
		return Vitality{}, fmt.Errorf("%w: max vitality must be a positive finite number (got %v)", ErrValidation, newMax)
	}
	return Vitality{Value: math.Min(v.Value, newMax), Max: newMax}, nil
}

func (v Vitality) IsDepleted() bool { return v.Value <= 0 }

func (v Vitality) IsFull() bool { return v.Value >= v.Max }

// Percentage reports the fill ratio in [0,100] for display purposes.
func (v Vitality) Percentage() float64 {
	if v.Max == 0 {
		return 0
	}
	return v.Value / v.Max * 100
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
