package game

import "fmt"

// RiskFactorType classifies what a risk factor measures.
type RiskFactorType string

const (
	RiskAge       RiskFactorType = "age"
	RiskHealth    RiskFactorType = "health"
	RiskClaims    RiskFactorType = "claims"
	RiskLifestyle RiskFactorType = "lifestyle"
)

func (t RiskFactorType) Valid() bool {
	switch t {
	case RiskAge, RiskHealth, RiskClaims, RiskLifestyle:
		return true
	}
	return false
}

// RiskFactor is a normalized risk score in [0,1] of a given type.
type RiskFactor struct {
	Value float64        `json:"value"`
	Type  RiskFactorType `json:"type"`
}

func NewRiskFactor(value float64, t RiskFactorType) (RiskFactor, error) {
	if !t.Valid() {
		return RiskFactor{}, fmt.Errorf("%w: unknown risk factor type %q", ErrValidation, t)
	}
	if !isFinite(value) || value < 0 || value > 1 {
		return RiskFactor{}, fmt.Errorf("%w: risk factor value must be in [0,1] (got %v)", ErrValidation, value)
	}
	return RiskFactor{Value: value, Type: t}, nil
}

// RiskProfile maps factor types to their current scores. It is immutable:
// WithFactor copies the underlying map and returns a new profile.
type RiskProfile struct {
	Factors map[RiskFactorType]RiskFactor `json:"factors"`
}

func NewRiskProfile() RiskProfile {
	return RiskProfile{Factors: map[RiskFactorType]RiskFactor{}}
}

// WithFactor returns a new profile with the given factor set, replacing any
// existing factor of the same type.
func (p RiskProfile) WithFactor(f RiskFactor) RiskProfile {
	factors := make(map[RiskFactorType]RiskFactor, len(p.Factors)+1)
	for k, v := range p.Factors {
		factors[k] = v
	}
	factors[f.Type] = f
	return RiskProfile{Factors: factors}
}

// Factor looks up the factor of the given type.
func (p RiskProfile) Factor(t RiskFactorType) (RiskFactor, bool) {
	f, ok := p.Factors[t]
	return f, ok
}

// PremiumMultiplier aggregates all factors into a single multiplier.
// Each factor contributes (1 + value/2) multiplicatively, so an empty
// profile yields exactly 1.0.
func (p RiskProfile) PremiumMultiplier() float64 {
	m := 1.0
	for _, f := range p.Factors {
		m *= 1 + f.Value/2
	}
	return m
}
