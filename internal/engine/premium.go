package engine

import (
	"fmt"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

// RiskTolerance is the budget-recommendation persona.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceBalanced     RiskTolerance = "balanced"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

func ageFactor(stage game.Stage) float64 {
	switch stage {
	case game.StageMiddle:
		return AgeFactorMiddle
	case game.StageFulfillment:
		return AgeFactorFulfillment
	default:
		// Unknown stages fall back to the neutral factor rather than failing.
		return 1.0
	}
}

func typeFactor(t game.InsuranceType) float64 {
	if t == game.InsuranceMedical {
		return MedicalTypeFactor
	}
	return 1.0
}

func coverageFactor(coverage float64) float64 {
	f := coverage / CoverageDivisor
	if f < CoverageFactorFloor {
		return CoverageFactorFloor
	}
	return f
}

// AgeAdjustedPremium applies only the stage factor to the card's base cost.
func AgeAdjustedPremium(card game.Card, stage game.Stage) (game.InsurancePremium, error) {
	if !card.IsInsurance() {
		return game.InsurancePremium{}, fmt.Errorf("%w: premium calculation requires an insurance card, got %s", game.ErrInvalidCardType, card.Type)
	}
	return game.ClampPremium(card.Cost * ageFactor(stage)), nil
}

// ComprehensivePremium layers the age, insurance-type and coverage
// adjustments multiplicatively on the card's base cost.
func ComprehensivePremium(card game.Card, stage game.Stage) (game.InsurancePremium, error) {
	if !card.IsInsurance() {
		return game.InsurancePremium{}, fmt.Errorf("%w: premium calculation requires an insurance card, got %s", game.ErrInvalidCardType, card.Type)
	}
	cost := card.Cost * ageFactor(stage) * typeFactor(card.Insurance.InsuranceType) * coverageFactor(card.Insurance.Coverage)
	return game.ClampPremium(cost), nil
}

// RenewalPremium prices a renewal given the card's usage history. Claim-free
// history earns a continuity discount down to a floor; frequent claims past
// the threshold convert to a surcharge instead.
func RenewalPremium(card game.Card, stage game.Stage, usageCount int) (game.InsurancePremium, error) {
	base, err := ComprehensivePremium(card, stage)
	if err != nil {
		return game.InsurancePremium{}, err
	}
	if usageCount < 0 {
		return game.InsurancePremium{}, fmt.Errorf("%w: usage count must not be negative (got %d)", game.ErrValidation, usageCount)
	}
	if usageCount > RenewalSurchargeAfter {
		return base.Multiply(1 + RenewalSurchargeStep*float64(usageCount-RenewalSurchargeAfter))
	}
	discount := RenewalDiscountStep * float64(usageCount)
	if discount > RenewalDiscountCap {
		discount = RenewalDiscountCap
	}
	return base.ApplyDiscount(discount)
}

// riskWeight says how strongly a factor type bears on an insurance type.
// Age risk hits age-sensitive products (pension, life) hardest; health risk
// hits medical; lifestyle hits disability. Everything else gets a mild
// baseline weight.
func riskWeight(factor game.RiskFactorType, insurance game.InsuranceType) float64 {
	switch factor {
	case game.RiskAge:
		if insurance == game.InsurancePension || insurance == game.InsuranceLife {
			return 0.5
		}
	case game.RiskHealth:
		if insurance == game.InsuranceMedical {
			return 0.5
		}
	case game.RiskLifestyle:
		if insurance == game.InsuranceDisability {
			return 0.4
		}
	case game.RiskClaims:
		return 0.3
	}
	return 0.2
}

// RiskAdjustedPremium applies the profile's factors on top of the
// comprehensive premium. Each factor contributes (1 + value*weight)
// multiplicatively; the bounded premium type clamps the result.
func RiskAdjustedPremium(card game.Card, stage game.Stage, profile game.RiskProfile) (game.InsurancePremium, error) {
	base, err := ComprehensivePremium(card, stage)
	if err != nil {
		return game.InsurancePremium{}, err
	}
	m := 1.0
	for _, f := range profile.Factors {
		m *= 1 + f.Value*riskWeight(f.Type, card.Insurance.InsuranceType)
	}
	return base.Multiply(m)
}

// TotalBurden sums the comprehensive premiums of all active insurance, then
// applies the continuous count penalty: holding more than
// BurdenPenaltyFreeCount cards scales the total by 10% per extra card.
// The same curve is used everywhere burden appears (challenge power and
// display), per the single-policy rule.
func TotalBurden(insurances []game.Card, stage game.Stage) (game.InsurancePremium, error) {
	premiums := make([]game.InsurancePremium, 0, len(insurances))
	for _, c := range insurances {
		p, err := ComprehensivePremium(c, stage)
		if err != nil {
			return game.InsurancePremium{}, err
		}
		premiums = append(premiums, p)
	}
	total := game.SumPremiums(premiums)
	if n := len(insurances); n > BurdenPenaltyFreeCount {
		return total.Multiply(1 + BurdenPenaltyRate*float64(n-BurdenPenaltyFreeCount))
	}
	return total, nil
}

// BudgetRecommendation returns the recommended total insurance budget as a
// fixed share of current vitality by persona: 15% conservative, 25%
// balanced, 35% aggressive. Unknown personas get the balanced share.
func BudgetRecommendation(vitality game.Vitality, tolerance RiskTolerance) float64 {
	share := 0.25
	switch tolerance {
	case ToleranceConservative:
		share = 0.15
	case ToleranceAggressive:
		share = 0.35
	}
	return vitality.Value * share
}
