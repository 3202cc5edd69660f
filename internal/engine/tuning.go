package engine

// Gameplay tuning. These are rules parameters, not balance tables: content
// numbers (card power/cost) come from the config catalog.
const (
	StartingHandSize = 5
	MaxHandSize      = 7

	// Stage boundaries by turn number. Surviving past the fulfillment
	// stage wins the game.
	StageMiddleStartTurn      = 8
	StageFulfillmentStartTurn = 15
	VictoryTurn               = 22

	MaxVitalityYouth       = 100.0
	MaxVitalityMiddle      = 80.0
	MaxVitalityFulfillment = 60.0

	// Insurance trigger thresholds.
	HeavyDamageThreshold = 10.0
	ReducedClaimDamage   = 1.0
	ReviveVitality       = 10.0
	AgingStreakCount     = 3

	// Challenge difficulty shifts by dream category once past youth.
	DreamPhysicalAgePenalty   = 3
	DreamIntellectualAgeBonus = 2
	MinRequiredPower          = 1
	SuccessHealDivisor        = 2
	DreamDeclinePenalty       = 2

	// Damage reduction from defensive insurance: per-card cap, total cap
	// and the residual that insurance can never negate.
	DamageReductionPerInsuranceCap = 5.0
	DamageReductionTotalCap        = 10.0
	MinResidualDamage              = 1.0

	// Aggregate burden: continuous percentage penalty past the free count.
	BurdenPenaltyFreeCount = 3
	BurdenPenaltyRate      = 0.1

	// Premium adjustment factors.
	AgeFactorMiddle      = 1.2
	AgeFactorFulfillment = 1.3
	MedicalTypeFactor    = 1.5
	CoverageDivisor      = 20.0
	CoverageFactorFloor  = 0.5

	// Renewal: continuity discount per claim-free renewal, capped; frequent
	// claims past the threshold convert to a surcharge.
	RenewalDiscountStep   = 0.05
	RenewalDiscountCap    = 0.20
	RenewalSurchargeAfter = 5
	RenewalSurchargeStep  = 0.15
)
