package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

var ErrNoQualifyingInsurance = errors.New("no qualifying active insurance")

// DamageOutcome records what happened to one incoming damage amount after
// the trigger subsystem had its say.
type DamageOutcome struct {
	RawDamage     float64 `json:"raw_damage"`
	AppliedDamage float64 `json:"applied_damage"`
	Reduced       float64 `json:"reduced"`
	ClaimCreated  bool    `json:"claim_created"`
	Depleted      bool    `json:"depleted"`
}

// ClaimResult is the change record returned by ResolveClaim.
type ClaimResult struct {
	Resolved          bool              `json:"resolved"`
	Trigger           game.ClaimTrigger `json:"trigger,omitempty"`
	DamageApplied     float64           `json:"damage_applied"`
	VitalityAfter     float64           `json:"vitality_after"`
	InsuranceConsumed bool              `json:"insurance_consumed"`
	HandRedrawn       bool              `json:"hand_redrawn"`
	ChallengeSkipped  bool              `json:"challenge_skipped"`
	GameOver          bool              `json:"game_over"`
}

// damageReduction sums the defensive effects of active insurance against an
// incoming hit. Each card contributes at most the per-card cap, the total is
// capped as well, and callers must still leave the minimum residual damage.
func damageReduction(g *game.Game) float64 {
	total := 0.0
	for _, c := range g.ActiveInsurances {
		r := c.EffectTotal(game.EffectDamageReduction) + c.EffectTotal(game.EffectShield)
		total += math.Min(r, DamageReductionPerInsuranceCap)
	}
	return math.Min(total, DamageReductionTotalCap)
}

// applyDamage routes incoming damage through the detect-then-resolve
// protocol. Heavy damage with medical cover and lethal damage with life
// cover are suspended as pending claims; anything else is applied through
// the vitality type's saturating decrease.
func applyDamage(g *game.Game, raw float64) (DamageOutcome, error) {
	if raw < 0 {
		return DamageOutcome{}, fmt.Errorf("%w: damage must not be negative (got %v)", game.ErrValidation, raw)
	}
	if g.PendingClaim != nil {
		return DamageOutcome{}, game.ErrClaimPending
	}
	outcome := DamageOutcome{RawDamage: raw}

	if raw >= HeavyDamageThreshold {
		if cover, ok := g.ActiveInsuranceOfType(game.InsuranceMedical); ok {
			g.PendingClaim = &game.InsuranceClaim{
				Insurance: cover,
				Trigger:   game.TriggerHeavyDamage,
				Context:   game.ClaimContext{Damage: raw},
			}
			g.Stats.ClaimsFiled++
			outcome.ClaimCreated = true
			return outcome, nil
		}
	}

	damage := raw - damageReduction(g)
	if damage < MinResidualDamage {
		damage = MinResidualDamage
	}
	outcome.Reduced = raw - damage

	if g.Vitality.Value-damage <= 0 {
		if cover, ok := g.ActiveInsuranceOfType(game.InsuranceLife); ok {
			// Vitality hits the floor but the game does not end: the death
			// is suspended until the claim resolves.
			v, err := g.Vitality.Decrease(g.Vitality.Value)
			if err != nil {
				return DamageOutcome{}, err
			}
			g.Vitality = v
			g.PendingClaim = &game.InsuranceClaim{
				Insurance: cover,
				Trigger:   game.TriggerDeath,
				Context:   game.ClaimContext{Damage: raw},
			}
			g.Stats.ClaimsFiled++
			outcome.ClaimCreated = true
			outcome.AppliedDamage = damage
			return outcome, nil
		}
	}

	v, err := g.Vitality.Decrease(damage)
	if err != nil {
		return DamageOutcome{}, err
	}
	g.Vitality = v
	outcome.AppliedDamage = damage
	if g.Vitality.IsDepleted() {
		g.Status = game.StatusGameOver
		g.Message = "Vitality depleted"
		outcome.Depleted = true
	}
	return outcome, nil
}

// checkAgingStreak fires the disability trigger when the hand accumulates
// the configured run of pitfall cards. Without disability cover the streak
// is an immediate game over. While a claim is pending the check is a no-op.
func checkAgingStreak(g *game.Game) bool {
	if g.PendingClaim != nil {
		return false
	}
	streak := 0
	for _, c := range g.Hand {
		if c.Type == game.CardTypePitfall {
			streak++
		}
	}
	if streak < AgingStreakCount {
		return false
	}
	if cover, ok := g.ActiveInsuranceOfType(game.InsuranceDisability); ok {
		g.PendingClaim = &game.InsuranceClaim{
			Insurance: cover,
			Trigger:   game.TriggerAgingGameOver,
		}
		g.Stats.ClaimsFiled++
		return true
	}
	g.Status = game.StatusGameOver
	g.Message = "Overwhelmed by pitfalls"
	return false
}

// FileOnDemandClaim lets the player invoke income-protection cover
// explicitly to skip the current challenge.
func FileOnDemandClaim(g *game.Game) error {
	if !g.IsStarted() {
		return game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return ErrGameFinished
	}
	if g.PendingClaim != nil {
		return game.ErrClaimPending
	}
	if g.CurrentChallenge == nil {
		return game.ErrNoActiveChallenge
	}
	cover, ok := g.ActiveInsuranceOfType(game.InsuranceIncomeProtection)
	if !ok {
		return fmt.Errorf("%w: income protection required for an on-demand claim", ErrNoQualifyingInsurance)
	}
	g.PendingClaim = &game.InsuranceClaim{Insurance: cover, Trigger: game.TriggerOnDemand}
	g.Stats.ClaimsFiled++
	g.Touch()
	return nil
}

// consumeInsurance moves the triggering insurance from the active to the
// expired set and refreshes the cached burden.
func consumeInsurance(g *game.Game, cardID string) (bool, error) {
	c, ok := g.RemoveActiveInsurance(cardID)
	if !ok {
		return false, nil
	}
	g.ExpiredInsurances = append(g.ExpiredInsurances, c)
	burden, err := TotalBurden(g.ActiveInsurances, g.Stage)
	if err != nil {
		return true, err
	}
	g.InsuranceBurden = burden.Value
	return true, nil
}

// ResolveClaim settles the pending claim. With no claim pending it is a
// no-op so call sites stay simple. The pending claim is always cleared,
// whichever branch runs.
func ResolveClaim(g *game.Game) (*ClaimResult, error) {
	if g.PendingClaim == nil {
		return &ClaimResult{Resolved: false}, nil
	}
	claim := *g.PendingClaim
	g.PendingClaim = nil

	result := &ClaimResult{Resolved: true, Trigger: claim.Trigger}

	switch claim.Trigger {
	case game.TriggerHeavyDamage:
		consumed, err := consumeInsurance(g, claim.Insurance.ID)
		if err != nil {
			return nil, err
		}
		result.InsuranceConsumed = consumed
		v, err := g.Vitality.Decrease(ReducedClaimDamage)
		if err != nil {
			return nil, err
		}
		g.Vitality = v
		result.DamageApplied = ReducedClaimDamage
		if g.Vitality.IsDepleted() {
			g.Status = game.StatusGameOver
			g.Message = "Vitality depleted"
			result.GameOver = true
		}

	case game.TriggerDeath:
		consumed, err := consumeInsurance(g, claim.Insurance.ID)
		if err != nil {
			return nil, err
		}
		result.InsuranceConsumed = consumed
		revive := math.Min(ReviveVitality, g.Vitality.Max)
		v, err := g.Vitality.Increase(revive)
		if err != nil {
			return nil, err
		}
		g.Vitality = v
		g.Status = game.StatusInProgress

	case game.TriggerAgingGameOver:
		// Disability cover clears the hand and deals a fresh one. The
		// policy itself stays active; it protects against the condition,
		// not a single event.
		g.DiscardPile = append(g.DiscardPile, g.Hand...)
		g.Hand = nil
		g.SelectedCardIDs = nil
		drawFromDeck(g, StartingHandSize)
		result.HandRedrawn = true

	case game.TriggerOnDemand:
		consumed, err := consumeInsurance(g, claim.Insurance.ID)
		if err != nil {
			return nil, err
		}
		result.InsuranceConsumed = consumed
		if g.CurrentChallenge != nil {
			g.DiscardPile = append(g.DiscardPile, *g.CurrentChallenge)
			g.CurrentChallenge = nil
		}
		g.SelectedCardIDs = nil
		if g.Phase != game.PhaseResolution {
			if err := game.TransitionPhase(g.Phase, game.PhaseResolution); err != nil {
				return nil, err
			}
			g.Phase = game.PhaseResolution
		}
		result.ChallengeSkipped = true

	default:
		return nil, fmt.Errorf("%w: unknown claim trigger %q", game.ErrValidation, claim.Trigger)
	}

	result.VitalityAfter = g.Vitality.Value
	g.Touch()
	return result, nil
}
