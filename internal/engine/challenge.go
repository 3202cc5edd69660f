package engine

import (
	"errors"
	"fmt"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

var (
	ErrGameFinished    = errors.New("game already finished")
	ErrNoCardsSelected = errors.New("at least one card must be selected")
	ErrCardNotInHand   = errors.New("card not in hand")
)

// PowerBreakdown reports how a challenge total was assembled, for display.
type PowerBreakdown struct {
	Base      int `json:"base"`
	Insurance int `json:"insurance"`
	Burden    int `json:"burden"`
	Total     int `json:"total"`
}

// ChallengeResult is the explicit change record returned by
// ResolveChallenge. Callers (UI) react to it instead of observing the
// aggregate through listeners.
type ChallengeResult struct {
	Success       bool           `json:"success"`
	TotalPower    int            `json:"total_power"`
	RequiredPower int            `json:"required_power"`
	VitalityDelta float64        `json:"vitality_delta"`
	Breakdown     PowerBreakdown `json:"breakdown"`
	ClaimPending  bool           `json:"claim_pending"`
	GameOver      bool           `json:"game_over"`
}

// StartChallenge commits the player to facing the given challenge or dream
// card. The draw -> challenge edge requires at least one selected card.
func StartChallenge(g *game.Game, card game.Card) error {
	if !g.IsStarted() {
		return game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return ErrGameFinished
	}
	if g.PendingClaim != nil {
		return game.ErrClaimPending
	}
	if !card.IsChallengeLike() {
		return fmt.Errorf("%w: cannot face a %s card as a challenge", game.ErrInvalidCardType, card.Type)
	}
	if !g.Phase.CanStartChallenge() {
		return fmt.Errorf("%w: cannot start a challenge during %s", game.ErrInvalidPhaseTransition, g.Phase)
	}
	if len(g.SelectedCardIDs) == 0 {
		return ErrNoCardsSelected
	}
	if err := game.TransitionPhase(g.Phase, game.PhaseChallenge); err != nil {
		return err
	}
	c := card
	g.CurrentChallenge = &c
	g.Phase = game.PhaseChallenge
	g.Touch()
	return nil
}

// ToggleCardSelection marks or unmarks a hand card as committed to the
// current challenge.
func ToggleCardSelection(g *game.Game, cardID string) error {
	if !g.IsStarted() {
		return game.ErrGameNotStarted
	}
	if !g.Phase.CanSelectCards() {
		return fmt.Errorf("%w: cannot select cards during %s", game.ErrInvalidPhaseTransition, g.Phase)
	}
	if _, ok := g.HandCard(cardID); !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, cardID)
	}
	for i, id := range g.SelectedCardIDs {
		if id == cardID {
			g.SelectedCardIDs = append(g.SelectedCardIDs[:i], g.SelectedCardIDs[i+1:]...)
			return nil
		}
	}
	g.SelectedCardIDs = append(g.SelectedCardIDs, cardID)
	return nil
}

// DeclineDream records that the player was offered a dream card and chose
// the ordinary challenge instead. The difficulty penalty persists for the
// rest of the run and never decreases through this path.
func DeclineDream(g *game.Game) error {
	if !g.IsStarted() {
		return game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return ErrGameFinished
	}
	g.ChallengeDifficultyModifier += DreamDeclinePenalty
	return nil
}

// insuranceBonus is the power contributed by held insurance: each active
// card adds its power, plus its age bonus once the character is past youth.
func insuranceBonus(g *game.Game) int {
	bonus := 0
	for _, c := range g.ActiveInsurances {
		bonus += c.Power.Value
		if g.Stage != game.StageYouth && c.Insurance != nil {
			bonus += c.Insurance.AgeBonus
		}
	}
	return bonus
}

// TotalPower computes the challenge total for an arbitrary card set:
// base + insurance bonus - insurance burden, floor-clamped at zero.
func TotalPower(g *game.Game, cards []game.Card) (int, PowerBreakdown) {
	powers := make([]game.CardPower, len(cards))
	for i, c := range cards {
		powers[i] = c.Power
	}
	base := game.SumCardPowers(powers).Value
	bonus := insuranceBonus(g)
	burden := g.InsuranceBurden
	total := base + bonus - burden
	if total < 0 {
		total = 0
	}
	return total, PowerBreakdown{Base: base, Insurance: bonus, Burden: burden, Total: total}
}

// dreamAdjustment shifts required power by dream category once past youth:
// physical dreams get harder, intellectual ones easier.
func dreamAdjustment(stage game.Stage, c game.Card) int {
	if c.Dream == nil || stage == game.StageYouth {
		return 0
	}
	switch c.Dream.Category {
	case game.DreamPhysical:
		return DreamPhysicalAgePenalty
	case game.DreamIntellectual:
		return -DreamIntellectualAgeBonus
	}
	return 0
}

// RequiredPower is the challenge's power adjusted by the persistent
// difficulty modifier and the dream-category age adjustment, floored at the
// minimum.
func RequiredPower(g *game.Game, challenge game.Card) int {
	required := challenge.Power.Value + g.ChallengeDifficultyModifier + dreamAdjustment(g.Stage, challenge)
	if required < MinRequiredPower {
		required = MinRequiredPower
	}
	return required
}

// ResolveChallenge settles the current challenge against the committed
// cards. Success heals half the surplus; failure routes the deficit through
// the insurance trigger subsystem, which may suspend it as a pending claim.
// The call is atomic: every validation happens before the first mutation.
func ResolveChallenge(g *game.Game) (*ChallengeResult, error) {
	if !g.IsStarted() {
		return nil, game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return nil, ErrGameFinished
	}
	if g.PendingClaim != nil {
		return nil, game.ErrClaimPending
	}
	if !g.Phase.CanResolveChallenge() {
		return nil, fmt.Errorf("%w: cannot resolve a challenge during %s", game.ErrInvalidPhaseTransition, g.Phase)
	}
	if g.CurrentChallenge == nil {
		return nil, game.ErrNoActiveChallenge
	}

	challenge := *g.CurrentChallenge
	selected := g.SelectedCards()
	total, breakdown := TotalPower(g, selected)
	required := RequiredPower(g, challenge)

	result := &ChallengeResult{
		TotalPower:    total,
		RequiredPower: required,
		Breakdown:     breakdown,
	}

	if total >= required {
		heal := float64((total - required) / SuccessHealDivisor)
		v, err := g.Vitality.Increase(heal)
		if err != nil {
			return nil, err
		}
		g.Vitality = v
		result.Success = true
		result.VitalityDelta = heal
		g.Stats.ChallengesSucceeded++
		if g.Vitality.Value > g.Stats.HighestVitality {
			g.Stats.HighestVitality = g.Vitality.Value
		}
	} else {
		raw := float64(required - total)
		outcome, err := applyDamage(g, raw)
		if err != nil {
			return nil, err
		}
		result.VitalityDelta = -outcome.AppliedDamage
		result.ClaimPending = outcome.ClaimCreated
		result.GameOver = outcome.Depleted
		g.Stats.ChallengesFailed++
	}

	// Finalize the turn's card flow: committed cards and the challenge card
	// go to the discard pile regardless of outcome.
	g.Stats.CardsPlayed += len(selected)
	remaining := g.Hand[:0]
	for _, c := range g.Hand {
		if g.IsSelected(c.ID) {
			g.DiscardPile = append(g.DiscardPile, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	g.Hand = remaining
	g.SelectedCardIDs = nil
	g.DiscardPile = append(g.DiscardPile, challenge)
	g.CurrentChallenge = nil

	if !g.IsFinished() {
		// Success earns an insurance pick; failure goes straight to
		// resolution.
		next := game.PhaseResolution
		if result.Success {
			next = game.PhaseInsuranceTypeSelection
		}
		if err := game.TransitionPhase(g.Phase, next); err != nil {
			return nil, err
		}
		g.Phase = next
	}
	g.Touch()
	return result, nil
}
