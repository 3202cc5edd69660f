package engine

import (
	"fmt"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

// DrawResult is the change record for a draw operation.
type DrawResult struct {
	Drawn        []game.Card `json:"drawn"`
	ClaimCreated bool        `json:"claim_created"`
	GameOver     bool        `json:"game_over"`
}

// TurnResult is the change record for a turn boundary.
type TurnResult struct {
	Turn                int        `json:"turn"`
	Stage               game.Stage `json:"stage"`
	StageChanged        bool       `json:"stage_changed"`
	ExpiredInsuranceIDs []string   `json:"expired_insurance_ids,omitempty"`
	InsuranceBurden     int        `json:"insurance_burden"`
	TurnHeal            float64    `json:"turn_heal"`
	Victory             bool       `json:"victory"`
}

// StageForTurn maps a turn number onto the life stage.
func StageForTurn(turn int) game.Stage {
	switch {
	case turn >= StageFulfillmentStartTurn:
		return game.StageFulfillment
	case turn >= StageMiddleStartTurn:
		return game.StageMiddle
	default:
		return game.StageYouth
	}
}

// MaxVitalityForStage is the vitality ceiling tier per stage.
func MaxVitalityForStage(stage game.Stage) float64 {
	switch stage {
	case game.StageMiddle:
		return MaxVitalityMiddle
	case game.StageFulfillment:
		return MaxVitalityFulfillment
	default:
		return MaxVitalityYouth
	}
}

// StartGame transitions not_started -> in_progress and deals the opening
// hand. The deck must already be populated by the card factory.
func StartGame(g *game.Game) error {
	if g.IsStarted() {
		return game.ErrGameAlreadyStarted
	}
	if len(g.Deck) == 0 {
		return fmt.Errorf("%w: deck is empty", game.ErrValidation)
	}
	if err := game.TransitionPhase(game.PhasePreparation, game.PhaseDraw); err != nil {
		return err
	}
	g.Status = game.StatusInProgress
	g.Phase = game.PhaseDraw
	g.Stage = game.StageYouth
	g.Turn = 1
	if g.MaxHandSize == 0 {
		g.MaxHandSize = MaxHandSize
	}
	drawFromDeck(g, StartingHandSize)
	g.Stats.HighestVitality = g.Vitality.Value
	g.Message = "A new life begins"
	g.Touch()
	return nil
}

// drawFromDeck moves up to n cards into the hand, respecting the hand cap.
// When the deck runs dry the discard pile is folded back in, preserving
// order so the engine stays deterministic.
func drawFromDeck(g *game.Game, n int) []game.Card {
	drawn := make([]game.Card, 0, n)
	for i := 0; i < n; i++ {
		if len(g.Hand) >= g.MaxHandSize {
			break
		}
		if len(g.Deck) == 0 {
			if len(g.DiscardPile) == 0 {
				break
			}
			g.Deck = g.DiscardPile
			g.DiscardPile = nil
		}
		c := g.Deck[0]
		g.Deck = g.Deck[1:]
		g.Hand = append(g.Hand, c)
		drawn = append(drawn, c)
	}
	return drawn
}

// DrawCards moves up to n cards from the deck to the hand. Each draw batch
// runs the aging-streak check, which may raise a claim or end the game.
func DrawCards(g *game.Game, n int) (*DrawResult, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: draw count must not be negative (got %d)", game.ErrValidation, n)
	}
	if !g.IsStarted() {
		return nil, game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return nil, ErrGameFinished
	}
	result := &DrawResult{Drawn: drawFromDeck(g, n)}
	result.ClaimCreated = checkAgingStreak(g)
	result.GameOver = g.Status == game.StatusGameOver
	g.Touch()
	return result, nil
}

// AddInsurance puts an insurance card into play and refreshes the cached
// burden. It is also the building block for the insurance-pick phase.
func AddInsurance(g *game.Game, card *game.Card) error {
	if card == nil {
		return fmt.Errorf("%w: insurance card is required", game.ErrValidation)
	}
	if !card.IsInsurance() {
		return fmt.Errorf("%w: expected an insurance card, got %s", game.ErrInvalidCardType, card.Type)
	}
	g.ActiveInsurances = append(g.ActiveInsurances, *card)
	g.Stats.CardsPlayed++
	if err := RecalculateBurden(g); err != nil {
		// Roll back the append so a bad card leaves no partial state.
		g.ActiveInsurances = g.ActiveInsurances[:len(g.ActiveInsurances)-1]
		g.Stats.CardsPlayed--
		return err
	}
	g.Touch()
	return nil
}

// ChooseInsurance is the insurance_type_selection action: add the chosen
// cover and move to resolution.
func ChooseInsurance(g *game.Game, card *game.Card) error {
	if !g.IsStarted() {
		return game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return ErrGameFinished
	}
	if err := game.TransitionPhase(g.Phase, game.PhaseResolution); err != nil {
		return err
	}
	if err := AddInsurance(g, card); err != nil {
		return err
	}
	g.Phase = game.PhaseResolution
	return nil
}

// RecalculateBurden refreshes the cached aggregate premium from the active
// insurance composition.
func RecalculateBurden(g *game.Game) error {
	burden, err := TotalBurden(g.ActiveInsurances, g.Stage)
	if err != nil {
		return err
	}
	g.InsuranceBurden = burden.Value
	return nil
}

// NextTurn advances the turn counter, re-evaluates the life stage (which
// may shrink the vitality ceiling), ages term insurance, and refreshes the
// burden cache. It is the only place the resolution -> draw edge is taken.
func NextTurn(g *game.Game) (*TurnResult, error) {
	if !g.IsStarted() {
		return nil, game.ErrGameNotStarted
	}
	if g.IsFinished() {
		return nil, ErrGameFinished
	}
	if g.PendingClaim != nil {
		return nil, game.ErrClaimPending
	}
	if !g.Phase.CanEndTurn() {
		return nil, fmt.Errorf("%w: cannot end the turn during %s", game.ErrInvalidPhaseTransition, g.Phase)
	}
	if err := game.TransitionPhase(g.Phase, game.PhaseDraw); err != nil {
		return nil, err
	}

	g.Turn++
	g.Stats.TurnsPlayed++
	result := &TurnResult{Turn: g.Turn}

	stage := StageForTurn(g.Turn)
	if stage != g.Stage {
		g.Stage = stage
		v, err := g.Vitality.WithMaxVitality(MaxVitalityForStage(stage))
		if err != nil {
			return nil, err
		}
		g.Vitality = v
		result.StageChanged = true
	}
	result.Stage = g.Stage

	// Term insurance ages one turn; lapsed cards move to the expired set.
	remaining := g.ActiveInsurances[:0]
	for _, c := range g.ActiveInsurances {
		aged, expired, err := c.DecrementRemainingTurns()
		if err != nil {
			return nil, err
		}
		if expired {
			g.ExpiredInsurances = append(g.ExpiredInsurances, aged)
			result.ExpiredInsuranceIDs = append(result.ExpiredInsuranceIDs, aged.ID)
		} else {
			remaining = append(remaining, aged)
		}
	}
	g.ActiveInsurances = remaining

	if err := RecalculateBurden(g); err != nil {
		return nil, err
	}
	result.InsuranceBurden = g.InsuranceBurden

	// Ongoing turn_heal effects from active cover.
	heal := 0.0
	for _, c := range g.ActiveInsurances {
		heal += c.EffectTotal(game.EffectTurnHeal)
	}
	if heal > 0 {
		v, err := g.Vitality.Increase(heal)
		if err != nil {
			return nil, err
		}
		g.Vitality = v
	}
	result.TurnHeal = heal

	if g.Turn >= VictoryTurn {
		g.Status = game.StatusVictory
		g.Message = "A life fully lived"
		result.Victory = true
	} else {
		g.Phase = game.PhaseDraw
	}
	g.Touch()
	return result, nil
}
