package engine

import (
	"testing"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

func mustCard(t *testing.T, name string, cardType game.CardType, power, cost float64) game.Card {
	t.Helper()
	c, err := game.NewCard(name, cardType, power, cost)
	if err != nil {
		t.Fatalf("NewCard(%s): %v", name, err)
	}
	return c
}

func mustInsurance(t *testing.T, name string, insType game.InsuranceType, power, cost, coverage float64) game.Card {
	t.Helper()
	c := mustCard(t, name, game.CardTypeInsurance, power, cost)
	c, err := c.WithInsurance(game.InsuranceDetails{
		InsuranceType: insType,
		Coverage:      coverage,
		DurationType:  game.DurationWholeLife,
	})
	if err != nil {
		t.Fatalf("WithInsurance(%s): %v", name, err)
	}
	return c
}

func mustTermInsurance(t *testing.T, name string, insType game.InsuranceType, cost float64, turns int) game.Card {
	t.Helper()
	c := mustCard(t, name, game.CardTypeInsurance, 0, cost)
	c, err := c.WithInsurance(game.InsuranceDetails{
		InsuranceType:  insType,
		Coverage:       20,
		DurationType:   game.DurationTerm,
		RemainingTurns: turns,
	})
	if err != nil {
		t.Fatalf("WithInsurance(%s): %v", name, err)
	}
	return c
}

func mustVitality(t *testing.T, value, max float64) game.Vitality {
	t.Helper()
	v, err := game.NewVitality(value, max)
	if err != nil {
		t.Fatalf("NewVitality(%v, %v): %v", value, max, err)
	}
	return v
}

// newTestGame builds a started game in the draw phase of youth with the given
// vitality and no cards anywhere.
func newTestGame(t *testing.T, vitality float64) *game.Game {
	t.Helper()
	return &game.Game{
		PlayerUUID:  "player-1",
		Status:      game.StatusInProgress,
		Phase:       game.PhaseDraw,
		Stage:       game.StageYouth,
		Turn:        1,
		Vitality:    mustVitality(t, vitality, MaxVitalityYouth),
		MaxHandSize: MaxHandSize,
	}
}

// dealAndSelect puts the cards into the hand and commits all of them.
func dealAndSelect(g *game.Game, cards ...game.Card) {
	for _, c := range cards {
		g.Hand = append(g.Hand, c)
		g.SelectedCardIDs = append(g.SelectedCardIDs, c.ID)
	}
}
