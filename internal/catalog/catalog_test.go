package catalog

import (
	"errors"
	"testing"

	"github.com/shishihs/insurance-self-game-sub003/internal/config"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

func testCards() config.CardList {
	return config.CardList{
		LifeCards: []config.CardDef{
			{Name: "Morning Walk", Power: 3, Count: 3},
			{Name: "Reading", Power: 2},
		},
		EventCards: []config.CardDef{
			{Name: "Windfall", Power: 4, Count: 1},
		},
		PitfallCards: []config.CardDef{
			{Name: "Bad Break", Count: 2},
		},
		ChallengeCards: []config.ChallengeDef{
			{Name: "Job Hunt", Power: 5, Stage: "youth"},
			{Name: "Promotion", Power: 7, Stage: "middle"},
			{Name: "Any Stage", Power: 6},
		},
		DreamCards: []config.ChallengeDef{
			{Name: "Run a Marathon", Power: 8, Stage: "youth", DreamCategory: "physical"},
		},
		InsuranceCards: []config.InsuranceDef{
			{Name: "Medical Cover", InsuranceType: "medical", Cost: 4, Coverage: 20, TermTurns: 8, AgeBonus: 1},
		},
	}
}

func TestStarterDeck(t *testing.T) {
	deck, err := NewFactory(testCards()).StarterDeck()
	if err != nil {
		t.Fatal(err)
	}
	// 3 + 1 life, 1 event, 2 pitfall
	if len(deck) != 7 {
		t.Fatalf("deck = %d cards, want 7", len(deck))
	}
	counts := map[game.CardType]int{}
	ids := map[string]struct{}{}
	for _, c := range deck {
		counts[c.Type]++
		ids[c.ID] = struct{}{}
	}
	if counts[game.CardTypeLife] != 4 || counts[game.CardTypeEvent] != 1 || counts[game.CardTypePitfall] != 2 {
		t.Errorf("type counts = %v", counts)
	}
	if len(ids) != len(deck) {
		t.Error("every produced card must get its own identity")
	}

	if _, err := NewFactory(config.CardList{}).StarterDeck(); !errors.Is(err, game.ErrValidation) {
		t.Fatalf("expected ErrValidation for an empty catalog, got %v", err)
	}
}

func TestChallengeForTurn(t *testing.T) {
	f := NewFactory(testCards())

	challenge, dream, err := f.ChallengeForTurn(game.StageYouth, 1)
	if err != nil {
		t.Fatal(err)
	}
	if challenge.Name != "Job Hunt" {
		t.Errorf("turn 1 youth challenge = %s, want Job Hunt", challenge.Name)
	}
	if dream == nil || dream.Type != game.CardTypeDream {
		t.Fatal("youth has a dream alternative configured")
	}
	if dream.Dream == nil || dream.Dream.Category != game.DreamPhysical {
		t.Error("dream category must carry over from the definition")
	}

	// selection cycles deterministically through the stage pool
	again, _, err := f.ChallengeForTurn(game.StageYouth, 3)
	if err != nil {
		t.Fatal(err)
	}
	if again.Name != "Job Hunt" {
		t.Errorf("turn 3 youth challenge = %s, the pool of 2 must cycle", again.Name)
	}

	middle, dream, err := f.ChallengeForTurn(game.StageMiddle, 8)
	if err != nil {
		t.Fatal(err)
	}
	if middle.Name != "Promotion" && middle.Name != "Any Stage" {
		t.Errorf("middle challenge = %s, want one from the middle pool", middle.Name)
	}
	if dream != nil {
		t.Error("no dream is configured for the middle stage")
	}

	// the unstaged card serves every stage, so fulfillment still has a pool
	late, _, err := f.ChallengeForTurn(game.StageFulfillment, 15)
	if err != nil {
		t.Fatal(err)
	}
	if late.Name != "Any Stage" {
		t.Errorf("fulfillment challenge = %s, want the unstaged card", late.Name)
	}
}

func TestChallengeForTurn_RejectsNonPositiveTurn(t *testing.T) {
	f := NewFactory(testCards())
	for _, turn := range []int{0, -1} {
		if _, _, err := f.ChallengeForTurn(game.StageYouth, turn); !errors.Is(err, game.ErrValidation) {
			t.Fatalf("ChallengeForTurn(turn=%d): expected ErrValidation, got %v", turn, err)
		}
	}
}

func TestInsuranceOffer(t *testing.T) {
	f := NewFactory(testCards())

	term, err := f.InsuranceOffer(game.InsuranceMedical, game.DurationTerm)
	if err != nil {
		t.Fatal(err)
	}
	if !term.IsInsurance() {
		t.Fatal("offer must be an insurance card")
	}
	if term.Insurance.RemainingTurns != 8 {
		t.Errorf("term turns = %d, want the configured 8", term.Insurance.RemainingTurns)
	}
	if term.Cost != 4 {
		t.Errorf("term cost = %v, want the base 4", term.Cost)
	}

	whole, err := f.InsuranceOffer(game.InsuranceMedical, game.DurationWholeLife)
	if err != nil {
		t.Fatal(err)
	}
	if whole.Cost != 6 {
		t.Errorf("whole-life cost = %v, want the base 4 at a 1.5 markup", whole.Cost)
	}
	if whole.Insurance.RemainingTurns != 0 {
		t.Errorf("whole-life turns = %d, want none", whole.Insurance.RemainingTurns)
	}

	if _, err := f.InsuranceOffer(game.InsurancePension, game.DurationTerm); !errors.Is(err, game.ErrValidation) {
		t.Fatalf("expected ErrValidation for an unconfigured type, got %v", err)
	}
}

func TestInsuranceOffers(t *testing.T) {
	offers, err := NewFactory(testCards()).InsuranceOffers()
	if err != nil {
		t.Fatal(err)
	}
	if len(offers) != 1 {
		t.Fatalf("offers = %d, want one per configured type", len(offers))
	}
	if offers[0].Insurance.DurationType != game.DurationTerm {
		t.Error("listed offers default to the term variant")
	}
}
