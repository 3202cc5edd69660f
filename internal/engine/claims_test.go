package engine

import (
	"errors"
	"testing"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

func TestResolveClaim_NoopWithoutPendingClaim(t *testing.T) {
	g := newTestGame(t, 50)
	result, err := ResolveClaim(g)
	if err != nil {
		t.Fatal(err)
	}
	if result.Resolved {
		t.Error("resolving with nothing pending must be a reported no-op")
	}
	if g.Vitality.Value != 50 {
		t.Errorf("vitality = %v, must be unchanged", g.Vitality.Value)
	}
}

func TestDrawCards_AgingStreakWithDisabilityCover(t *testing.T) {
	g := newTestGame(t, 50)
	cover := mustInsurance(t, "Disability Cover", game.InsuranceDisability, 0, 4, 20)
	g.ActiveInsurances = []game.Card{cover}
	for i := 0; i < AgingStreakCount; i++ {
		g.Deck = append(g.Deck, mustCard(t, "Bad Break", game.CardTypePitfall, 0, 0))
	}
	for i := 0; i < StartingHandSize; i++ {
		g.Deck = append(g.Deck, mustCard(t, "Morning Walk", game.CardTypeLife, 3, 0))
	}

	result, err := DrawCards(g, AgingStreakCount)
	if err != nil {
		t.Fatal(err)
	}
	if !result.ClaimCreated {
		t.Fatal("expected the pitfall streak to raise a claim")
	}
	if g.PendingClaim == nil || g.PendingClaim.Trigger != game.TriggerAgingGameOver {
		t.Fatal("expected a pending on_aging_gameover claim")
	}
	if g.Status != game.StatusInProgress {
		t.Errorf("status = %s, the streak is suspended, not fatal", g.Status)
	}

	claim, err := ResolveClaim(g)
	if err != nil {
		t.Fatal(err)
	}
	if !claim.HandRedrawn {
		t.Fatal("disability cover must redraw the hand")
	}
	if len(g.Hand) != StartingHandSize {
		t.Errorf("hand size = %d, want a fresh hand of %d", len(g.Hand), StartingHandSize)
	}
	for _, c := range g.Hand {
		if c.Type == game.CardTypePitfall {
			t.Error("the pitfall cards must have been discarded")
		}
	}
	if claim.InsuranceConsumed {
		t.Error("disability cover protects the condition and stays active")
	}
	if len(g.ActiveInsurances) != 1 {
		t.Errorf("active insurances = %d, want the cover kept", len(g.ActiveInsurances))
	}
}

func TestDrawCards_AgingStreakWithoutCoverIsGameOver(t *testing.T) {
	g := newTestGame(t, 50)
	for i := 0; i < AgingStreakCount; i++ {
		g.Deck = append(g.Deck, mustCard(t, "Bad Break", game.CardTypePitfall, 0, 0))
	}

	result, err := DrawCards(g, AgingStreakCount)
	if err != nil {
		t.Fatal(err)
	}
	if result.ClaimCreated {
		t.Fatal("no claim can be raised without disability cover")
	}
	if !result.GameOver || g.Status != game.StatusGameOver {
		t.Errorf("status = %s, want game_over from the unprotected streak", g.Status)
	}
}

func TestFileOnDemandClaim(t *testing.T) {
	g := newTestGame(t, 50)
	challenge := mustCard(t, "Layoff", game.CardTypeChallenge, 12, 0)

	if err := FileOnDemandClaim(g); !errors.Is(err, game.ErrNoActiveChallenge) {
		t.Fatalf("expected ErrNoActiveChallenge, got %v", err)
	}

	dealAndSelect(g, mustCard(t, "Morning Walk", game.CardTypeLife, 3, 0))
	startChallenge(t, g, challenge)

	if err := FileOnDemandClaim(g); !errors.Is(err, ErrNoQualifyingInsurance) {
		t.Fatalf("expected ErrNoQualifyingInsurance, got %v", err)
	}

	cover := mustInsurance(t, "Income Protection", game.InsuranceIncomeProtection, 0, 4, 20)
	g.ActiveInsurances = []game.Card{cover}
	if err := FileOnDemandClaim(g); err != nil {
		t.Fatal(err)
	}
	if g.PendingClaim == nil || g.PendingClaim.Trigger != game.TriggerOnDemand {
		t.Fatal("expected a pending on_demand claim")
	}

	// only one claim can be pending
	if err := FileOnDemandClaim(g); !errors.Is(err, game.ErrClaimPending) {
		t.Fatalf("expected ErrClaimPending, got %v", err)
	}

	claim, err := ResolveClaim(g)
	if err != nil {
		t.Fatal(err)
	}
	if !claim.ChallengeSkipped {
		t.Fatal("the on-demand claim must skip the challenge")
	}
	if !claim.InsuranceConsumed {
		t.Fatal("income protection is consumed by the claim")
	}
	if g.CurrentChallenge != nil {
		t.Error("the skipped challenge must be discarded")
	}
	if g.Phase != game.PhaseResolution {
		t.Errorf("phase = %s, want resolution after the skip", g.Phase)
	}
	if g.Vitality.Value != 50 {
		t.Errorf("vitality = %v, must be untouched by the skip", g.Vitality.Value)
	}
}

func TestPendingClaimBlocksProgress(t *testing.T) {
	g := newTestGame(t, 50)
	g.Phase = game.PhaseResolution
	g.PendingClaim = &game.InsuranceClaim{Trigger: game.TriggerHeavyDamage}

	if _, err := NextTurn(g); !errors.Is(err, game.ErrClaimPending) {
		t.Fatalf("expected ErrClaimPending from NextTurn, got %v", err)
	}

	g.Phase = game.PhaseDraw
	dealAndSelect(g, mustCard(t, "Morning Walk", game.CardTypeLife, 3, 0))
	if err := StartChallenge(g, mustCard(t, "Job Hunt", game.CardTypeChallenge, 5, 0)); !errors.Is(err, game.ErrClaimPending) {
		t.Fatalf("expected ErrClaimPending from StartChallenge, got %v", err)
	}
}

func TestDamageReduction_Caps(t *testing.T) {
	g := newTestGame(t, 50)
	shielded := func(name string, shield float64) game.Card {
		c := mustInsurance(t, name, game.InsuranceMedical, 0, 4, 20)
		return c.WithEffects([]game.CardEffect{{Type: game.EffectShield, Value: shield}})
	}
	// per-card contributions cap at 5, the total at 10
	g.ActiveInsurances = []game.Card{shielded("a", 9), shielded("b", 4), shielded("c", 9)}
	if got := damageReduction(g); got != DamageReductionTotalCap {
		t.Errorf("reduction = %v, want the total cap %v", got, DamageReductionTotalCap)
	}

	g.ActiveInsurances = []game.Card{shielded("a", 2), shielded("b", 3)}
	if got := damageReduction(g); got != 5 {
		t.Errorf("reduction = %v, want 5", got)
	}
}

func TestApplyDamage_MinimumResidual(t *testing.T) {
	g := newTestGame(t, 50)
	cover := mustInsurance(t, "Life Cover", game.InsuranceLife, 0, 4, 20)
	cover = cover.WithEffects([]game.CardEffect{{Type: game.EffectDamageReduction, Value: 5}})
	g.ActiveInsurances = []game.Card{cover}

	outcome, err := applyDamage(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.AppliedDamage != MinResidualDamage {
		t.Errorf("applied = %v, insurance can never negate the residual %v", outcome.AppliedDamage, MinResidualDamage)
	}
	if g.Vitality.Value != 50-MinResidualDamage {
		t.Errorf("vitality = %v, want %v", g.Vitality.Value, 50-MinResidualDamage)
	}
}
