package game

import (
	"time"

	"gorm.io/gorm"
)

type GameStatus string

const (
	StatusNotStarted GameStatus = "not_started"
	StatusInProgress GameStatus = "in_progress"
	StatusGameOver   GameStatus = "game_over"
	StatusVictory    GameStatus = "victory"
	// StatusAbandoned marks games expired by the idle scanner rather than
	// played to an end state.
	StatusAbandoned GameStatus = "abandoned"
)

// Stage is the coarse life phase. It advances monotonically with the turn
// counter and determines the vitality ceiling.
type Stage string

const (
	StageYouth       Stage = "youth"
	StageMiddle      Stage = "middle"
	StageFulfillment Stage = "fulfillment"
)

// GameStats accumulates observable counters across a run.
type GameStats struct {
	ChallengesSucceeded int     `json:"challenges_succeeded"`
	ChallengesFailed    int     `json:"challenges_failed"`
	CardsPlayed         int     `json:"cards_played"`
	ClaimsFiled         int     `json:"claims_filed"`
	HighestVitality     float64 `json:"highest_vitality"`
	TurnsPlayed         int     `json:"turns_played"`
}

// Game is the aggregate root. It is owned and mutated by exactly one caller
// at a time; the engine package mutates it through explicit operations that
// consult the phase machine first. Card collections and the pending claim
// persist as JSON columns since they are owned values, not shared rows.
type Game struct {
	gorm.Model
	PlayerUUID string     `json:"player_uuid" gorm:"index"`
	Status     GameStatus `json:"status"`
	Phase      Phase      `json:"phase"`
	Stage      Stage      `json:"stage"`
	Turn       int        `json:"turn"`

	Vitality Vitality `json:"vitality" gorm:"embedded;embeddedPrefix:vitality_"`

	Hand            []Card   `json:"hand" gorm:"serializer:json"`
	Deck            []Card   `json:"-" gorm:"serializer:json"`
	DiscardPile     []Card   `json:"discard_pile" gorm:"serializer:json"`
	SelectedCardIDs []string `json:"selected_card_ids" gorm:"serializer:json"`

	ActiveInsurances  []Card `json:"active_insurances" gorm:"serializer:json"`
	ExpiredInsurances []Card `json:"expired_insurances" gorm:"serializer:json"`
	// InsuranceBurden caches the aggregate premium across active insurance.
	// It is recomputed whenever the insurance composition changes.
	InsuranceBurden int `json:"insurance_burden"`

	ChallengeDifficultyModifier int             `json:"challenge_difficulty_modifier"`
	CurrentChallenge            *Card           `json:"current_challenge,omitempty" gorm:"serializer:json"`
	PendingClaim                *InsuranceClaim `json:"pending_insurance_claim,omitempty" gorm:"serializer:json"`

	RiskProfile RiskProfile `json:"risk_profile" gorm:"serializer:json"`
	Stats       GameStats   `json:"stats" gorm:"embedded;embeddedPrefix:stats_"`

	MaxHandSize  int       `json:"max_hand_size"`
	LastActionAt time.Time `json:"last_action_at"`
	Message      string    `json:"message"`
}

func (Game) TableName() string { return "life_games" }

func (g *Game) IsStarted() bool { return g.Status != StatusNotStarted }

func (g *Game) IsFinished() bool {
	return g.Status == StatusGameOver || g.Status == StatusVictory || g.Status == StatusAbandoned
}

// HandCard finds a card in the hand by ID.
func (g *Game) HandCard(cardID string) (Card, bool) {
	for _, c := range g.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// IsSelected reports whether a hand card is committed to the current
// challenge.
func (g *Game) IsSelected(cardID string) bool {
	for _, id := range g.SelectedCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}

// SelectedCards resolves the committed card IDs against the hand. IDs that
// no longer match a hand card are skipped.
func (g *Game) SelectedCards() []Card {
	cards := make([]Card, 0, len(g.SelectedCardIDs))
	for _, id := range g.SelectedCardIDs {
		if c, ok := g.HandCard(id); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// ActiveInsuranceOfType returns the first active insurance of the given
// type, which is the card a trigger consumes on resolution.
func (g *Game) ActiveInsuranceOfType(t InsuranceType) (Card, bool) {
	for _, c := range g.ActiveInsurances {
		if c.IsInsurance() && c.Insurance.InsuranceType == t {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveActiveInsurance removes the insurance with the given ID from the
// active set and returns it.
func (g *Game) RemoveActiveInsurance(cardID string) (Card, bool) {
	for i, c := range g.ActiveInsurances {
		if c.ID == cardID {
			g.ActiveInsurances = append(g.ActiveInsurances[:i], g.ActiveInsurances[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// Touch records the time of the last mutating operation for the idle
// scanner.
func (g *Game) Touch() { g.LastActionAt = time.Now() }
