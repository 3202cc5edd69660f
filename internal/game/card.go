package game

import (
	"fmt"

	"github.com/google/uuid"
)

// CardType discriminates the card variants. Variant-specific data lives in
// optional payload structs (Insurance, Dream) so that, for example,
// insurance-only fields are simply not reachable on a life card.
type CardType string

const (
	CardTypeLife      CardType = "life"
	CardTypeInsurance CardType = "insurance"
	CardTypeChallenge CardType = "challenge"
	CardTypePitfall   CardType = "pitfall"
	CardTypeDream     CardType = "dream"
	CardTypeSkill     CardType = "skill"
	CardTypeCombo     CardType = "combo"
	CardTypeEvent     CardType = "event"
)

func (t CardType) Valid() bool {
	switch t {
	case CardTypeLife, CardTypeInsurance, CardTypeChallenge, CardTypePitfall,
		CardTypeDream, CardTypeSkill, CardTypeCombo, CardTypeEvent:
		return true
	}
	return false
}

// EffectType tags a card effect descriptor.
type EffectType string

const (
	EffectShield          EffectType = "shield"
	EffectDamageReduction EffectType = "damage_reduction"
	EffectTurnHeal        EffectType = "turn_heal"
)

// CardEffect is one tagged effect carried by a card. Effects are ordered and
// applied in declaration order.
type CardEffect struct {
	Type  EffectType `json:"type"`
	Value float64    `json:"value"`
}

// InsuranceType classifies what an insurance card protects against.
type InsuranceType string

const (
	InsuranceMedical          InsuranceType = "medical"
	InsuranceLife             InsuranceType = "life"
	InsuranceDisability       InsuranceType = "disability"
	InsuranceIncomeProtection InsuranceType = "income_protection"
	InsurancePension          InsuranceType = "pension"
)

// DurationType is whether an insurance card lapses after a fixed number of
// turns or persists until consumed by a claim.
type DurationType string

const (
	DurationTerm      DurationType = "term"
	DurationWholeLife DurationType = "whole_life"
)

// InsuranceDetails is the insurance-variant payload.
type InsuranceDetails struct {
	InsuranceType  InsuranceType `json:"insurance_type"`
	Coverage       float64       `json:"coverage"`
	DurationType   DurationType  `json:"duration_type"`
	RemainingTurns int           `json:"remaining_turns,omitempty"`
	AgeBonus       int           `json:"age_bonus,omitempty"`
}

// DreamCategory governs how a dream challenge's difficulty shifts with age.
type DreamCategory string

const (
	DreamPhysical     DreamCategory = "physical"
	DreamIntellectual DreamCategory = "intellectual"
	DreamMixed        DreamCategory = "mixed"
	DreamNone         DreamCategory = "none"
)

// DreamDetails is the challenge/dream-variant payload.
type DreamDetails struct {
	Category DreamCategory `json:"category"`
	Penalty  int           `json:"penalty,omitempty"`
}

// Card is immutable once constructed. "Mutation" (e.g. a term insurance
// losing a turn) always produces a new Card value.
type Card struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      CardType          `json:"type"`
	Power     CardPower         `json:"power"`
	Cost      float64           `json:"cost"`
	Effects   []CardEffect      `json:"effects,omitempty"`
	Insurance *InsuranceDetails `json:"insurance,omitempty"`
	Dream     *DreamDetails     `json:"dream,omitempty"`
}

// NewCard validates and builds a card of the given variant. Negative power
// or cost fail construction.
func NewCard(name string, cardType CardType, power, cost float64) (Card, error) {
	if name == "" {
		return Card{}, fmt.Errorf("%w: card name must not be empty", ErrValidation)
	}
	if !cardType.Valid() {
		return Card{}, fmt.Errorf("%w: unknown card type %q", ErrInvalidCardType, cardType)
	}
	p, err := NewCardPower(power)
	if err != nil {
		return Card{}, err
	}
	if !isFinite(cost) || cost < 0 {
		return Card{}, fmt.Errorf("%w: card cost must not be negative (got %v)", ErrValidation, cost)
	}
	return Card{ID: uuid.NewString(), Name: name, Type: cardType, Power: p, Cost: cost}, nil
}

// WithEffects returns a copy carrying the given effect list.
func (c Card) WithEffects(effects []CardEffect) Card {
	c.Effects = append([]CardEffect(nil), effects...)
	return c
}

// WithInsurance returns a copy carrying the insurance payload. The receiver
// must be an insurance card.
func (c Card) WithInsurance(d InsuranceDetails) (Card, error) {
	if c.Type != CardTypeInsurance {
		return Card{}, fmt.Errorf("%w: %s card cannot carry insurance details", ErrInvalidCardType, c.Type)
	}
	if d.DurationType != DurationTerm && d.DurationType != DurationWholeLife {
		return Card{}, fmt.Errorf("%w: unknown duration type %q", ErrValidation, d.DurationType)
	}
	if d.DurationType == DurationTerm && d.RemainingTurns <= 0 {
		return Card{}, fmt.Errorf("%w: term insurance requires positive remaining turns", ErrValidation)
	}
	if d.DurationType == DurationWholeLife {
		d.RemainingTurns = 0
	}
	if !isFinite(d.Coverage) || d.Coverage < 0 {
		return Card{}, fmt.Errorf("%w: coverage must not be negative (got %v)", ErrValidation, d.Coverage)
	}
	dd := d
	c.Insurance = &dd
	return c, nil
}

// WithDream returns a copy carrying the dream payload. The receiver must be
// a challenge or dream card.
func (c Card) WithDream(d DreamDetails) (Card, error) {
	if !c.IsChallengeLike() {
		return Card{}, fmt.Errorf("%w: %s card cannot carry dream details", ErrInvalidCardType, c.Type)
	}
	dd := d
	c.Dream = &dd
	return c, nil
}

// IsChallengeLike reports whether the card can be faced as a challenge.
func (c Card) IsChallengeLike() bool {
	return c.Type == CardTypeChallenge || c.Type == CardTypeDream
}

// IsInsurance reports whether the card is an insurance card with its payload.
func (c Card) IsInsurance() bool {
	return c.Type == CardTypeInsurance && c.Insurance != nil
}

// DecrementRemainingTurns returns a copy with one fewer remaining turn and
// whether the card expired with this step. Whole-life insurance never
// expires by turn count. The receiver is never mutated.
func (c Card) DecrementRemainingTurns() (Card, bool, error) {
	if !c.IsInsurance() {
		return Card{}, false, fmt.Errorf("%w: only insurance cards track remaining turns", ErrInvalidCardType)
	}
	if c.Insurance.DurationType == DurationWholeLife {
		return c, false, nil
	}
	d := *c.Insurance
	if d.RemainingTurns > 0 {
		d.RemainingTurns--
	}
	c.Insurance = &d
	return c, d.RemainingTurns == 0, nil
}

// EffectTotal sums the values of all effects of the given type.
func (c Card) EffectTotal(t EffectType) float64 {
	total := 0.0
	for _, e := range c.Effects {
		if e.Type == t {
			total += e.Value
		}
	}
	return total
}
