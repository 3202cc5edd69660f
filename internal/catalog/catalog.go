package catalog

import (
	"fmt"

	"github.com/shishihs/insurance-self-game-sub003/internal/config"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

// Factory turns config card definitions into Card values. Every produced
// card gets a fresh identity, so two games never share card instances. The
// rules engine only ever consumes the resulting values.
type Factory struct {
	cards config.CardList
}

func NewFactory(cards config.CardList) *Factory {
	return &Factory{cards: cards}
}

func buildEffects(defs []config.EffectDef) []game.CardEffect {
	if len(defs) == 0 {
		return nil
	}
	effects := make([]game.CardEffect, 0, len(defs))
	for _, d := range defs {
		effects = append(effects, game.CardEffect{Type: game.EffectType(d.Type), Value: d.Value})
	}
	return effects
}

func buildPlain(def config.CardDef, t game.CardType) (game.Card, error) {
	c, err := game.NewCard(def.Name, t, def.Power, def.Cost)
	if err != nil {
		return game.Card{}, fmt.Errorf("card %q: %w", def.Name, err)
	}
	return c.WithEffects(buildEffects(def.Effects)), nil
}

// StarterDeck builds the opening deck: life cards (repeated per their
// configured count) interleaved with pitfall and event cards. Order is
// deterministic; any shuffling belongs to the host, not the engine.
func (f *Factory) StarterDeck() ([]game.Card, error) {
	deck := make([]game.Card, 0, 32)
	appendCopies := func(defs []config.CardDef, t game.CardType) error {
		for _, def := range defs {
			count := def.Count
			if count <= 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				c, err := buildPlain(def, t)
				if err != nil {
					return err
				}
				deck = append(deck, c)
			}
		}
		return nil
	}
	if err := appendCopies(f.cards.LifeCards, game.CardTypeLife); err != nil {
		return nil, err
	}
	if err := appendCopies(f.cards.EventCards, game.CardTypeEvent); err != nil {
		return nil, err
	}
	if err := appendCopies(f.cards.PitfallCards, game.CardTypePitfall); err != nil {
		return nil, err
	}
	if len(deck) == 0 {
		return nil, fmt.Errorf("%w: starter deck is empty", game.ErrValidation)
	}
	return deck, nil
}

func buildChallenge(def config.ChallengeDef, t game.CardType) (game.Card, error) {
	c, err := game.NewCard(def.Name, t, def.Power, 0)
	if err != nil {
		return game.Card{}, fmt.Errorf("challenge %q: %w", def.Name, err)
	}
	category := game.DreamCategory(def.DreamCategory)
	if category == "" {
		category = game.DreamNone
	}
	return c.WithDream(game.DreamDetails{Category: category, Penalty: def.Penalty})
}

func stageMatches(def string, stage game.Stage) bool {
	return def == "" || game.Stage(def) == stage
}

// ChallengeForTurn deals the turn's challenge plus, when the catalog has
// one for this stage, a dream alternative the player may pick instead.
// Selection is by turn index so a replayed game deals the same run.
func (f *Factory) ChallengeForTurn(stage game.Stage, turn int) (game.Card, *game.Card, error) {
	if turn < 1 {
		return game.Card{}, nil, fmt.Errorf("%w: turn must be at least 1 (got %d)", game.ErrValidation, turn)
	}
	pool := make([]config.ChallengeDef, 0, len(f.cards.ChallengeCards))
	for _, d := range f.cards.ChallengeCards {
		if stageMatches(d.Stage, stage) {
			pool = append(pool, d)
		}
	}
	if len(pool) == 0 {
		return game.Card{}, nil, fmt.Errorf("%w: no challenge cards configured for stage %s", game.ErrValidation, stage)
	}
	challenge, err := buildChallenge(pool[(turn-1)%len(pool)], game.CardTypeChallenge)
	if err != nil {
		return game.Card{}, nil, err
	}

	dreams := make([]config.ChallengeDef, 0, len(f.cards.DreamCards))
	for _, d := range f.cards.DreamCards {
		if stageMatches(d.Stage, stage) {
			dreams = append(dreams, d)
		}
	}
	if len(dreams) == 0 {
		return challenge, nil, nil
	}
	dream, err := buildChallenge(dreams[(turn-1)%len(dreams)], game.CardTypeDream)
	if err != nil {
		return game.Card{}, nil, err
	}
	return challenge, &dream, nil
}

func (f *Factory) insuranceDef(insuranceType game.InsuranceType) (config.InsuranceDef, bool) {
	for _, d := range f.cards.InsuranceCards {
		if game.InsuranceType(d.InsuranceType) == insuranceType {
			return d, true
		}
	}
	return config.InsuranceDef{}, false
}

// InsuranceOffer builds a concrete insurance card of the requested type and
// duration for the current stage. Whole-life cover costs more up front;
// term cover carries the configured duration.
func (f *Factory) InsuranceOffer(insuranceType game.InsuranceType, duration game.DurationType) (game.Card, error) {
	def, ok := f.insuranceDef(insuranceType)
	if !ok {
		return game.Card{}, fmt.Errorf("%w: no %s insurance configured", game.ErrValidation, insuranceType)
	}
	cost := def.Cost
	if duration == game.DurationWholeLife {
		// Whole-life never lapses, so it is priced above the term variant.
		cost *= 1.5
	}
	c, err := game.NewCard(def.Name, game.CardTypeInsurance, def.Power, cost)
	if err != nil {
		return game.Card{}, fmt.Errorf("insurance %q: %w", def.Name, err)
	}
	c = c.WithEffects(buildEffects(def.Effects))
	turns := def.TermTurns
	if turns <= 0 {
		turns = 10
	}
	details := game.InsuranceDetails{
		InsuranceType: insuranceType,
		Coverage:      def.Coverage,
		DurationType:  duration,
		AgeBonus:      def.AgeBonus,
	}
	if duration == game.DurationTerm {
		details.RemainingTurns = turns
	}
	return c.WithInsurance(details)
}

// InsuranceOffers lists one term offer per configured insurance type, for
// the insurance-pick phase.
func (f *Factory) InsuranceOffers() ([]game.Card, error) {
	offers := make([]game.Card, 0, len(f.cards.InsuranceCards))
	for _, d := range f.cards.InsuranceCards {
		offer, err := f.InsuranceOffer(game.InsuranceType(d.InsuranceType), game.DurationTerm)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}
