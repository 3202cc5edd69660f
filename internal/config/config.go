package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// EffectDef is one tagged effect descriptor in the config file.
type EffectDef struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// CardDef describes a plain (life/pitfall/event) card template. Count is
// how many copies of the template go into a starter deck.
type CardDef struct {
	Name    string      `json:"name"`
	Power   float64     `json:"power"`
	Cost    float64     `json:"cost"`
	Count   int         `json:"count"`
	Effects []EffectDef `json:"effects"`
}

// ChallengeDef describes a challenge or dream card template bound to a
// life stage.
type ChallengeDef struct {
	Name          string  `json:"name"`
	Power         float64 `json:"power"`
	Stage         string  `json:"stage"`
	DreamCategory string  `json:"dream_category"`
	Penalty       int     `json:"penalty"`
}

// InsuranceDef describes an insurance offer template. Term variants get
// TermTurns of duration; whole-life variants ignore it.
type InsuranceDef struct {
	Name          string      `json:"name"`
	InsuranceType string      `json:"insurance_type"`
	Power         float64     `json:"power"`
	Cost          float64     `json:"cost"`
	Coverage      float64     `json:"coverage"`
	TermTurns     int         `json:"term_turns"`
	AgeBonus      int         `json:"age_bonus"`
	Effects       []EffectDef `json:"effects"`
}

// CardList is the full content catalog. The engine never constructs card
// content itself; everything comes from here through the factory.
type CardList struct {
	LifeCards      []CardDef      `json:"life_cards"`
	PitfallCards   []CardDef      `json:"pitfall_cards"`
	EventCards     []CardDef      `json:"event_cards"`
	ChallengeCards []ChallengeDef `json:"challenge_cards"`
	DreamCards     []ChallengeDef `json:"dream_cards"`
	InsuranceCards []InsuranceDef `json:"insurance_cards"`
}

type rawConfig struct {
	CardList CardList `json:"card_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	// IdleGameTTLMinutes controls when the idle scanner abandons games.
	IdleGameTTLMinutes int `json:"idle_game_ttl_minutes"`
}

// LoadedConfig contains the card catalog and the server address to bind to.
type LoadedConfig struct {
	Cards         CardList
	ServerAddress string
	IdleGameTTL   time.Duration
}

// LoadConfig reads the configuration file at path. It requires a card_list
// with at least life and challenge entries.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList.LifeCards) == 0 {
		return nil, fmt.Errorf("config file %s: life_cards is empty (provide a 'card_list.life_cards' array)", path)
	}
	if len(rc.CardList.ChallengeCards) == 0 {
		return nil, fmt.Errorf("config file %s: challenge_cards is empty", path)
	}
	if len(rc.CardList.InsuranceCards) == 0 {
		return nil, fmt.Errorf("config file %s: insurance_cards is empty", path)
	}

	// Cross-entry validation: unique names per list, no negative numbers.
	for _, list := range [][]CardDef{rc.CardList.LifeCards, rc.CardList.PitfallCards, rc.CardList.EventCards} {
		seen := make(map[string]struct{}, len(list))
		for _, d := range list {
			ln := strings.ToLower(strings.TrimSpace(d.Name))
			if ln == "" {
				return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
			}
			if _, exists := seen[ln]; exists {
				return nil, fmt.Errorf("config file %s: duplicate card name '%s'", path, d.Name)
			}
			seen[ln] = struct{}{}
			if d.Power < 0 || d.Cost < 0 {
				return nil, fmt.Errorf("config file %s: card '%s' has negative power or cost", path, d.Name)
			}
		}
	}
	for _, list := range [][]ChallengeDef{rc.CardList.ChallengeCards, rc.CardList.DreamCards} {
		seen := make(map[string]struct{}, len(list))
		for _, d := range list {
			ln := strings.ToLower(strings.TrimSpace(d.Name))
			if ln == "" {
				return nil, fmt.Errorf("config file %s: challenge entry missing 'name'", path)
			}
			if _, exists := seen[ln]; exists {
				return nil, fmt.Errorf("config file %s: duplicate challenge name '%s'", path, d.Name)
			}
			seen[ln] = struct{}{}
			if d.Power < 0 {
				return nil, fmt.Errorf("config file %s: challenge '%s' has negative power", path, d.Name)
			}
		}
	}
	seenInsurance := make(map[string]struct{}, len(rc.CardList.InsuranceCards))
	for _, d := range rc.CardList.InsuranceCards {
		ln := strings.ToLower(strings.TrimSpace(d.Name))
		if ln == "" {
			return nil, fmt.Errorf("config file %s: insurance entry missing 'name'", path)
		}
		if _, exists := seenInsurance[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate insurance name '%s'", path, d.Name)
		}
		seenInsurance[ln] = struct{}{}
		if d.InsuranceType == "" {
			return nil, fmt.Errorf("config file %s: insurance '%s' missing 'insurance_type'", path, d.Name)
		}
		if d.TermTurns < 0 || d.Coverage < 0 || d.Cost < 0 {
			return nil, fmt.Errorf("config file %s: insurance '%s' has negative numeric fields", path, d.Name)
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	ttl := 60 * time.Minute
	if rc.IdleGameTTLMinutes > 0 {
		ttl = time.Duration(rc.IdleGameTTLMinutes) * time.Minute
	}

	return &LoadedConfig{Cards: rc.CardList, ServerAddress: addr, IdleGameTTL: ttl}, nil
}
