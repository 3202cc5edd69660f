package service

import (
	"fmt"

	"github.com/shishihs/insurance-self-game-sub003/internal/catalog"
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
)

// DrawCards draws up to n cards into the player's hand.
func DrawCards(repo GameRepo, gameID uint, n int) (*game.Game, *engine.DrawResult, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, nil, ErrGameNotFound
	}
	result, err := engine.DrawCards(g, n)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, nil, err
	}
	return g, result, nil
}

// SelectCard toggles a hand card's commitment to the current challenge.
func SelectCard(repo GameRepo, gameID uint, cardID string) (*game.Game, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	if err := engine.ToggleCardSelection(g, cardID); err != nil {
		return nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// StartChallenge deals the turn's challenge from the factory and commits
// the player to it. When a dream alternative exists for the stage, choosing
// the ordinary challenge instead declines the dream and raises the
// persistent difficulty modifier.
func StartChallenge(repo GameRepo, factory *catalog.Factory, gameID uint, chooseDream bool) (*game.Game, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	// The factory deals by turn number, so an unstarted game (turn 0) must
	// be rejected before consulting it.
	if !g.IsStarted() {
		return nil, game.ErrGameNotStarted
	}
	challenge, dream, err := factory.ChallengeForTurn(g.Stage, g.Turn)
	if err != nil {
		return nil, err
	}
	faced := challenge
	if chooseDream {
		if dream == nil {
			return nil, fmt.Errorf("%w: no dream challenge available for stage %s", game.ErrValidation, g.Stage)
		}
		faced = *dream
	}
	if err := engine.StartChallenge(g, faced); err != nil {
		return nil, err
	}
	if dream != nil && !chooseDream {
		if err := engine.DeclineDream(g); err != nil {
			return nil, err
		}
		logging.Info("dream declined", logging.Fields{"game_id": g.ID, "difficulty_modifier": g.ChallengeDifficultyModifier})
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// ResolveChallenge settles the current challenge and persists the result.
func ResolveChallenge(repo GameRepo, gameID uint) (*game.Game, *engine.ChallengeResult, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, nil, ErrGameNotFound
	}
	result, err := engine.ResolveChallenge(g)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, nil, err
	}
	logging.Info("challenge resolved", logging.Fields{
		"game_id": g.ID, "success": result.Success,
		"total_power": result.TotalPower, "required_power": result.RequiredPower,
		"claim_pending": result.ClaimPending,
	})
	return g, result, nil
}

// NextTurn advances the turn boundary and persists the new state.
func NextTurn(repo GameRepo, gameID uint) (*game.Game, *engine.TurnResult, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, nil, ErrGameNotFound
	}
	result, err := engine.NextTurn(g)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, nil, err
	}
	if result.StageChanged {
		logging.Info("stage advanced", logging.Fields{"game_id": g.ID, "stage": string(g.Stage), "max_vitality": g.Vitality.Max})
	}
	return g, result, nil
}
