package service

import (
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
)

// FileClaim invokes income-protection cover on demand to skip the current
// challenge. The claim still has to be resolved explicitly.
func FileClaim(repo GameRepo, gameID uint) (*game.Game, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	if err := engine.FileOnDemandClaim(g); err != nil {
		return nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	logging.Info("on-demand claim filed", logging.Fields{"game_id": g.ID})
	return g, nil
}

// ResolveClaim settles the pending insurance claim, if any.
func ResolveClaim(repo GameRepo, gameID uint) (*game.Game, *engine.ClaimResult, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, nil, ErrGameNotFound
	}
	result, err := engine.ResolveClaim(g)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, nil, err
	}
	if result.Resolved {
		logging.Info("claim resolved", logging.Fields{
			"game_id": g.ID, "trigger": string(result.Trigger),
			"damage_applied": result.DamageApplied, "insurance_consumed": result.InsuranceConsumed,
		})
	}
	return g, result, nil
}
