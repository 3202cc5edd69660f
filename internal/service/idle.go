package service

import (
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
)

// HandleIdleGame expires a single abandoned game. A pending insurance claim
// does not keep a game alive; the whole run is marked abandoned so the idle
// scanner never revisits it.
func HandleIdleGame(repo GameRepo, g *game.Game) error {
	if g.Status != game.StatusInProgress {
		return nil
	}
	g.Status = game.StatusAbandoned
	g.PendingClaim = nil
	g.Message = "Game abandoned due to inactivity"
	if err := repo.UpdateGame(g); err != nil {
		return err
	}
	logging.Warn("idle game abandoned", logging.Fields{"game_id": g.ID, "turn": g.Turn})
	return nil
}
