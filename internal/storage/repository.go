package storage

import (
	"time"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

// Repository persists Game aggregates. The engine never touches it; the
// service layer loads a snapshot, runs the rules, and saves the result.
type Repository interface {
	CreateGame(g *game.Game) error
	GetGameByID(id uint) (*game.Game, error)
	UpdateGame(g *game.Game) error
	// ListGamesByPlayer returns the player's games, newest first.
	ListGamesByPlayer(playerUUID string) ([]game.Game, error)
	// FindIdleGames returns in-progress games whose last action is at or
	// before the cutoff. The caller decides how to expire them.
	FindIdleGames(cutoff time.Time) ([]game.Game, error)
}
