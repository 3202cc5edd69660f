package api

import (
	"github.com/shishihs/insurance-self-game-sub003/internal/catalog"
	"github.com/shishihs/insurance-self-game-sub003/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo    storage.Repository
	factory *catalog.Factory
}

// NewGameHandler creates a new GameHandler with the given repository and
// card factory.
func NewGameHandler(repo storage.Repository, factory *catalog.Factory) *GameHandler {
	return &GameHandler{repo: repo, factory: factory}
}
