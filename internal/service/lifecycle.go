package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shishihs/insurance-self-game-sub003/internal/catalog"
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
)

// GameRepo is the minimal repository interface the service layer needs.
type GameRepo interface {
	CreateGame(g *game.Game) error
	GetGameByID(id uint) (*game.Game, error)
	UpdateGame(g *game.Game) error
}

// PlayerGamesRepo lists a player's stored games.
type PlayerGamesRepo interface {
	ListGamesByPlayer(playerUUID string) ([]game.Game, error)
}

var (
	ErrGameNotFound = errors.New("game not found")
)

// ListPlayerGames returns every game of the given player, newest first.
func ListPlayerGames(repo PlayerGamesRepo, playerUUID string) ([]game.Game, error) {
	if playerUUID == "" {
		return nil, fmt.Errorf("%w: player uuid is required", game.ErrValidation)
	}
	return repo.ListGamesByPlayer(playerUUID)
}

// CreateGame builds a fresh, not-yet-started game for a player: starter
// deck from the factory, full youth vitality, empty insurance portfolio.
func CreateGame(repo GameRepo, factory *catalog.Factory, playerUUID string) (*game.Game, error) {
	deck, err := factory.StarterDeck()
	if err != nil {
		return nil, err
	}
	vitality, err := game.NewVitality(engine.MaxVitalityYouth, engine.MaxVitalityYouth)
	if err != nil {
		return nil, err
	}
	if playerUUID == "" {
		playerUUID = uuid.NewString()
	}
	g := &game.Game{
		PlayerUUID:  playerUUID,
		Status:      game.StatusNotStarted,
		Phase:       game.PhasePreparation,
		Stage:       game.StageYouth,
		Vitality:    vitality,
		Deck:        deck,
		RiskProfile: game.NewRiskProfile(),
		MaxHandSize: engine.MaxHandSize,
	}
	g.Touch()
	if err := repo.CreateGame(g); err != nil {
		return nil, err
	}
	logging.Info("game created", logging.Fields{"game_id": g.ID, "player_uuid": g.PlayerUUID, "deck_size": len(g.Deck)})
	return g, nil
}

// StartGame transitions a stored game into play and deals the opening hand.
func StartGame(repo GameRepo, gameID uint) (*game.Game, error) {
	g, err := repo.GetGameByID(gameID)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	if err := engine.StartGame(g); err != nil {
		return nil, err
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, err
	}
	logging.Info("game started", logging.Fields{"game_id": g.ID, "hand_size": len(g.Hand)})
	return g, nil
}
