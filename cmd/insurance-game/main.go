package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shishihs/insurance-self-game-sub003/internal/api"
	"github.com/shishihs/insurance-self-game-sub003/internal/catalog"
	"github.com/shishihs/insurance-self-game-sub003/internal/config"
	"github.com/shishihs/insurance-self-game-sub003/internal/constants"
	"github.com/shishihs/insurance-self-game-sub003/internal/logging"
	"github.com/shishihs/insurance-self-game-sub003/internal/service"
	"github.com/shishihs/insurance-self-game-sub003/internal/storage"
	"github.com/shishihs/insurance-self-game-sub003/internal/version"
)

func main() {
	// Load the card catalog (required). Path may be provided via
	// LIFEGAME_CONFIG or defaults to ./lifegame_config.json in the current
	// working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid game configuration", err, logging.Fields{"config_path": configPath, "hint": "create a lifegame_config.json with a 'card_list' object holding life_cards, challenge_cards, dream_cards, insurance_cards and pitfall_cards arrays"})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	factory := catalog.NewFactory(cfg.Cards)
	handler := api.NewGameHandler(repo, factory)

	startIdleScanner(repo, cfg.IdleGameTTL)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.GetVersion)

		apiRoutes.POST(constants.RouteGames, handler.CreateGame)
		apiRoutes.GET(constants.RoutePlayerGames, handler.ListPlayerGames)
		apiRoutes.GET(constants.RouteGameByID, handler.GetGame)
		apiRoutes.POST(constants.RouteGameStart, handler.StartGame)
		apiRoutes.POST(constants.RouteGameDraw, handler.DrawCards)
		apiRoutes.POST(constants.RouteGameSelect, handler.SelectCard)
		apiRoutes.POST(constants.RouteGameChallenge, handler.StartChallenge)
		apiRoutes.POST(constants.RouteGameResolve, handler.ResolveChallenge)
		apiRoutes.POST(constants.RouteGameInsurance, handler.ChooseInsurance)
		apiRoutes.GET(constants.RouteGameBurden, handler.GetBurden)
		apiRoutes.GET(constants.RouteQuotes, handler.GetQuotes)
		apiRoutes.POST(constants.RouteGameClaim, handler.FileClaim)
		apiRoutes.POST(constants.RouteGameClaimResolve, handler.ResolveClaim)
		apiRoutes.POST(constants.RouteGameNextTurn, handler.NextTurn)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "build": version.String()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

// startIdleScanner periodically expires in-progress games whose last action
// is older than the configured TTL. Abandoned games do not count as losses.
func startIdleScanner(repo storage.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-ttl)
			games, err := repo.FindIdleGames(cutoff)
			if err != nil {
				logging.Error("idle scanner failed", err, nil)
				continue
			}
			for i := range games {
				if err := service.HandleIdleGame(repo, &games[i]); err != nil {
					logging.Error("failed to expire idle game", err, logging.Fields{constants.LogFieldGameID: games[i].ID})
				}
			}
		}
	}()
}
