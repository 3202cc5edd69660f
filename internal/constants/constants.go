package constants

// Centralized constants for env keys, routes and logging field names.
const (
	// Environment variable keys
	EnvConfigPath = "LIFEGAME_CONFIG"
	EnvDBPath     = "LIFEGAME_DB"

	// Defaults
	DefaultConfigPath = "./lifegame_config.json"
	DefaultDBPath     = "./data/lifegame.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteVersion = "/version"
	RouteQuotes  = "/games/:gameID/quotes"

	RouteGames            = "/games"
	RoutePlayerGames      = "/players/:playerUUID/games"
	RouteGameByID         = "/games/:gameID"
	RouteGameStart        = "/games/:gameID/start"
	RouteGameDraw         = "/games/:gameID/draw"
	RouteGameSelect       = "/games/:gameID/select"
	RouteGameChallenge    = "/games/:gameID/challenge"
	RouteGameResolve      = "/games/:gameID/challenge/resolve"
	RouteGameInsurance    = "/games/:gameID/insurance"
	RouteGameBurden       = "/games/:gameID/burden"
	RouteGameClaim        = "/games/:gameID/claim"
	RouteGameClaimResolve = "/games/:gameID/claim/resolve"
	RouteGameNextTurn     = "/games/:gameID/turn"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyGame    = "game"
	JSONKeyGames   = "games"
	JSONKeyResult  = "result"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrInvalidGameID    = "Invalid game ID"
	ErrGameNotFound     = "Game not found"
	ErrFailedCreateGame = "Failed to create game"
	ErrFailedUpdateGame = "Failed to update game"
)

// Logging field names
const (
	LogFieldGameID = "game_id"
	LogFieldAddr   = "addr"
	LogFieldTurn   = "turn"
)
