package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishihs/insurance-self-game-sub003/internal/constants"
	"github.com/shishihs/insurance-self-game-sub003/internal/service"
)

type CreateGameRequest struct {
	PlayerUUID string `json:"player_uuid"`
}

// CreateGame builds a fresh game with a starter deck and persists it.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	g, err := service.CreateGame(h.repo, h.factory, req.PlayerUUID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeyGame: g})
}

// GetGame returns the full aggregate for display.
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, err := h.repo.GetGameByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g, "valid_actions": g.Phase.ValidActions()})
}

// ListPlayerGames returns every game of the player, newest first.
func (h *GameHandler) ListPlayerGames(c *gin.Context) {
	games, err := service.ListPlayerGames(h.repo, c.Param("playerUUID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGames: games})
}

// StartGame transitions the game into play and deals the opening hand.
func (h *GameHandler) StartGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, err := service.StartGame(h.repo, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g})
}
