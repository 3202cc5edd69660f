package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishihs/insurance-self-game-sub003/internal/constants"
	"github.com/shishihs/insurance-self-game-sub003/internal/service"
)

// FileClaim invokes income-protection cover to skip the current challenge.
func (h *GameHandler) FileClaim(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, err := service.FileClaim(h.repo, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g})
}

// ResolveClaim settles the pending insurance claim, if any.
func (h *GameHandler) ResolveClaim(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, result, err := service.ResolveClaim(h.repo, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g, constants.JSONKeyResult: result})
}
