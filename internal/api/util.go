package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shishihs/insurance-self-game-sub003/internal/constants"
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/service"
)

// parseGameID extracts the numeric game ID from the path, writing the error
// response itself when the parameter is malformed.
func parseGameID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("gameID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidGameID})
		return 0, false
	}
	return uint(id), true
}

// respondError maps engine and service errors onto HTTP statuses. The
// taxonomy is small and stable, so one mapping serves every handler.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrValidation),
		errors.Is(err, game.ErrInvalidCardType),
		errors.Is(err, game.ErrUnknownPhase),
		errors.Is(err, engine.ErrNoCardsSelected),
		errors.Is(err, engine.ErrCardNotInHand),
		errors.Is(err, engine.ErrNoQualifyingInsurance):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrInvalidPhaseTransition),
		errors.Is(err, game.ErrNoActiveChallenge),
		errors.Is(err, game.ErrGameNotStarted),
		errors.Is(err, game.ErrGameAlreadyStarted),
		errors.Is(err, game.ErrClaimPending),
		errors.Is(err, engine.ErrGameFinished):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}
