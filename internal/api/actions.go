package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shishihs/insurance-self-game-sub003/internal/constants"
	"github.com/shishihs/insurance-self-game-sub003/internal/engine"
	"github.com/shishihs/insurance-self-game-sub003/internal/game"
	"github.com/shishihs/insurance-self-game-sub003/internal/service"
)

type DrawRequest struct {
	Count int `json:"count"`
}

// DrawCards moves up to count cards from the deck into the hand.
func (h *GameHandler) DrawCards(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	var req DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	g, result, err := service.DrawCards(h.repo, id, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g, constants.JSONKeyResult: result})
}

type SelectCardRequest struct {
	CardID string `json:"card_id"`
}

// SelectCard toggles a hand card's commitment to the current challenge.
func (h *GameHandler) SelectCard(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	var req SelectCardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	g, err := service.SelectCard(h.repo, id, req.CardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g})
}

type StartChallengeRequest struct {
	ChooseDream bool `json:"choose_dream"`
}

// StartChallenge deals and commits to the turn's challenge, or to its dream
// alternative when requested.
func (h *GameHandler) StartChallenge(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	var req StartChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	g, err := service.StartChallenge(h.repo, h.factory, id, req.ChooseDream)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g})
}

// ResolveChallenge settles the current challenge.
func (h *GameHandler) ResolveChallenge(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, result, err := service.ResolveChallenge(h.repo, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g, constants.JSONKeyResult: result})
}

type ChooseInsuranceRequest struct {
	InsuranceType string `json:"insurance_type"`
	DurationType  string `json:"duration_type"`
}

// ChooseInsurance completes the insurance-pick phase.
func (h *GameHandler) ChooseInsurance(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	var req ChooseInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InsuranceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	duration := game.DurationType(req.DurationType)
	if duration == "" {
		duration = game.DurationTerm
	}
	g, err := service.ChooseInsurance(h.repo, h.factory, id, game.InsuranceType(req.InsuranceType), duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g})
}

// NextTurn advances the turn boundary.
func (h *GameHandler) NextTurn(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	g, result, err := service.NextTurn(h.repo, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyGame: g, constants.JSONKeyResult: result})
}

// GetBurden reports the insurance burden and a budget recommendation.
func (h *GameHandler) GetBurden(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	tolerance := engine.RiskTolerance(c.DefaultQuery("tolerance", string(engine.ToleranceBalanced)))
	report, err := service.InsuranceBurden(h.repo, id, tolerance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetQuotes prices each configured insurance type for the game's stage and
// risk profile.
func (h *GameHandler) GetQuotes(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	quotes, err := service.QuotePremiums(h.repo, h.factory, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}
