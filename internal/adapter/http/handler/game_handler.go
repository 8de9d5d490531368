package handler

import (
	"context"

	"provably-fair-casino/internal/adapter/http/dto"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
	"provably-fair-casino/pkg/response"

	"github.com/gin-gonic/gin"
)

// GameHandler handles game round endpoints.
type GameHandler struct {
	gameSvc ports.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameSvc ports.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// PlaySlots handles POST /api/v1/games/slots.
func (h *GameHandler) PlaySlots(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlaySlots(c.Request.Context(), ports.SlotsRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayRoulette handles POST /api/v1/games/roulette.
func (h *GameHandler) PlayRoulette(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.RouletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayRoulette(c.Request.Context(), ports.RouletteRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
		Color:     req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayCrash handles POST /api/v1/games/crash.
func (h *GameHandler) PlayCrash(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.CrashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayCrash(c.Request.Context(), ports.CrashRequest{
		PlayerID:    playerID,
		BetAmount:   req.BetAmount,
		AutoCashout: req.AutoCashout,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayDice handles POST /api/v1/games/dice.
func (h *GameHandler) PlayDice(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.DiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayDice(c.Request.Context(), ports.DiceRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
		Target:    req.Target,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayPlinko handles POST /api/v1/games/plinko.
func (h *GameHandler) PlayPlinko(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.PlinkoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayPlinko(c.Request.Context(), ports.PlinkoRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
		Rows:      req.Rows,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayLimbo handles POST /api/v1/games/limbo.
func (h *GameHandler) PlayLimbo(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.LimboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayLimbo(c.Request.Context(), ports.LimboRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
		Target:    req.Target,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PlayMines handles POST /api/v1/games/mines.
func (h *GameHandler) PlayMines(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.MinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.PlayMines(c.Request.Context(), ports.MinesRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
		Bombs:     req.Bombs,
		Picks:     req.Picks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// BlackjackDeal handles POST /api/v1/games/blackjack/deal.
func (h *GameHandler) BlackjackDeal(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.BlackjackDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.BlackjackDeal(c.Request.Context(), ports.BlackjackDealRequest{
		PlayerID:  playerID,
		BetAmount: req.BetAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// BlackjackHit handles POST /api/v1/games/blackjack/hit.
func (h *GameHandler) BlackjackHit(c *gin.Context) {
	h.blackjackStep(c, h.gameSvc.BlackjackHit)
}

// BlackjackStand handles POST /api/v1/games/blackjack/stand.
func (h *GameHandler) BlackjackStand(c *gin.Context) {
	h.blackjackStep(c, h.gameSvc.BlackjackStand)
}

func (h *GameHandler) blackjackStep(
	c *gin.Context,
	step func(ctx context.Context, req ports.BlackjackStepRequest) (*ports.BlackjackStepResult, error),
) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.BlackjackStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := step(c.Request.Context(), ports.BlackjackStepRequest{
		PlayerID: playerID,
		State:    req.State,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Verify handles POST /api/v1/games/verify, the public commitment check.
func (h *GameHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	response.OK(c, dto.VerifyResponse{
		Valid: h.gameSvc.VerifyFairness(req.Seed, req.Hash),
	})
}
