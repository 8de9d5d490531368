package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

// rouletteWheel is the weighted color distribution. Slice order fixes the
// cumulative boundaries, so a revealed seed always re-derives the same color.
var rouletteWheel = []domain.WeightedChoice{
	{Label: "red", Weight: 70},
	{Label: "black", Weight: 20},
	{Label: "green", Weight: 10},
}

const (
	rouletteColorMultiplier = 2
	rouletteGreenMultiplier = 10
)

// PlayRoulette spins the color wheel. Matching red or black pays 2x, green
// pays 10x.
func (s *GameServiceImpl) PlayRoulette(ctx context.Context, req ports.RouletteRequest) (*ports.RoundResult, error) {
	if !validRouletteColor(req.Color) {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf("unknown color %q, want red, black or green", req.Color))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameRoulette, req.BetAmount)
	if err != nil {
		return nil, err
	}

	result := s.fairness.PickWeighted(commitment.Seed, rouletteWheel)

	winAmount := int64(0)
	outcome := domain.OutcomeLoss
	if result == req.Color {
		outcome = domain.OutcomeWin
		multiplier := float64(rouletteColorMultiplier)
		if result == "green" {
			multiplier = rouletteGreenMultiplier
		}
		winAmount = domain.WinAmount(req.BetAmount, multiplier)
	}

	return s.settle(ctx, req.PlayerID, domain.GameRoulette, req.BetAmount, winAmount, outcome,
		commitment, &domain.RouletteDetails{Result: result, BetColor: req.Color})
}

func validRouletteColor(color string) bool {
	for _, c := range rouletteWheel {
		if c.Label == color {
			return true
		}
	}
	return false
}
