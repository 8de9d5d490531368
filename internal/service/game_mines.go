package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

const (
	minesGrid     = 25
	minesMinBombs = 1
	minesMaxBombs = 24
)

// PlayMines resolves a full mines board in one step: the player commits to a
// bomb count and a number of picks, survives with probability
// C(grid-bombs, picks) / C(grid, picks) and is paid the inverse of that
// probability discounted by the house edge.
func (s *GameServiceImpl) PlayMines(ctx context.Context, req ports.MinesRequest) (*ports.RoundResult, error) {
	if req.Bombs < minesMinBombs || req.Bombs > minesMaxBombs {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"bombs must be between %d and %d", minesMinBombs, minesMaxBombs))
	}
	if req.Picks < 1 || req.Picks > minesGrid-req.Bombs {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"picks must be between 1 and %d for %d bombs", minesGrid-req.Bombs, req.Bombs))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameMines, req.BetAmount)
	if err != nil {
		return nil, err
	}

	edge := s.cfg.MinesHouseEdge
	safeProb := minesSafeProbability(minesGrid, req.Bombs, req.Picks)
	multiplier := (1 - edge) / safeProb
	u := s.fairness.DeriveUniform(commitment.Seed)

	winAmount := int64(0)
	outcome := domain.OutcomeBust
	if u < safeProb {
		outcome = domain.OutcomeWin
		winAmount = domain.WinAmount(req.BetAmount, multiplier)
	}

	return s.settle(ctx, req.PlayerID, domain.GameMines, req.BetAmount, winAmount, outcome,
		commitment, &domain.MinesDetails{
			Grid:       minesGrid,
			Bombs:      req.Bombs,
			Picks:      req.Picks,
			SafeProb:   safeProb,
			Multiplier: domain.RoundMultiplier(multiplier),
		})
}

// minesSafeProbability computes C(grid-bombs, picks) / C(grid, picks) as the
// telescoping product (safe-i)/(grid-i), which stays exact in float64 for a
// 25-tile board.
func minesSafeProbability(grid, bombs, picks int) float64 {
	safe := grid - bombs
	p := 1.0
	for i := 0; i < picks; i++ {
		p *= float64(safe-i) / float64(grid-i)
	}
	return p
}
