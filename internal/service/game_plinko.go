package service

import (
	"context"
	"fmt"
	"strings"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

const (
	plinkoMinRows = 6
	plinkoMaxRows = 16
)

// PlayPlinko drops a ball down a board of the requested depth. Each row is
// one binary draw; the landing bin is the count of rightward bounces.
func (s *GameServiceImpl) PlayPlinko(ctx context.Context, req ports.PlinkoRequest) (*ports.RoundResult, error) {
	if req.Rows < plinkoMinRows || req.Rows > plinkoMaxRows {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"rows must be between %d and %d", plinkoMinRows, plinkoMaxRows))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GamePlinko, req.BetAmount)
	if err != nil {
		return nil, err
	}

	rights := 0
	var path strings.Builder
	for i := 0; i < req.Rows; i++ {
		if s.fairness.DeriveInt(commitment.Seed, fmt.Sprintf("drop:%d", i), 0, 2) == 1 {
			rights++
			path.WriteByte('R')
		} else {
			path.WriteByte('L')
		}
	}

	edge := s.cfg.PlinkoHouseEdge
	multiplier := plinkoMultiplier(req.Rows, rights) * (1 - edge)
	winAmount := domain.WinAmount(req.BetAmount, multiplier)

	outcome := domain.OutcomeLoss
	switch {
	case winAmount > req.BetAmount:
		outcome = domain.OutcomeWin
	case winAmount == req.BetAmount:
		outcome = domain.OutcomePush
	}

	return s.settle(ctx, req.PlayerID, domain.GamePlinko, req.BetAmount, winAmount, outcome,
		commitment, &domain.PlinkoDetails{
			Rows:       req.Rows,
			Rights:     rights,
			Path:       path.String(),
			Multiplier: domain.RoundMultiplier(multiplier),
		})
}

// plinkoMultiplier pays bin k of a rows-deep board 2^rows / (C(rows,k) *
// (rows+1)). Landing probabilities are binomial, so each bin contributes
// exactly 1/(rows+1) to the expected value and the pre-edge EV is 1 for
// every depth. Edge bins pay the most, the center bin the least.
func plinkoMultiplier(rows, k int) float64 {
	return float64(uint64(1)<<uint(rows)) / (binomial(rows, k) * float64(rows+1))
}

// binomial computes C(n, k) as a float64, exact for the board sizes in play.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}
