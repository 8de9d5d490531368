package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

const minLimboTarget = 1.01

// PlayLimbo races a target multiplier: the win probability is (1-e)/target,
// and a win pays target * (1-e). Expected value is (1-e)^2 of the bet at any
// target, so target choice is pure variance.
func (s *GameServiceImpl) PlayLimbo(ctx context.Context, req ports.LimboRequest) (*ports.RoundResult, error) {
	if req.Target < minLimboTarget || req.Target > s.cfg.LimboMaxTarget {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"target must be between %.2f and %.2f", minLimboTarget, s.cfg.LimboMaxTarget))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameLimbo, req.BetAmount)
	if err != nil {
		return nil, err
	}

	edge := s.cfg.LimboHouseEdge
	winProb := (1 - edge) / req.Target
	u := s.fairness.DeriveUniform(commitment.Seed)

	winAmount := int64(0)
	outcome := domain.OutcomeLoss
	if u < winProb {
		outcome = domain.OutcomeWin
		winAmount = domain.WinAmount(req.BetAmount, req.Target*(1-edge))
	}

	return s.settle(ctx, req.PlayerID, domain.GameLimbo, req.BetAmount, winAmount, outcome,
		commitment, &domain.LimboDetails{
			Target:    req.Target,
			HouseEdge: edge,
			WinProb:   winProb,
		})
}
