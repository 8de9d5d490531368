package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

const (
	diceMinTarget = 2
	diceMaxTarget = 98
)

// PlayDice is a roll-under bet: the roll lands in [1, 100] and the player
// wins when it comes in strictly under the target. The payout multiplier is
// (1-e) * 100/(target-1), the fair odds discounted by the house edge.
func (s *GameServiceImpl) PlayDice(ctx context.Context, req ports.DiceRequest) (*ports.RoundResult, error) {
	if req.Target < diceMinTarget || req.Target > diceMaxTarget {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"target must be between %d and %d", diceMinTarget, diceMaxTarget))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameDice, req.BetAmount)
	if err != nil {
		return nil, err
	}

	edge := s.cfg.DiceHouseEdge
	roll := s.fairness.DeriveInt(commitment.Seed, "roll", 1, 101)

	winAmount := int64(0)
	outcome := domain.OutcomeLoss
	if roll < req.Target {
		outcome = domain.OutcomeWin
		multiplier := (1 - edge) * 100 / float64(req.Target-1)
		winAmount = domain.WinAmount(req.BetAmount, multiplier)
	}

	return s.settle(ctx, req.PlayerID, domain.GameDice, req.BetAmount, winAmount, outcome,
		commitment, &domain.DiceDetails{
			Target:    req.Target,
			Roll:      roll,
			HouseEdge: edge,
		})
}
