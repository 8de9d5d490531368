package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
)

const minAutoCashout = 1.01

// PlayCrash runs one crash round. The auto-cashout is committed with the bet;
// the bust point derives from the seed, so the full round is decided the
// moment the commitment exists.
func (s *GameServiceImpl) PlayCrash(ctx context.Context, req ports.CrashRequest) (*ports.RoundResult, error) {
	if req.AutoCashout < minAutoCashout || req.AutoCashout > s.cfg.CrashMaxCashout {
		return nil, apperror.ErrInvalidParameter(fmt.Sprintf(
			"auto_cashout must be between %.2f and %.2f", minAutoCashout, s.cfg.CrashMaxCashout))
	}

	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameCrash, req.BetAmount)
	if err != nil {
		return nil, err
	}

	edge := s.cfg.CrashHouseEdge
	bust := crashBust(s.fairness.DeriveUniform(commitment.Seed), edge, s.cfg.CrashMaxCashout)

	winAmount := int64(0)
	outcome := domain.OutcomeBust
	if req.AutoCashout <= bust {
		outcome = domain.OutcomeWin
		winAmount = domain.WinAmount(req.BetAmount, req.AutoCashout)
	}

	return s.settle(ctx, req.PlayerID, domain.GameCrash, req.BetAmount, winAmount, outcome,
		commitment, &domain.CrashDetails{
			AutoCashout: req.AutoCashout,
			Bust:        bust,
			HouseEdge:   edge,
		})
}

// crashBust maps a uniform draw to the bust multiplier: (1-e)/(1-u), clamped
// to [1, cap] and rounded to 2 decimals. P(bust >= m) ≈ (1-e)/m, which makes
// cashing out at m pay m with probability (1-e)/m.
func crashBust(u, edge, cap float64) float64 {
	bust := (1 - edge) / (1 - u)
	if bust < 1 {
		bust = 1
	}
	if bust > cap {
		bust = cap
	}
	return domain.RoundMultiplier(bust)
}
