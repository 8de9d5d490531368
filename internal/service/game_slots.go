package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
)

// slotSymbols is the ordered reel strip; each reel draw indexes into it.
var slotSymbols = []string{"cherry", "lemon", "orange", "plum", "bell", "seven", "star", "diamond"}

// tripleMultipliers pays three-of-a-kind per symbol. Symbols not listed pay
// the base triple rate.
var tripleMultipliers = map[string]float64{
	"diamond": 20,
	"star":    15,
	"seven":   10,
}

const (
	baseTripleMultiplier = 5
	pairMultiplier       = 2
)

// PlaySlots spins three reels. Three of a kind pays the symbol's triple rate
// (a diamond triple is the jackpot), any pair pays 2x.
func (s *GameServiceImpl) PlaySlots(ctx context.Context, req ports.SlotsRequest) (*ports.RoundResult, error) {
	commitment, _, err := s.openRound(ctx, req.PlayerID, domain.GameSlots, req.BetAmount)
	if err != nil {
		return nil, err
	}

	var reels [3]string
	for i := range reels {
		idx := s.fairness.DeriveInt(commitment.Seed, fmt.Sprintf("reel:%d", i), 0, len(slotSymbols))
		reels[i] = slotSymbols[idx]
	}

	multiplier, outcome := scoreReels(reels)
	winAmount := int64(0)
	if multiplier > 0 {
		winAmount = domain.WinAmount(req.BetAmount, multiplier)
	}

	return s.settle(ctx, req.PlayerID, domain.GameSlots, req.BetAmount, winAmount, outcome,
		commitment, &domain.SlotsDetails{Reels: reels})
}

func scoreReels(reels [3]string) (float64, domain.Outcome) {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		m, ok := tripleMultipliers[reels[0]]
		if !ok {
			m = baseTripleMultiplier
		}
		if reels[0] == "diamond" {
			return m, domain.OutcomeJackpot
		}
		return m, domain.OutcomeWin
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		return pairMultiplier, domain.OutcomeWin
	default:
		return 0, domain.OutcomeLoss
	}
}
