package service

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
)

const (
	blackjackWinMultiplier  = 2
	blackjackPushMultiplier = 1
	dealerStandScore        = 17
)

// BlackjackDeal starts a round: the bet is debited, two player cards and one
// dealer card are drawn, and the sealed state goes back to the caller. A
// natural 21 settles immediately as a 2x win; the dealer never draws against
// it.
func (s *GameServiceImpl) BlackjackDeal(ctx context.Context, req ports.BlackjackDealRequest) (*ports.BlackjackStepResult, error) {
	commitment, balance, err := s.openRound(ctx, req.PlayerID, domain.GameBlackjack, req.BetAmount)
	if err != nil {
		return nil, err
	}

	state := &domain.RoundState{
		PlayerID:  req.PlayerID.String(),
		Hash:      commitment.Hash,
		BetAmount: req.BetAmount,
	}
	state.PlayerHand = []domain.Card{
		s.drawCard(commitment.Seed, 0),
		s.drawCard(commitment.Seed, 1),
	}
	state.DealerHand = []domain.Card{s.drawCard(commitment.Seed, 2)}
	state.Draws = 3
	state.PlayerScore = domain.HandScore(state.PlayerHand)
	state.DealerScore = domain.HandScore(state.DealerHand)

	if state.PlayerScore == 21 {
		return s.settleBlackjack(ctx, req.PlayerID, state, commitment, domain.OutcomeWin, blackjackWinMultiplier)
	}

	if err := s.codec.Seal(state, commitment.Seed); err != nil {
		return nil, err
	}

	return &ports.BlackjackStepResult{State: state, Balance: balance}, nil
}

// BlackjackHit draws one more player card. Going over 21 busts the round; any
// other score hands the resealed state back for another decision.
func (s *GameServiceImpl) BlackjackHit(ctx context.Context, req ports.BlackjackStepRequest) (*ports.BlackjackStepResult, error) {
	state, seed, err := s.openBlackjackState(req)
	if err != nil {
		return nil, err
	}

	state.PlayerHand = append(state.PlayerHand, s.drawCard(seed, state.Draws))
	state.Draws++
	state.PlayerScore = domain.HandScore(state.PlayerHand)

	if state.PlayerScore > 21 {
		return s.settleBlackjack(ctx, req.PlayerID, state, domain.Commitment{Seed: seed, Hash: state.Hash},
			domain.OutcomeBust, 0)
	}

	if err := s.codec.Seal(state, seed); err != nil {
		return nil, err
	}

	balance, err := s.ledger.GetBalance(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	return &ports.BlackjackStepResult{State: state, Balance: balance}, nil
}

// BlackjackStand plays out the dealer (hits to 17 or more) and settles the
// round. The seed is revealed in the settlement, never before.
func (s *GameServiceImpl) BlackjackStand(ctx context.Context, req ports.BlackjackStepRequest) (*ports.BlackjackStepResult, error) {
	state, seed, err := s.openBlackjackState(req)
	if err != nil {
		return nil, err
	}

	for domain.HandScore(state.DealerHand) < dealerStandScore {
		state.DealerHand = append(state.DealerHand, s.drawCard(seed, state.Draws))
		state.Draws++
	}
	state.DealerScore = domain.HandScore(state.DealerHand)

	outcome := domain.OutcomeLoss
	multiplier := 0.0
	switch {
	case state.DealerScore > 21 || state.PlayerScore > state.DealerScore:
		outcome = domain.OutcomeWin
		multiplier = blackjackWinMultiplier
	case state.PlayerScore == state.DealerScore:
		outcome = domain.OutcomePush
		multiplier = blackjackPushMultiplier
	}

	return s.settleBlackjack(ctx, req.PlayerID, state, domain.Commitment{Seed: seed, Hash: state.Hash},
		outcome, multiplier)
}

// openBlackjackState authenticates caller-held state and binds it to the
// requesting player.
func (s *GameServiceImpl) openBlackjackState(req ports.BlackjackStepRequest) (*domain.RoundState, string, error) {
	seed, err := s.codec.Open(req.State)
	if err != nil {
		return nil, "", err
	}
	if req.State.PlayerID != req.PlayerID.String() {
		return nil, "", apperror.ErrInvalidRoundState()
	}
	return req.State, seed, nil
}

func (s *GameServiceImpl) drawCard(seed string, n int) domain.Card {
	idx := s.fairness.DeriveInt(seed, fmt.Sprintf("card:%d", n), 0, domain.DeckSize)
	return domain.CardAt(idx)
}

func (s *GameServiceImpl) settleBlackjack(
	ctx context.Context,
	playerID uuid.UUID,
	state *domain.RoundState,
	commitment domain.Commitment,
	outcome domain.Outcome,
	multiplier float64,
) (*ports.BlackjackStepResult, error) {
	winAmount := int64(0)
	if multiplier > 0 {
		winAmount = domain.WinAmount(state.BetAmount, multiplier)
	}

	rr, err := s.settle(ctx, playerID, domain.GameBlackjack, state.BetAmount, winAmount, outcome,
		commitment, &domain.BlackjackDetails{
			PlayerHand:  state.PlayerHand,
			DealerHand:  state.DealerHand,
			PlayerScore: state.PlayerScore,
			DealerScore: state.DealerScore,
		})
	if err != nil {
		return nil, err
	}

	return &ports.BlackjackStepResult{
		Terminal:   true,
		Settlement: rr,
		Balance:    rr.NewBalance,
	}, nil
}
