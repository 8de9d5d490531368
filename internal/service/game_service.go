package service

import (
	"context"
	"fmt"
	"time"

	"provably-fair-casino/config"
	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// xpDivisor converts a bet in cents to XP (one XP per 10 currency units).
const xpDivisor = 1000

// GameServiceImpl implements ports.GameService. Every round runs the same
// pipeline: validate parameters, check the daily loss headroom, debit the
// bet, derive the outcome from a fresh commitment, settle. The debit and the
// settlement are separate ledger transactions; a round that fails between
// them keeps its debit, which matches the bet already being placed.
type GameServiceImpl struct {
	fairness    ports.FairnessEngine
	ledger      ports.Ledger
	risk        ports.RiskLimiter
	codec       ports.RoundStateCodec
	progression ports.ProgressionTracker
	leaderboard ports.LeaderboardStore
	cfg         config.GamesConfig
	log         zerolog.Logger
}

// NewGameService creates a new GameServiceImpl.
func NewGameService(
	fairness ports.FairnessEngine,
	ledger ports.Ledger,
	risk ports.RiskLimiter,
	codec ports.RoundStateCodec,
	progression ports.ProgressionTracker,
	leaderboard ports.LeaderboardStore,
	cfg config.GamesConfig,
	log zerolog.Logger,
) *GameServiceImpl {
	return &GameServiceImpl{
		fairness:    fairness,
		ledger:      ledger,
		risk:        risk,
		codec:       codec,
		progression: progression,
		leaderboard: leaderboard,
		cfg:         cfg,
		log:         log,
	}
}

// VerifyFairness re-derives the hash from a revealed seed. Exposed without
// authentication; anyone can audit a settled round.
func (s *GameServiceImpl) VerifyFairness(seed, hash string) bool {
	return s.fairness.Verify(seed, hash)
}

// openRound runs the pre-resolution steps shared by every game: bet
// validation, risk headroom, commitment, debit. On success the bet has been
// taken and the commitment is ready to derive from.
func (s *GameServiceImpl) openRound(ctx context.Context, playerID uuid.UUID, game domain.Game, bet int64) (domain.Commitment, int64, error) {
	if bet < s.cfg.MinBet {
		return domain.Commitment{}, 0, apperror.ErrInvalidAmount(fmt.Sprintf("bet must be at least %d cents", s.cfg.MinBet))
	}

	if err := s.risk.CheckHeadroom(ctx, playerID, bet); err != nil {
		return domain.Commitment{}, 0, err
	}

	commitment, err := s.fairness.Commit()
	if err != nil {
		return domain.Commitment{}, 0, apperror.InternalError(fmt.Errorf("commit: %w", err))
	}

	meta := fmt.Sprintf(`{"game":%q}`, game)
	balance, err := s.ledger.ApplyDelta(ctx, playerID, -bet, domain.TransactionKindBet, &meta)
	if err != nil {
		return domain.Commitment{}, 0, err
	}

	return commitment, balance, nil
}

// settle finalizes a resolved round: one atomic ledger settlement, then the
// best-effort post-settlement effects (XP, achievements, leaderboard).
func (s *GameServiceImpl) settle(
	ctx context.Context,
	playerID uuid.UUID,
	game domain.Game,
	bet, winAmount int64,
	outcome domain.Outcome,
	commitment domain.Commitment,
	details domain.GameResultDetails,
) (*ports.RoundResult, error) {
	result := &domain.GameResult{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Game:      game,
		BetAmount: bet,
		WinAmount: winAmount,
		Profit:    winAmount - bet,
		Outcome:   outcome,
		Seed:      commitment.Seed,
		Hash:      commitment.Hash,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	newBalance, err := s.ledger.SettleRound(ctx, result)
	if err != nil {
		return nil, err
	}

	rr := &ports.RoundResult{
		Game:       game,
		Outcome:    outcome,
		BetAmount:  bet,
		WinAmount:  winAmount,
		Profit:     result.Profit,
		NewBalance: newBalance,
		Seed:       commitment.Seed,
		Hash:       commitment.Hash,
		Details:    details,
	}

	s.afterSettle(ctx, rr, result)
	return rr, nil
}

// afterSettle applies progression and leaderboard effects. These are
// best-effort: the round is already settled and a failure here must not
// surface as a round error.
func (s *GameServiceImpl) afterSettle(ctx context.Context, rr *ports.RoundResult, result *domain.GameResult) {
	xp := result.BetAmount / xpDivisor
	if xp > 0 {
		update, err := s.progression.AddXP(ctx, result.PlayerID, xp)
		if err != nil {
			s.log.Warn().Err(err).Str("player_id", result.PlayerID.String()).Msg("xp grant failed")
		} else {
			rr.XPGained = xp
			rr.Progression = update
		}
	}

	unlocked, err := s.progression.CheckAchievements(ctx, result.PlayerID)
	if err != nil {
		s.log.Warn().Err(err).Str("player_id", result.PlayerID.String()).Msg("achievement check failed")
	} else if len(unlocked) > 0 {
		rr.Unlocked = unlocked
	}

	if err := s.leaderboard.RecordResult(ctx, result.PlayerID, result.Profit, result.Outcome.IsWinning()); err != nil {
		s.log.Warn().Err(err).Str("player_id", result.PlayerID.String()).Msg("leaderboard update failed")
	}
}
