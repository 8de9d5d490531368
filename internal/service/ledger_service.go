package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// dailyWindow is the trailing window for loss accounting.
const dailyWindow = 24 * time.Hour

// LedgerService implements ports.Ledger. Every mutation runs as one
// serializable transaction holding the player's balance row lock, so
// concurrent rounds for the same player serialize while different players
// never block each other.
type LedgerService struct {
	balanceRepo ports.BalanceRepository
	txRepo      ports.TransactionRepository
	resultRepo  ports.GameResultRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	balanceRepo ports.BalanceRepository,
	txRepo ports.TransactionRepository,
	resultRepo ports.GameResultRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		balanceRepo: balanceRepo,
		txRepo:      txRepo,
		resultRepo:  resultRepo,
		transactor:  transactor,
		log:         log,
	}
}

// GetBalance returns the current balance in cents.
func (s *LedgerService) GetBalance(ctx context.Context, playerID uuid.UUID) (int64, error) {
	bal, err := s.balanceRepo.Get(ctx, playerID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	if bal == nil {
		return 0, apperror.ErrAccountNotFound()
	}
	return bal.Amount, nil
}

// ApplyDelta is the single atomic mutation primitive: lock row, check
// solvency, write balance, append the immutable ledger entry, commit.
func (s *LedgerService) ApplyDelta(ctx context.Context, playerID uuid.UUID, amount int64, kind domain.TransactionKind, metadata *string) (int64, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bal, err := s.balanceRepo.GetForUpdate(ctx, dbTx, playerID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if bal == nil {
		return 0, apperror.ErrAccountNotFound()
	}

	newBalance := bal.Amount + amount
	if newBalance < 0 {
		return 0, apperror.ErrInsufficientFunds()
	}

	if err := s.balanceRepo.Update(ctx, dbTx, playerID, newBalance); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.Transaction{
		ID:           uuid.New(),
		PlayerID:     playerID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: newBalance,
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("append transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Debug().
		Str("player_id", playerID.String()).
		Str("kind", string(kind)).
		Int64("amount", amount).
		Int64("balance_after", newBalance).
		Msg("ledger delta applied")

	return newBalance, nil
}

// SettleRound applies a round's terminal effects in one transaction: the win
// credit (when any) and the immutable result record always land together.
func (s *LedgerService) SettleRound(ctx context.Context, result *domain.GameResult) (int64, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bal, err := s.balanceRepo.GetForUpdate(ctx, dbTx, result.PlayerID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if bal == nil {
		return 0, apperror.ErrAccountNotFound()
	}

	// The result row goes in before any credit. Its hash is unique, so a
	// replayed round aborts here and the commitment can never settle twice.
	if err := s.resultRepo.Create(ctx, dbTx, result); err != nil {
		if errors.Is(err, domain.ErrDuplicateRound) {
			return 0, apperror.ErrInvalidRoundState()
		}
		return 0, apperror.InternalError(fmt.Errorf("persist game result: %w", err))
	}

	newBalance := bal.Amount
	if result.WinAmount > 0 {
		newBalance += result.WinAmount
		if err := s.balanceRepo.Update(ctx, dbTx, result.PlayerID, newBalance); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("credit win: %w", err))
		}

		meta := fmt.Sprintf(`{"game":%q,"outcome":%q}`, result.Game, result.Outcome)
		txn := &domain.Transaction{
			ID:           uuid.New(),
			PlayerID:     result.PlayerID,
			Kind:         domain.TransactionKindWin,
			Amount:       result.WinAmount,
			BalanceAfter: newBalance,
			Metadata:     &meta,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("append win transaction: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit settlement: %w", err))
	}

	s.log.Info().
		Str("player_id", result.PlayerID.String()).
		Str("game", string(result.Game)).
		Str("outcome", string(result.Outcome)).
		Int64("bet", result.BetAmount).
		Int64("win", result.WinAmount).
		Msg("round settled")

	return newBalance, nil
}

// GetTransactions returns ledger entries, most recent first.
func (s *LedgerService) GetTransactions(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.txRepo.ListByPlayer(ctx, playerID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// GetRoundHistory returns settled round records, most recent first.
func (s *LedgerService) GetRoundHistory(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.GameResult, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	results, err := s.resultRepo.ListByPlayer(ctx, playerID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list round history: %w", err))
	}
	return results, nil
}

// GetDailyLoss sums the negative game profit over the trailing 24 hours.
// Deposits and withdrawals never count against the loss limit.
func (s *LedgerService) GetDailyLoss(ctx context.Context, playerID uuid.UUID) (int64, error) {
	since := time.Now().UTC().Add(-dailyWindow)
	loss, err := s.resultRepo.DailyLoss(ctx, playerID, since)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("daily loss: %w", err))
	}
	return loss, nil
}
