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
	// minWalletAmount is the smallest deposit or withdrawal, in cents.
	minWalletAmount = 1000
	// maxDepositAmount caps a single deposit, in cents.
	maxDepositAmount = 100_000_000
)

// WalletServiceImpl implements ports.WalletService. It validates amounts and
// delegates every mutation to the ledger's atomic primitive.
type WalletServiceImpl struct {
	ledger ports.Ledger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(ledger ports.Ledger) *WalletServiceImpl {
	return &WalletServiceImpl{ledger: ledger}
}

// Deposit credits the player's balance.
func (s *WalletServiceImpl) Deposit(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error) {
	if amount < minWalletAmount || amount > maxDepositAmount {
		return 0, apperror.ErrInvalidAmount("deposit amount out of range")
	}
	return s.ledger.ApplyDelta(ctx, playerID, amount, domain.TransactionKindDeposit, nil)
}

// Withdraw debits the player's balance. Overdrafts come back as
// insufficient funds from the ledger.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error) {
	if amount < minWalletAmount {
		return 0, apperror.ErrInvalidAmount(fmt.Sprintf("withdraw amount must be at least %d cents", minWalletAmount))
	}
	return s.ledger.ApplyDelta(ctx, playerID, -amount, domain.TransactionKindWithdraw, nil)
}

// Balance returns the current balance in cents.
func (s *WalletServiceImpl) Balance(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return s.ledger.GetBalance(ctx, playerID)
}

// History lists ledger entries, most recent first.
func (s *WalletServiceImpl) History(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	return s.ledger.GetTransactions(ctx, playerID, limit, offset)
}
