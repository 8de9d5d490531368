package postgres

import (
	"context"
	"errors"
	"fmt"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Create inserts a new balance row.
func (r *BalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	query := `INSERT INTO balances (player_id, amount, updated_at) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, b.PlayerID, b.Amount, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// Get fetches a balance without locking. Returns nil, nil when no row exists.
func (r *BalanceRepo) Get(ctx context.Context, playerID uuid.UUID) (*domain.Balance, error) {
	query := `SELECT player_id, amount, updated_at FROM balances WHERE player_id = $1`

	b, err := scanBalance(r.pool.QueryRow(ctx, query, playerID))
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// GetForUpdate fetches a balance with pessimistic locking. This MUST be
// called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Balance, error) {
	query := `SELECT player_id, amount, updated_at FROM balances WHERE player_id = $1 FOR UPDATE`

	b, err := scanBalance(tx.QueryRow(ctx, query, playerID))
	if err != nil {
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return b, nil
}

// Update sets a balance within a transaction. The caller holds the row lock.
func (r *BalanceRepo) Update(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, amount int64) error {
	query := `UPDATE balances SET amount = $1, updated_at = NOW() WHERE player_id = $2`

	tag, err := tx.Exec(ctx, query, amount, playerID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %s", playerID)
	}
	return nil
}

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	b := &domain.Balance{}
	err := row.Scan(&b.PlayerID, &b.Amount, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}
