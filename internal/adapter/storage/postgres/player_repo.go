package postgres

import (
	"context"
	"errors"
	"fmt"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepo implements ports.PlayerRepository.
type PlayerRepo struct {
	pool Pool
}

// NewPlayerRepo creates a new PlayerRepo.
func NewPlayerRepo(pool Pool) *PlayerRepo {
	return &PlayerRepo{pool: pool}
}

const playerColumns = `id, username, email, password_hash, xp, level, created_at`

// Create inserts a new player account.
func (r *PlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	query := `INSERT INTO players (id, username, email, password_hash, xp, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Username, p.Email, p.PasswordHash, p.XP, p.Level, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// GetByID fetches a player by UUID (without locking).
func (r *PlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	return p, nil
}

// GetByUsername fetches a player by username. Returns nil, nil when no such
// player exists.
func (r *PlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("get player by username: %w", err)
	}
	return p, nil
}

// GetForUpdate fetches a player with pessimistic locking. This MUST be called
// within a transaction.
func (r *PlayerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1 FOR UPDATE`

	p, err := scanPlayer(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get player for update: %w", err)
	}
	return p, nil
}

// UpdateProgress updates a player's XP and level within a transaction.
func (r *PlayerRepo) UpdateProgress(ctx context.Context, tx pgx.Tx, id uuid.UUID, xp int64, level int) error {
	query := `UPDATE players SET xp = $1, level = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, xp, level, id)
	if err != nil {
		return fmt.Errorf("update player progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("player not found: %s", id)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	p := &domain.Player{}
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.XP, &p.Level, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
