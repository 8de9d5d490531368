package postgres

import (
	"context"
	"errors"
	"fmt"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StreakRepo implements ports.StreakRepository.
type StreakRepo struct {
	pool Pool
}

// NewStreakRepo creates a new StreakRepo.
func NewStreakRepo(pool Pool) *StreakRepo {
	return &StreakRepo{pool: pool}
}

// Get fetches a player's bonus streak. Returns nil, nil when the player has
// never claimed.
func (r *StreakRepo) Get(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error) {
	query := `SELECT player_id, current_streak, last_claim FROM daily_streaks WHERE player_id = $1`

	s := &domain.DailyStreak{}
	err := r.pool.QueryRow(ctx, query, playerID).Scan(&s.PlayerID, &s.CurrentStreak, &s.LastClaim)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return s, nil
}

// Upsert writes the streak row, replacing any previous claim state.
func (r *StreakRepo) Upsert(ctx context.Context, s *domain.DailyStreak) error {
	query := `INSERT INTO daily_streaks (player_id, current_streak, last_claim)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE SET current_streak = $2, last_claim = $3`

	_, err := r.pool.Exec(ctx, query, s.PlayerID, s.CurrentStreak, s.LastClaim)
	if err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	return nil
}
