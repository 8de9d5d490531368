package postgres

import (
	"context"
	"fmt"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
)

// AchievementRepo implements ports.AchievementRepository.
type AchievementRepo struct {
	pool Pool
}

// NewAchievementRepo creates a new AchievementRepo.
func NewAchievementRepo(pool Pool) *AchievementRepo {
	return &AchievementRepo{pool: pool}
}

// Unlock inserts the achievement if the (player, key) pair is new. The unique
// constraint makes the unlock idempotent; a duplicate insert affects zero rows
// and reports isNew false.
func (r *AchievementRepo) Unlock(ctx context.Context, a *domain.Achievement) (bool, error) {
	query := `INSERT INTO achievements (player_id, key, title, description, unlocked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player_id, key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, a.PlayerID, a.Key, a.Title, a.Description, a.UnlockedAt)
	if err != nil {
		return false, fmt.Errorf("unlock achievement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByPlayer fetches a player's unlocked achievements, oldest first.
func (r *AchievementRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	query := `SELECT player_id, key, title, description, unlocked_at
		FROM achievements WHERE player_id = $1 ORDER BY unlocked_at ASC`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.PlayerID, &a.Key, &a.Title, &a.Description, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return achievements, nil
}
