package redis

import (
	"context"
	"errors"
	"fmt"

	"provably-fair-casino/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	profitKey     = "leaderboard:profit"
	winsKeyPrefix = "leaderboard:wins:"
)

// LeaderboardStore implements ports.LeaderboardStore on a Redis sorted set.
// It holds derived aggregates only; the game_results table stays the source
// of truth and the set can be rebuilt from it.
type LeaderboardStore struct {
	client *goredis.Client
}

// NewLeaderboardStore creates a Redis-backed leaderboard store.
func NewLeaderboardStore(client *goredis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

// RecordResult folds one settled round into the aggregates.
func (s *LeaderboardStore) RecordResult(ctx context.Context, playerID uuid.UUID, profit int64, won bool) error {
	pipe := s.client.Pipeline()
	pipe.ZIncrBy(ctx, profitKey, float64(profit), playerID.String())
	if won {
		pipe.Incr(ctx, winsKeyPrefix+playerID.String())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record leaderboard result: %w", err)
	}
	return nil
}

// TopByProfit returns the n most profitable players, best first.
func (s *LeaderboardStore) TopByProfit(ctx context.Context, n int) ([]ports.LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}

	members, err := s.client.ZRevRangeWithScores(ctx, profitKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard range: %w", err)
	}

	entries := make([]ports.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		playerID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		entries = append(entries, ports.LeaderboardEntry{
			PlayerID:  playerID,
			NetProfit: int64(m.Score),
		})
	}
	return entries, nil
}

// Wins returns the player's running win count.
func (s *LeaderboardStore) Wins(ctx context.Context, playerID uuid.UUID) (int64, error) {
	wins, err := s.client.Get(ctx, winsKeyPrefix+playerID.String()).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("leaderboard wins: %w", err)
	}
	return wins, nil
}
