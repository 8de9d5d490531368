package ports

import (
	"context"
	"time"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepository defines persistence operations for player accounts.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic
// locking.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error)
	UpdateProgress(ctx context.Context, tx pgx.Tx, id uuid.UUID, xp int64, level int) error
}

// BalanceRepository defines persistence operations for wallet balances.
// The balance row is only ever written under a row lock held by the ledger.
type BalanceRepository interface {
	Create(ctx context.Context, balance *domain.Balance) error
	Get(ctx context.Context, playerID uuid.UUID) (*domain.Balance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Balance, error)
	Update(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, amount int64) error
}

// TransactionRepository defines persistence for the append-only ledger log.
// Entries are created once inside the ledger's transaction and never updated.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

// GameResultRepository defines persistence for immutable round records.
type GameResultRepository interface {
	Create(ctx context.Context, tx pgx.Tx, result *domain.GameResult) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.GameResult, error)
	// DailyLoss sums the negative profit of results since the given time,
	// returned as a positive number.
	DailyLoss(ctx context.Context, playerID uuid.UUID, since time.Time) (int64, error)
	Stats(ctx context.Context, playerID uuid.UUID) (*domain.GameStats, error)
}

// AchievementRepository defines persistence for achievement unlocks.
type AchievementRepository interface {
	// Unlock inserts the achievement if the (player, key) pair is new.
	// Returns false with no error when it was already unlocked.
	Unlock(ctx context.Context, achievement *domain.Achievement) (bool, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error)
}

// StreakRepository defines persistence for daily bonus streaks.
type StreakRepository interface {
	// Get returns nil, nil when the player has never claimed.
	Get(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error)
	Upsert(ctx context.Context, streak *domain.DailyStreak) error
}

// LeaderboardEntry is one row of the net-profit leaderboard.
type LeaderboardEntry struct {
	PlayerID  uuid.UUID
	NetProfit int64
}

// LeaderboardStore keeps running leaderboard aggregates (Redis sorted set).
// Writes are best-effort after settlement; the postgres results table stays
// the source of truth.
type LeaderboardStore interface {
	RecordResult(ctx context.Context, playerID uuid.UUID, profit int64, won bool) error
	TopByProfit(ctx context.Context, n int) ([]LeaderboardEntry, error)
	Wins(ctx context.Context, playerID uuid.UUID) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
