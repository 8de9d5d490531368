package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Player Repo ---

type inMemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

func newInMemoryPlayerRepo() *inMemoryPlayerRepo {
	return &inMemoryPlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (r *inMemoryPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPlayerRepo) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPlayerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPlayerRepo) UpdateProgress(ctx context.Context, tx pgx.Tx, id uuid.UUID, xp int64, level int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player not found")
	}
	p.XP = xp
	p.Level = level
	return nil
}

// --- In-Memory Balance Repo ---

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[uuid.UUID]*domain.Balance
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{balances: make(map[uuid.UUID]*domain.Balance)}
}

func (r *inMemoryBalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.balances[b.PlayerID] = &cp
	return nil
}

func (r *inMemoryBalanceRepo) Get(ctx context.Context, playerID uuid.UUID) (*domain.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[playerID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Balance, error) {
	return r.Get(ctx, playerID)
}

func (r *inMemoryBalanceRepo) Update(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[playerID]
	if !ok {
		return fmt.Errorf("balance not found")
	}
	b.Amount = amount
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	entries []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *t)
	return nil
}

func (r *inMemoryTransactionRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.Transaction
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].PlayerID == playerID {
			matched = append(matched, r.entries[i])
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// all returns a snapshot of every entry, used for conservation checks.
func (r *inMemoryTransactionRepo) all() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.entries))
	copy(out, r.entries)
	return out
}

// --- In-Memory Game Result Repo ---

type inMemoryGameResultRepo struct {
	mu         sync.RWMutex
	results    []domain.GameResult
	seenHashes map[string]bool
}

func newInMemoryGameResultRepo() *inMemoryGameResultRepo {
	return &inMemoryGameResultRepo{seenHashes: make(map[string]bool)}
}

// Create mirrors the unique index on game_results.hash: one result per
// commitment, ever.
func (r *inMemoryGameResultRepo) Create(ctx context.Context, tx pgx.Tx, res *domain.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seenHashes[res.Hash] {
		return domain.ErrDuplicateRound
	}
	r.seenHashes[res.Hash] = true
	r.results = append(r.results, *res)
	return nil
}

func (r *inMemoryGameResultRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.GameResult
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].PlayerID == playerID {
			matched = append(matched, r.results[i])
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *inMemoryGameResultRepo) DailyLoss(ctx context.Context, playerID uuid.UUID, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var loss int64
	for _, res := range r.results {
		if res.PlayerID == playerID && !res.CreatedAt.Before(since) && res.Profit < 0 {
			loss -= res.Profit
		}
	}
	return loss, nil
}

func (r *inMemoryGameResultRepo) Stats(ctx context.Context, playerID uuid.UUID) (*domain.GameStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.GameStats{PlaysByGame: make(map[domain.Game]int64)}
	for _, res := range r.results {
		if res.PlayerID != playerID {
			continue
		}
		stats.TotalGames++
		stats.NetProfit += res.Profit
		stats.PlaysByGame[res.Game]++
		if res.Outcome.IsWinning() {
			stats.TotalWins++
			if res.WinAmount > stats.BiggestWin {
				stats.BiggestWin = res.WinAmount
			}
		}
	}
	if stats.TotalGames == 0 {
		return nil, nil
	}
	return stats, nil
}

// --- In-Memory Achievement Repo ---

type achievementKey struct {
	playerID uuid.UUID
	key      string
}

type inMemoryAchievementRepo struct {
	mu       sync.RWMutex
	unlocked map[achievementKey]domain.Achievement
}

func newInMemoryAchievementRepo() *inMemoryAchievementRepo {
	return &inMemoryAchievementRepo{unlocked: make(map[achievementKey]domain.Achievement)}
}

func (r *inMemoryAchievementRepo) Unlock(ctx context.Context, a *domain.Achievement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := achievementKey{playerID: a.PlayerID, key: a.Key}
	if _, ok := r.unlocked[k]; ok {
		return false, nil
	}
	r.unlocked[k] = *a
	return true, nil
}

func (r *inMemoryAchievementRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Achievement
	for k, a := range r.unlocked {
		if k.playerID == playerID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- In-Memory Streak Repo ---

type inMemoryStreakRepo struct {
	mu      sync.RWMutex
	streaks map[uuid.UUID]*domain.DailyStreak
}

func newInMemoryStreakRepo() *inMemoryStreakRepo {
	return &inMemoryStreakRepo{streaks: make(map[uuid.UUID]*domain.DailyStreak)}
}

func (r *inMemoryStreakRepo) Get(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.streaks[playerID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemoryStreakRepo) Upsert(ctx context.Context, s *domain.DailyStreak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.streaks[s.PlayerID] = &cp
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes all transactions behind one mutex, standing
// in for the row locks the postgres adapter takes with FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: func() { t.mu.Unlock() }}, nil
}

// memTx is a pgx.Tx that releases the transactor lock on commit or rollback.
type memTx struct {
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

var _ ports.DBTransactor = (*inMemoryTransactor)(nil)
