package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolationCode = "23505"

// GameResultRepo implements ports.GameResultRepository. Results are written
// once inside the settlement transaction and never modified.
type GameResultRepo struct {
	pool Pool
}

// NewGameResultRepo creates a new GameResultRepo.
func NewGameResultRepo(pool Pool) *GameResultRepo {
	return &GameResultRepo{pool: pool}
}

// Create inserts a round record within a database transaction. Details are
// serialized to JSONB at this boundary. game_results.hash carries a unique
// index; a replayed commitment comes back as domain.ErrDuplicateRound and
// aborts the enclosing transaction.
func (r *GameResultRepo) Create(ctx context.Context, tx pgx.Tx, res *domain.GameResult) error {
	details, err := domain.EncodeDetails(res.Details)
	if err != nil {
		return fmt.Errorf("encode result details: %w", err)
	}

	query := `INSERT INTO game_results (id, player_id, game, bet_amount, win_amount, profit, outcome, seed, hash, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(ctx, query,
		res.ID, res.PlayerID, res.Game, res.BetAmount, res.WinAmount,
		res.Profit, res.Outcome, res.Seed, res.Hash, details, res.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateRound
		}
		return fmt.Errorf("insert game result: %w", err)
	}
	return nil
}

// ListByPlayer fetches a player's round history, newest first.
func (r *GameResultRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.GameResult, error) {
	query := `SELECT id, player_id, game, bet_amount, win_amount, profit, outcome, seed, hash, details, created_at
		FROM game_results WHERE player_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, playerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list game results: %w", err)
	}
	defer rows.Close()

	var results []domain.GameResult
	for rows.Next() {
		var res domain.GameResult
		var details []byte
		if err := rows.Scan(&res.ID, &res.PlayerID, &res.Game, &res.BetAmount, &res.WinAmount,
			&res.Profit, &res.Outcome, &res.Seed, &res.Hash, &details, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		res.Details, err = domain.DecodeDetails(res.Game, details)
		if err != nil {
			return nil, fmt.Errorf("decode result details: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game results: %w", err)
	}
	return results, nil
}

// DailyLoss sums a player's losing rounds since the given time, as a
// positive number of cents. Only rounds with negative profit count; wins
// never buy back headroom under the loss cap.
func (r *GameResultRepo) DailyLoss(ctx context.Context, playerID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(-SUM(profit), 0)
		FROM game_results WHERE player_id = $1 AND created_at >= $2 AND profit < 0`

	var loss int64
	err := r.pool.QueryRow(ctx, query, playerID, since).Scan(&loss)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("sum daily loss: %w", err)
	}
	return loss, nil
}

// Stats aggregates a player's lifetime results per game. Returns nil, nil
// when the player has never completed a round.
func (r *GameResultRepo) Stats(ctx context.Context, playerID uuid.UUID) (*domain.GameStats, error) {
	query := `SELECT game,
		COUNT(*),
		COUNT(*) FILTER (WHERE outcome IN ('win', 'jackpot')),
		COALESCE(MAX(win_amount) FILTER (WHERE outcome IN ('win', 'jackpot')), 0),
		COALESCE(SUM(profit), 0)
		FROM game_results WHERE player_id = $1 GROUP BY game`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("query game stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.GameStats{PlaysByGame: make(map[domain.Game]int64)}
	for rows.Next() {
		var game domain.Game
		var plays, wins, biggestWin, netProfit int64
		if err := rows.Scan(&game, &plays, &wins, &biggestWin, &netProfit); err != nil {
			return nil, fmt.Errorf("scan game stats: %w", err)
		}
		stats.TotalGames += plays
		stats.TotalWins += wins
		stats.NetProfit += netProfit
		if biggestWin > stats.BiggestWin {
			stats.BiggestWin = biggestWin
		}
		stats.PlaysByGame[game] = plays
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game stats: %w", err)
	}

	if stats.TotalGames == 0 {
		return nil, nil
	}
	return stats, nil
}
