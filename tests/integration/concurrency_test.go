package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/internal/service"
	"provably-fair-casino/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProgression ignores XP and achievements so round tests exercise the
// ledger path without the aggregate stats scan.
type stubProgression struct{}

func (stubProgression) AddXP(ctx context.Context, playerID uuid.UUID, amount int64) (*ports.ProgressionUpdate, error) {
	return &ports.ProgressionUpdate{XP: amount, Level: 1}, nil
}
func (stubProgression) CheckAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	return nil, nil
}
func (stubProgression) ClaimDailyBonus(ctx context.Context, playerID uuid.UUID) (*ports.DailyBonusResult, error) {
	return nil, nil
}
func (stubProgression) GetAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	return nil, nil
}
func (stubProgression) GetStreak(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error) {
	return nil, nil
}

type stubLeaderboard struct{}

func (stubLeaderboard) RecordResult(ctx context.Context, playerID uuid.UUID, profit int64, won bool) error {
	return nil
}
func (stubLeaderboard) TopByProfit(ctx context.Context, n int) ([]ports.LeaderboardEntry, error) {
	return nil, nil
}
func (stubLeaderboard) Wins(ctx context.Context, playerID uuid.UUID) (int64, error) {
	return 0, nil
}

// ledgerFixture wires a real LedgerService over the in-memory repos.
type ledgerFixture struct {
	ledger   *service.LedgerService
	balances *inMemoryBalanceRepo
	txRepo   *inMemoryTransactionRepo
	playerID uuid.UUID
}

func newLedgerFixture(t *testing.T, initialBalance int64) *ledgerFixture {
	t.Helper()

	balances := newInMemoryBalanceRepo()
	txRepo := newInMemoryTransactionRepo()
	resultRepo := newInMemoryGameResultRepo()
	transactor := newInMemoryTransactor()
	log := logger.New("error", false)

	playerID := uuid.New()
	require.NoError(t, balances.Create(context.Background(), &domain.Balance{
		PlayerID: playerID,
		Amount:   initialBalance,
	}))

	return &ledgerFixture{
		ledger:   service.NewLedgerService(balances, txRepo, resultRepo, transactor, log),
		balances: balances,
		txRepo:   txRepo,
		playerID: playerID,
	}
}

// assertConservation checks that replaying the ledger reproduces the stored
// balance exactly.
func (f *ledgerFixture) assertConservation(t *testing.T, initialBalance int64) {
	t.Helper()

	balance, err := f.ledger.GetBalance(context.Background(), f.playerID)
	require.NoError(t, err)

	sum := initialBalance
	for _, txn := range f.txRepo.all() {
		sum += txn.Amount
	}
	assert.Equal(t, balance, sum, "balance must equal initial plus sum of ledger entries")
	assert.GreaterOrEqual(t, balance, int64(0), "balance must never go negative")
}

func TestConcurrent_WithdrawalsNeverOverdraw(t *testing.T) {
	const (
		initial    = int64(10000)
		withdrawal = int64(1000)
		attempts   = 50
	)

	f := newLedgerFixture(t, initial)

	var wg sync.WaitGroup
	var succeeded atomic.Int64
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.ApplyDelta(context.Background(), f.playerID, -withdrawal,
				domain.TransactionKindWithdraw, nil)
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	// Only ten withdrawals fit into the initial balance.
	assert.Equal(t, int64(10), succeeded.Load())

	balance, err := f.ledger.GetBalance(context.Background(), f.playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	f.assertConservation(t, initial)
}

func TestConcurrent_MixedDepositsAndWithdrawals(t *testing.T) {
	const initial = int64(50000)

	f := newLedgerFixture(t, initial)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			amount := int64(1000)
			kind := domain.TransactionKindDeposit
			if n%2 == 0 {
				amount = -amount
				kind = domain.TransactionKindWithdraw
			}
			f.ledger.ApplyDelta(context.Background(), f.playerID, amount, kind, nil) //nolint:errcheck
		}(i)
	}
	wg.Wait()

	f.assertConservation(t, initial)
}

func TestConcurrent_SettledRoundsConserveMoney(t *testing.T) {
	const initial = int64(1000000)

	balances := newInMemoryBalanceRepo()
	txRepo := newInMemoryTransactionRepo()
	resultRepo := newInMemoryGameResultRepo()
	transactor := newInMemoryTransactor()
	log := logger.New("error", false)

	playerID := uuid.New()
	require.NoError(t, balances.Create(context.Background(), &domain.Balance{
		PlayerID: playerID,
		Amount:   initial,
	}))

	ledger := service.NewLedgerService(balances, txRepo, resultRepo, transactor, log)
	risk := service.NewRiskService(ledger, 0, log)
	fairness := service.NewFairnessService()
	codec, err := service.NewRoundStateCodecService(testSealingKey, testSigningKey)
	require.NoError(t, err)

	gameSvc := service.NewGameService(fairness, ledger, risk, codec, stubProgression{}, stubLeaderboard{},
		testGamesConfig(), log)

	const (
		workers        = 10
		roundsPerGorou = 20
	)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < roundsPerGorou; j++ {
				_, err := gameSvc.PlayDice(context.Background(), ports.DiceRequest{
					PlayerID:  playerID,
					BetAmount: 1000,
					Target:    50,
				})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	balance, err := ledger.GetBalance(context.Background(), playerID)
	require.NoError(t, err)

	sum := initial
	for _, txn := range txRepo.all() {
		sum += txn.Amount
	}
	assert.Equal(t, balance, sum)
	assert.GreaterOrEqual(t, balance, int64(0))

	// Every round left exactly one result row, and each winning result has a
	// matching win entry in the ledger.
	results, err := resultRepo.ListByPlayer(context.Background(), playerID, 500, 0)
	require.NoError(t, err)
	assert.Len(t, results, workers*roundsPerGorou)

	var winEntries int
	for _, txn := range txRepo.all() {
		if txn.Kind == domain.TransactionKindWin {
			winEntries++
		}
	}
	var winningRounds int
	for _, res := range results {
		if res.Outcome.IsWinning() {
			winningRounds++
		}
	}
	assert.Equal(t, winningRounds, winEntries)
}
