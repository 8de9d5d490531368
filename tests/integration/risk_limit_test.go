package integration

import (
	"context"
	"testing"
	"time"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/service"
	"provably-fair-casino/pkg/apperror"
	"provably-fair-casino/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertIntegrationAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

func seedResult(t *testing.T, repo *inMemoryGameResultRepo, playerID uuid.UUID, bet, win int64) {
	t.Helper()

	outcome := domain.OutcomeLoss
	if win > bet {
		outcome = domain.OutcomeWin
	}
	require.NoError(t, repo.Create(context.Background(), nil, &domain.GameResult{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Game:      domain.GameDice,
		BetAmount: bet,
		WinAmount: win,
		Profit:    win - bet,
		Outcome:   outcome,
		Hash:      uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}))
}

func TestRiskLimit_WinsDoNotBuyBackLossHeadroom(t *testing.T) {
	balances := newInMemoryBalanceRepo()
	txRepo := newInMemoryTransactionRepo()
	resultRepo := newInMemoryGameResultRepo()
	transactor := newInMemoryTransactor()
	log := logger.New("error", false)

	playerID := uuid.New()
	ledger := service.NewLedgerService(balances, txRepo, resultRepo, transactor, log)
	risk := service.NewRiskService(ledger, 600, log)

	ctx := context.Background()

	// A big win followed by losses totalling 800 against a 600 cap. The win
	// must not offset the losses.
	seedResult(t, resultRepo, playerID, 100, 1000) // profit +900
	seedResult(t, resultRepo, playerID, 500, 0)    // profit -500
	seedResult(t, resultRepo, playerID, 300, 0)    // profit -300

	loss, err := ledger.GetDailyLoss(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(800), loss)

	err = risk.CheckHeadroom(ctx, playerID, 100)
	require.Error(t, err)
	assertIntegrationAppError(t, err, "RISK_001")
}

func TestRiskLimit_OldLossesFallOutOfWindow(t *testing.T) {
	balances := newInMemoryBalanceRepo()
	txRepo := newInMemoryTransactionRepo()
	resultRepo := newInMemoryGameResultRepo()
	transactor := newInMemoryTransactor()
	log := logger.New("error", false)

	playerID := uuid.New()
	ledger := service.NewLedgerService(balances, txRepo, resultRepo, transactor, log)
	risk := service.NewRiskService(ledger, 600, log)

	ctx := context.Background()

	// A loss older than 24 hours no longer counts against the cap.
	require.NoError(t, resultRepo.Create(ctx, nil, &domain.GameResult{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Game:      domain.GameDice,
		BetAmount: 800,
		WinAmount: 0,
		Profit:    -800,
		Outcome:   domain.OutcomeLoss,
		Hash:      uuid.NewString(),
		CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
	}))

	loss, err := ledger.GetDailyLoss(ctx, playerID)
	require.NoError(t, err)
	assert.Zero(t, loss)

	assert.NoError(t, risk.CheckHeadroom(ctx, playerID, 100))
}
