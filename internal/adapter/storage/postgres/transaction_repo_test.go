package postgres

import (
	"context"
	"testing"
	"time"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(playerID uuid.UUID) *domain.Transaction {
	meta := `{"game":"dice"}`
	return &domain.Transaction{
		ID:           uuid.New(),
		PlayerID:     playerID,
		Kind:         domain.TransactionKindBet,
		Amount:       -10000,
		BalanceAfter: 90000,
		Metadata:     &meta,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumnNames() []string {
	return []string{"id", "player_id", "kind", "amount", "balance_after", "metadata", "created_at"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.PlayerID, txn.Kind, txn.Amount, txn.BalanceAfter, txn.Metadata, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByPlayer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	playerID := uuid.New()
	first := newTestTransaction(playerID)
	second := newTestTransaction(playerID)
	second.Kind = domain.TransactionKindWin
	second.Amount = 20000
	second.BalanceAfter = 110000

	rows := pgxmock.NewRows(transactionColumnNames()).
		AddRow(second.ID, second.PlayerID, second.Kind, second.Amount, second.BalanceAfter, second.Metadata, second.CreatedAt).
		AddRow(first.ID, first.PlayerID, first.Kind, first.Amount, first.BalanceAfter, first.Metadata, first.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE player_id .+ ORDER BY created_at DESC").
		WithArgs(playerID, 50, 0).
		WillReturnRows(rows)

	result, err := repo.ListByPlayer(context.Background(), playerID, 50, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.TransactionKindWin, result[0].Kind)
	assert.Equal(t, int64(-10000), result[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByPlayer_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE player_id").
		WithArgs(pgxmock.AnyArg(), 50, 0).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()))

	result, err := repo.ListByPlayer(context.Background(), uuid.New(), 50, 0)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
