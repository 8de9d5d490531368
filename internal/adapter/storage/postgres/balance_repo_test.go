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

func balanceRow(b *domain.Balance) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"player_id", "amount", "updated_at"}).
		AddRow(b.PlayerID, b.Amount, b.UpdatedAt)
}

func TestBalanceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := &domain.Balance{PlayerID: uuid.New(), Amount: 100000, UpdatedAt: time.Now().UTC()}

	mock.ExpectExec("INSERT INTO balances").
		WithArgs(b.PlayerID, b.Amount, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := &domain.Balance{PlayerID: uuid.New(), Amount: 42000, UpdatedAt: time.Now().UTC()}

	mock.ExpectQuery("SELECT .+ FROM balances WHERE player_id").
		WithArgs(b.PlayerID).
		WillReturnRows(balanceRow(b))

	result, err := repo.Get(context.Background(), b.PlayerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(42000), result.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM balances WHERE player_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"player_id", "amount", "updated_at"}))

	result, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	b := &domain.Balance{PlayerID: uuid.New(), Amount: 42000, UpdatedAt: time.Now().UTC()}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM balances WHERE player_id .+ FOR UPDATE").
		WithArgs(b.PlayerID).
		WillReturnRows(balanceRow(b))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, b.PlayerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, b.PlayerID, result.PlayerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)
	playerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE balances SET amount").
		WithArgs(int64(55000), playerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, playerID, 55000)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBalanceRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE balances SET amount").
		WithArgs(int64(100), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, uuid.New(), 100)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
