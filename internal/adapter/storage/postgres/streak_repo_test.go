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

func TestStreakRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStreakRepo(mock)
	playerID := uuid.New()
	lastClaim := time.Now().UTC().Add(-30 * time.Hour).Truncate(time.Microsecond)

	rows := pgxmock.NewRows([]string{"player_id", "current_streak", "last_claim"}).
		AddRow(playerID, 3, lastClaim)

	mock.ExpectQuery("SELECT .+ FROM daily_streaks WHERE player_id").
		WithArgs(playerID).
		WillReturnRows(rows)

	streak, err := repo.Get(context.Background(), playerID)
	require.NoError(t, err)
	require.NotNil(t, streak)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, lastClaim, streak.LastClaim)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStreakRepo_Get_NeverClaimed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStreakRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM daily_streaks WHERE player_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"player_id", "current_streak", "last_claim"}))

	streak, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, streak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStreakRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStreakRepo(mock)
	s := &domain.DailyStreak{
		PlayerID:      uuid.New(),
		CurrentStreak: 4,
		LastClaim:     time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO daily_streaks").
		WithArgs(s.PlayerID, s.CurrentStreak, s.LastClaim).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
