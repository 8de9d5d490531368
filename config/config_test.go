package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "casino", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "provably-fair-casino", cfg.JWT.Issuer)

	assert.Equal(t, int64(1000), cfg.Games.MinBet)
	assert.Equal(t, int64(0), cfg.Games.DailyLossCap)
	assert.InDelta(t, 0.01, cfg.Games.CrashHouseEdge, 1e-9)
	assert.InDelta(t, 100.0, cfg.Games.CrashMaxCashout, 1e-9)
	assert.InDelta(t, 0.02, cfg.Games.MinesHouseEdge, 1e-9)
	assert.InDelta(t, 1000.0, cfg.Games.LimboMaxTarget, 1e-9)

	assert.Equal(t, int64(50000), cfg.Progression.DailyBonusBase)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
database:
  dbname: "casino_test"
games:
  min_bet: 500
  daily_loss_cap: 100000
  dice_house_edge: 0.015
progression:
  daily_bonus_base: 25000
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "casino_test", cfg.Database.DBName)
	assert.Equal(t, int64(500), cfg.Games.MinBet)
	assert.Equal(t, int64(100000), cfg.Games.DailyLossCap)
	assert.InDelta(t, 0.015, cfg.Games.DiceHouseEdge, 1e-9)
	assert.Equal(t, int64(25000), cfg.Progression.DailyBonusBase)

	// Untouched keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.InDelta(t, 0.01, cfg.Games.CrashHouseEdge, 1e-9)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PFC_SERVER_PORT", "7070")
	t.Setenv("PFC_GAMES_MIN_BET", "2000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, int64(2000), cfg.Games.MinBet)
}

func TestLoad_ClampsHouseEdges(t *testing.T) {
	t.Setenv("PFC_GAMES_DICE_HOUSE_EDGE", "0.5")
	t.Setenv("PFC_GAMES_LIMBO_HOUSE_EDGE", "-0.1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 0.2, cfg.Games.DiceHouseEdge, 1e-9)
	assert.InDelta(t, 0.0, cfg.Games.LimboHouseEdge, 1e-9)
}

func TestDSN_Format(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "casino",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/casino?sslmode=disable", d.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", r.Addr())
}
