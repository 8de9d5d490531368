package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Round       RoundConfig       `mapstructure:"round"`
	Games       GamesConfig       `mapstructure:"games"`
	Progression ProgressionConfig `mapstructure:"progression"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// RoundConfig holds the keys protecting the caller-held blackjack round state.
type RoundConfig struct {
	StateSigningKey string `mapstructure:"state_signing_key"` // HMAC-SHA256 key
	SeedSealingKey  string `mapstructure:"seed_sealing_key"`  // 32-byte hex key for AES-256-GCM
}

// GamesConfig holds bet limits and per-game house edges. Monetary values are
// in cents; edges are fractions clamped to [0, 0.2] at load time.
type GamesConfig struct {
	MinBet          int64   `mapstructure:"min_bet"`
	DailyLossCap    int64   `mapstructure:"daily_loss_cap"` // 0 disables the check
	CrashHouseEdge  float64 `mapstructure:"crash_house_edge"`
	CrashMaxCashout float64 `mapstructure:"crash_max_cashout"`
	DiceHouseEdge   float64 `mapstructure:"dice_house_edge"`
	PlinkoHouseEdge float64 `mapstructure:"plinko_house_edge"`
	LimboHouseEdge  float64 `mapstructure:"limbo_house_edge"`
	LimboMaxTarget  float64 `mapstructure:"limbo_max_target"`
	MinesHouseEdge  float64 `mapstructure:"mines_house_edge"`
}

type ProgressionConfig struct {
	DailyBonusBase int64 `mapstructure:"daily_bonus_base"` // cents
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PFC_.
// Nested keys use underscore: PFC_DATABASE_HOST, PFC_GAMES_MIN_BET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "casino")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "provably-fair-casino")
	v.SetDefault("round.state_signing_key", "")
	v.SetDefault("round.seed_sealing_key", "")
	v.SetDefault("games.min_bet", 1000) // $10
	v.SetDefault("games.daily_loss_cap", 0)
	v.SetDefault("games.crash_house_edge", 0.01)
	v.SetDefault("games.crash_max_cashout", 100.0)
	v.SetDefault("games.dice_house_edge", 0.01)
	v.SetDefault("games.plinko_house_edge", 0.02)
	v.SetDefault("games.limbo_house_edge", 0.01)
	v.SetDefault("games.limbo_max_target", 1000.0)
	v.SetDefault("games.mines_house_edge", 0.02)
	v.SetDefault("progression.daily_bonus_base", 50000) // $500
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PFC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PFC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Games.clampEdges()

	return &cfg, nil
}

// clampEdges keeps every house edge inside [0, 0.2], matching the bounds the
// payout formulas were designed for.
func (g *GamesConfig) clampEdges() {
	clamp := func(e float64) float64 {
		if e < 0 {
			return 0
		}
		if e > 0.2 {
			return 0.2
		}
		return e
	}
	g.CrashHouseEdge = clamp(g.CrashHouseEdge)
	g.DiceHouseEdge = clamp(g.DiceHouseEdge)
	g.PlinkoHouseEdge = clamp(g.PlinkoHouseEdge)
	g.LimboHouseEdge = clamp(g.LimboHouseEdge)
	g.MinesHouseEdge = clamp(g.MinesHouseEdge)
}
