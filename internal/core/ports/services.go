package ports

import (
	"context"
	"time"

	"provably-fair-casino/internal/core/domain"

	"github.com/google/uuid"
)

// FairnessEngine generates and derives provably-fair outcomes. All derivation
// is deterministic: the same seed and domain tag always yield the same value,
// so any settled round can be re-derived by an auditor.
type FairnessEngine interface {
	// Commit produces a fresh commitment (≥256 bits of entropy). Pure
	// generation; the caller persists or publishes it.
	Commit() (domain.Commitment, error)
	// DeriveInt maps H(seed||tag) to an integer in [min, max).
	DeriveInt(seed, domainTag string, min, max int) int
	// DeriveUniform maps the seed to a float64 in [0, 1) using 52 bits.
	DeriveUniform(seed string) float64
	// PickWeighted performs a deterministic weighted choice via a
	// cumulative-weight scan in slice order.
	PickWeighted(seed string, choices []domain.WeightedChoice) string
	// Verify recomputes H(seed) and compares to hash. Malformed input
	// verifies false; it never errors.
	Verify(seed, hash string) bool
}

// Ledger is the single authority over balance mutation. Every change goes
// through one serializable per-account transaction that also appends the
// immutable ledger entry.
type Ledger interface {
	GetBalance(ctx context.Context, playerID uuid.UUID) (int64, error)
	// ApplyDelta atomically applies a signed amount. Rejects with
	// apperror.ErrInsufficientFunds when the result would be negative,
	// leaving all state untouched.
	ApplyDelta(ctx context.Context, playerID uuid.UUID, amount int64, kind domain.TransactionKind, metadata *string) (int64, error)
	// SettleRound credits the win amount (if any) and persists the round
	// record in one transaction, so a result row always matches its win
	// credit. Returns the post-settlement balance.
	SettleRound(ctx context.Context, result *domain.GameResult) (int64, error)
	GetTransactions(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	GetRoundHistory(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.GameResult, error)
	// GetDailyLoss sums negative game profit over the trailing 24 hours.
	GetDailyLoss(ctx context.Context, playerID uuid.UUID) (int64, error)
}

// RiskLimiter gates play against the rolling daily loss cap.
type RiskLimiter interface {
	// CheckHeadroom returns apperror.ErrDailyLossLimit when the bet would
	// push the trailing 24h loss over the configured cap. Must run before
	// any debit.
	CheckHeadroom(ctx context.Context, playerID uuid.UUID, betAmount int64) error
}

// RoundStateCodec protects the caller-held blackjack round state. Seal signs
// the state and hides the commitment seed; Open authenticates the state and
// recovers the seed. The core never stores round state.
type RoundStateCodec interface {
	Seal(state *domain.RoundState, seed string) error
	Open(state *domain.RoundState) (string, error)
}

// --- Game round requests/results ---

// RoundResult is the common settlement envelope returned by every game.
type RoundResult struct {
	Game        domain.Game              `json:"game"`
	Outcome     domain.Outcome           `json:"outcome"`
	BetAmount   int64                    `json:"bet_amount"`
	WinAmount   int64                    `json:"win_amount"`
	Profit      int64                    `json:"profit"`
	NewBalance  int64                    `json:"new_balance"`
	Seed        string                   `json:"seed"`
	Hash        string                   `json:"hash"`
	Details     domain.GameResultDetails `json:"details"`
	XPGained    int64                    `json:"xp_gained"`
	Progression *ProgressionUpdate       `json:"progression,omitempty"`
	Unlocked    []domain.Achievement     `json:"unlocked,omitempty"`
}

// SlotsRequest spins the three reels.
type SlotsRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
}

// RouletteRequest bets on a wheel color.
type RouletteRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
	Color     string // red, black, green
}

// CrashRequest plays one crash round with a pre-committed auto-cashout.
type CrashRequest struct {
	PlayerID    uuid.UUID
	BetAmount   int64
	AutoCashout float64
}

// DiceRequest is a roll-under bet.
type DiceRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
	Target    int // win when roll < target, target in [2, 98]
}

// PlinkoRequest drops a ball down the board.
type PlinkoRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
	Rows      int // [6, 16]
}

// LimboRequest races a target multiplier.
type LimboRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
	Target    float64 // ≥ 1.01
}

// MinesRequest picks tiles on the 5x5 board.
type MinesRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
	Bombs     int // [1, 24]
	Picks     int // [1, 25-bombs]
}

// BlackjackDealRequest starts a round.
type BlackjackDealRequest struct {
	PlayerID  uuid.UUID
	BetAmount int64
}

// BlackjackStepRequest advances a round with caller-held state.
type BlackjackStepRequest struct {
	PlayerID uuid.UUID
	State    *domain.RoundState
}

// BlackjackStepResult is returned by deal, hit and stand. Settlement fields
// are populated only when the round reached a terminal outcome (bust on hit,
// resolution on stand); until then the caller keeps carrying State.
type BlackjackStepResult struct {
	State      *domain.RoundState `json:"state"`
	Terminal   bool               `json:"terminal"`
	Settlement *RoundResult       `json:"settlement,omitempty"`
	Balance    int64              `json:"balance"`
}

// GameService exposes one entry point per game plus the public fairness
// verifier.
type GameService interface {
	PlaySlots(ctx context.Context, req SlotsRequest) (*RoundResult, error)
	PlayRoulette(ctx context.Context, req RouletteRequest) (*RoundResult, error)
	PlayCrash(ctx context.Context, req CrashRequest) (*RoundResult, error)
	PlayDice(ctx context.Context, req DiceRequest) (*RoundResult, error)
	PlayPlinko(ctx context.Context, req PlinkoRequest) (*RoundResult, error)
	PlayLimbo(ctx context.Context, req LimboRequest) (*RoundResult, error)
	PlayMines(ctx context.Context, req MinesRequest) (*RoundResult, error)
	BlackjackDeal(ctx context.Context, req BlackjackDealRequest) (*BlackjackStepResult, error)
	BlackjackHit(ctx context.Context, req BlackjackStepRequest) (*BlackjackStepResult, error)
	BlackjackStand(ctx context.Context, req BlackjackStepRequest) (*BlackjackStepResult, error)
	VerifyFairness(seed, hash string) bool
}

// --- Progression ---

// ProgressionUpdate describes the XP effect of a settled round.
type ProgressionUpdate struct {
	XP        int64 `json:"xp"`
	Level     int   `json:"level"`
	LeveledUp bool  `json:"leveled_up"`
	Bonus     int64 `json:"bonus,omitempty"` // level-up credit in cents
}

// DailyBonusResult describes a successful daily bonus claim.
type DailyBonusResult struct {
	Bonus      int64 `json:"bonus"`
	Streak     int   `json:"streak"`
	NewBalance int64 `json:"new_balance"`
}

// ProgressionTracker derives XP, levels and achievements from settled rounds
// and manages the daily bonus streak.
type ProgressionTracker interface {
	AddXP(ctx context.Context, playerID uuid.UUID, amount int64) (*ProgressionUpdate, error)
	// CheckAchievements recomputes unlocks from aggregate stats. Calling it
	// twice with unchanged stats unlocks nothing the second time.
	CheckAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error)
	ClaimDailyBonus(ctx context.Context, playerID uuid.UUID) (*DailyBonusResult, error)
	GetAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error)
	GetStreak(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error)
}

// --- Wallet (deposit/withdraw over the ledger) ---

// WalletService wraps the non-game balance operations.
type WalletService interface {
	Deposit(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error)
	Withdraw(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error)
	Balance(ctx context.Context, playerID uuid.UUID) (int64, error)
	History(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

// --- Auth (adapter-level; the core only consumes the opaque player ID) ---

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PlayerID uuid.UUID
	Username string
}

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(playerID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// RegisterRequest holds input for player registration.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Player, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry
}
