package dto

import "provably-fair-casino/internal/core/domain"

// RegisterRequest is the request body for player registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32,safe_id"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for player login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// --- Game round requests ---

// SlotsRequest is the request body for a slots spin.
type SlotsRequest struct {
	BetAmount int64 `json:"bet_amount" binding:"required,gt=0"`
}

// RouletteRequest is the request body for a roulette bet.
type RouletteRequest struct {
	BetAmount int64  `json:"bet_amount" binding:"required,gt=0"`
	Color     string `json:"color" binding:"required,oneof=red black green"`
}

// CrashRequest is the request body for a crash round.
type CrashRequest struct {
	BetAmount   int64   `json:"bet_amount" binding:"required,gt=0"`
	AutoCashout float64 `json:"auto_cashout" binding:"required,gt=1"`
}

// DiceRequest is the request body for a roll-under dice bet.
type DiceRequest struct {
	BetAmount int64 `json:"bet_amount" binding:"required,gt=0"`
	Target    int   `json:"target" binding:"required"`
}

// PlinkoRequest is the request body for a plinko drop.
type PlinkoRequest struct {
	BetAmount int64 `json:"bet_amount" binding:"required,gt=0"`
	Rows      int   `json:"rows" binding:"required"`
}

// LimboRequest is the request body for a limbo round.
type LimboRequest struct {
	BetAmount int64   `json:"bet_amount" binding:"required,gt=0"`
	Target    float64 `json:"target" binding:"required,gt=1"`
}

// MinesRequest is the request body for a mines round.
type MinesRequest struct {
	BetAmount int64 `json:"bet_amount" binding:"required,gt=0"`
	Bombs     int   `json:"bombs" binding:"required"`
	Picks     int   `json:"picks" binding:"required"`
}

// BlackjackDealRequest is the request body for starting a blackjack round.
type BlackjackDealRequest struct {
	BetAmount int64 `json:"bet_amount" binding:"required,gt=0"`
}

// BlackjackStepRequest carries the caller-held round state back to the
// engine for hit and stand. The state is opaque to well-behaved clients;
// tampering is caught by the engine's signature check.
type BlackjackStepRequest struct {
	State *domain.RoundState `json:"state" binding:"required"`
}

// VerifyRequest is the request body for the public fairness verifier.
type VerifyRequest struct {
	Seed string `json:"seed" binding:"required"`
	Hash string `json:"hash" binding:"required"`
}

// VerifyResponse reports whether the revealed seed matches the commitment.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// --- Wallet ---

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// TransactionResponse is one ledger entry in a history listing.
type TransactionResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Amount       int64   `json:"amount"`
	BalanceAfter int64   `json:"balance_after"`
	Metadata     *string `json:"metadata,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// TransactionListResponse wraps a paginated ledger listing.
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// RoundHistoryItem is one settled round in a history listing.
type RoundHistoryItem struct {
	ID        string                   `json:"id"`
	Game      string                   `json:"game"`
	BetAmount int64                    `json:"bet_amount"`
	WinAmount int64                    `json:"win_amount"`
	Profit    int64                    `json:"profit"`
	Outcome   string                   `json:"outcome"`
	Seed      string                   `json:"seed"`
	Hash      string                   `json:"hash"`
	Details   domain.GameResultDetails `json:"details"`
	CreatedAt string                   `json:"created_at"`
}

// RoundHistoryResponse wraps a paginated round listing.
type RoundHistoryResponse struct {
	Items  []RoundHistoryItem `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// --- Progression ---

// AchievementResponse is one unlocked achievement.
type AchievementResponse struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UnlockedAt  string `json:"unlocked_at"`
}

// StreakResponse reports the player's daily bonus streak.
type StreakResponse struct {
	CurrentStreak int    `json:"current_streak"`
	LastClaim     string `json:"last_claim,omitempty"`
}

// LeaderboardEntryResponse is one leaderboard row.
type LeaderboardEntryResponse struct {
	Rank      int    `json:"rank"`
	PlayerID  string `json:"player_id"`
	NetProfit int64  `json:"net_profit"`
}

// LeaderboardResponse is the top-N net profit leaderboard.
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// ProfileResponse is the authenticated player's own profile.
type ProfileResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	XP       int64  `json:"xp"`
	Level    int    `json:"level"`
	Balance  int64  `json:"balance"`
}
