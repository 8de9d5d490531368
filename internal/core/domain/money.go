package domain

import "math"

// Monetary amounts are int64 cents throughout. Multiplier math happens in
// float64 and is rounded back to cents exactly once, when a win amount is
// finalized, so the persisted ledger never accumulates float drift.

// RoundMultiplier rounds a payout multiplier to 2 decimal places.
func RoundMultiplier(m float64) float64 {
	return math.Round(m*100) / 100
}

// WinAmount converts a bet (cents) and a multiplier into a win amount in
// cents, rounding half away from zero.
func WinAmount(bet int64, multiplier float64) int64 {
	return int64(math.Round(float64(bet) * multiplier))
}
