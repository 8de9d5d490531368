package domain

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a one-time unlock, unique per (player, key). Unlocking an
// already-unlocked key is a silent no-op.
type Achievement struct {
	PlayerID    uuid.UUID `json:"player_id"`
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// DailyStreak tracks consecutive daily bonus claims. The streak advances only
// when the previous claim was exactly one elapsed day ago and resets to 1
// otherwise; a claim within the same 24h window is rejected.
type DailyStreak struct {
	PlayerID      uuid.UUID `json:"player_id"`
	CurrentStreak int       `json:"current_streak"`
	LastClaim     time.Time `json:"last_claim"`
}
