package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is an authenticated casino account. The core treats the ID as an
// opaque identifier; credentials are only touched by the auth adapter.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	XP           int64     `json:"xp"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
}

// XPPerLevel is the experience span of a single level.
const XPPerLevel = 1000

// LevelForXP computes the level reached at a given total XP.
func LevelForXP(xp int64) int {
	return int(xp/XPPerLevel) + 1
}

// Balance is a player's wallet row. The amount is non-negative cents and is
// mutated only through the ledger's single atomic primitive.
type Balance struct {
	PlayerID  uuid.UUID `json:"player_id"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}
