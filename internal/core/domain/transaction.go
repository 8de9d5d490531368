package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the reason a balance changed.
type TransactionKind string

const (
	TransactionKindBet        TransactionKind = "bet"
	TransactionKindWin        TransactionKind = "win"
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdraw   TransactionKind = "withdraw"
	TransactionKindDailyBonus TransactionKind = "daily_bonus"
	TransactionKindLevelUp    TransactionKind = "level_up"
)

// Transaction is an immutable ledger entry. Amount is signed cents; replaying
// all entries for a player in order and summing Amount equals the current
// balance exactly.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	PlayerID     uuid.UUID       `json:"player_id"`
	Kind         TransactionKind `json:"kind"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	Metadata     *string         `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsCredit reports whether the entry increased the balance.
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}
