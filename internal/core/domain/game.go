package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateRound reports an attempt to persist a second result for a
// commitment hash that already settled. Storage adapters surface it so the
// service layer can reject replayed round state.
var ErrDuplicateRound = errors.New("round already settled for this commitment")

// Game identifies a game type.
type Game string

const (
	GameSlots     Game = "slots"
	GameRoulette  Game = "roulette"
	GameBlackjack Game = "blackjack"
	GameCrash     Game = "crash"
	GameDice      Game = "dice"
	GamePlinko    Game = "plinko"
	GameLimbo     Game = "limbo"
	GameMines     Game = "mines"
)

// AllGames lists every playable game, used for per-game achievement counts.
var AllGames = []Game{
	GameSlots, GameRoulette, GameBlackjack, GameCrash,
	GameDice, GamePlinko, GameLimbo, GameMines,
}

// Outcome is the terminal result of a round. A loss is a normal outcome, not
// an error.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomeJackpot Outcome = "jackpot"
	OutcomePush    Outcome = "push"
	OutcomeBust    Outcome = "bust"
)

// IsWinning reports whether the outcome counts as a win for achievements and
// leaderboards.
func (o Outcome) IsWinning() bool {
	return o == OutcomeWin || o == OutcomeJackpot
}

// GameResult is the immutable record of one completed round. Profit is
// WinAmount - BetAmount. The commitment seed and hash are stored so the round
// stays publicly verifiable forever.
type GameResult struct {
	ID        uuid.UUID         `json:"id"`
	PlayerID  uuid.UUID         `json:"player_id"`
	Game      Game              `json:"game"`
	BetAmount int64             `json:"bet_amount"`
	WinAmount int64             `json:"win_amount"`
	Profit    int64             `json:"profit"`
	Outcome   Outcome           `json:"outcome"`
	Seed      string            `json:"seed"`
	Hash      string            `json:"hash"`
	Details   GameResultDetails `json:"details"`
	CreatedAt time.Time         `json:"created_at"`
}

// GameStats aggregates a player's game results, the input for achievement
// derivation.
type GameStats struct {
	TotalGames  int64
	TotalWins   int64
	BiggestWin  int64
	NetProfit   int64
	PlaysByGame map[Game]int64
}
