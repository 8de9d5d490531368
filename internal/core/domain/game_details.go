package domain

import (
	"encoding/json"
	"fmt"
)

// GameResultDetails is the tagged per-game variant stored alongside a result.
// Each variant is a plain struct; serialization to JSON happens only at the
// storage boundary via EncodeDetails/DecodeDetails.
type GameResultDetails interface {
	GameName() Game
}

// SlotsDetails records the three reel symbols.
type SlotsDetails struct {
	Reels [3]string `json:"reels"`
}

func (SlotsDetails) GameName() Game { return GameSlots }

// RouletteDetails records the drawn color and the player's pick.
type RouletteDetails struct {
	Result   string `json:"result"`
	BetColor string `json:"bet_color"`
}

func (RouletteDetails) GameName() Game { return GameRoulette }

// BlackjackDetails records the terminal hands and scores.
type BlackjackDetails struct {
	PlayerHand  []Card `json:"player_hand"`
	DealerHand  []Card `json:"dealer_hand"`
	PlayerScore int    `json:"player_score"`
	DealerScore int    `json:"dealer_score"`
}

func (BlackjackDetails) GameName() Game { return GameBlackjack }

// CrashDetails records the bust point and the player's auto-cashout.
type CrashDetails struct {
	AutoCashout float64 `json:"auto_cashout"`
	Bust        float64 `json:"bust"`
	HouseEdge   float64 `json:"house_edge"`
}

func (CrashDetails) GameName() Game { return GameCrash }

// DiceDetails records the roll-under target and the actual roll.
type DiceDetails struct {
	Target    int     `json:"target"`
	Roll      int     `json:"roll"`
	HouseEdge float64 `json:"house_edge"`
}

func (DiceDetails) GameName() Game { return GameDice }

// PlinkoDetails records the drop path and the landed multiplier.
type PlinkoDetails struct {
	Rows       int     `json:"rows"`
	Rights     int     `json:"rights"`
	Path       string  `json:"path"` // e.g. "LRRL..."
	Multiplier float64 `json:"multiplier"`
}

func (PlinkoDetails) GameName() Game { return GamePlinko }

// LimboDetails records the target multiplier and the win probability used.
type LimboDetails struct {
	Target    float64 `json:"target"`
	HouseEdge float64 `json:"house_edge"`
	WinProb   float64 `json:"win_prob"`
}

func (LimboDetails) GameName() Game { return GameLimbo }

// MinesDetails records the board parameters and the exact safe probability.
type MinesDetails struct {
	Grid       int     `json:"grid"`
	Bombs      int     `json:"bombs"`
	Picks      int     `json:"picks"`
	SafeProb   float64 `json:"safe_prob"`
	Multiplier float64 `json:"multiplier"`
}

func (MinesDetails) GameName() Game { return GameMines }

// EncodeDetails serializes a details variant for storage.
func EncodeDetails(d GameResultDetails) ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode %s details: %w", d.GameName(), err)
	}
	return data, nil
}

// DecodeDetails deserializes the stored JSON back into the variant matching
// the result's game tag.
func DecodeDetails(game Game, data []byte) (GameResultDetails, error) {
	var d GameResultDetails
	switch game {
	case GameSlots:
		d = &SlotsDetails{}
	case GameRoulette:
		d = &RouletteDetails{}
	case GameBlackjack:
		d = &BlackjackDetails{}
	case GameCrash:
		d = &CrashDetails{}
	case GameDice:
		d = &DiceDetails{}
	case GamePlinko:
		d = &PlinkoDetails{}
	case GameLimbo:
		d = &LimboDetails{}
	case GameMines:
		d = &MinesDetails{}
	default:
		return nil, fmt.Errorf("unknown game %q", game)
	}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", game, err)
	}
	return d, nil
}
