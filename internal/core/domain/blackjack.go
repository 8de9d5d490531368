package domain

// Card is a playing card. Suits and ranks are plain strings so the round
// state serializes cleanly for the caller to hold between steps.
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

var (
	cardSuits = []string{"spades", "hearts", "diamonds", "clubs"}
	cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// DeckSize is the number of cards draws are taken from (with replacement,
// each draw index derives its own card from the round seed).
const DeckSize = 52

// CardAt maps a deck index in [0, DeckSize) to a card.
func CardAt(index int) Card {
	return Card{
		Suit: cardSuits[index/len(cardRanks)],
		Rank: cardRanks[index%len(cardRanks)],
	}
}

// HandScore computes a blackjack hand value: aces count 11 then soften to 1
// while the hand is over 21.
func HandScore(hand []Card) int {
	score := 0
	aces := 0
	for _, c := range hand {
		switch c.Rank {
		case "A":
			aces++
			score += 11
		case "J", "Q", "K", "10":
			score += 10
		default:
			score += int(c.Rank[0] - '0')
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// RoundState is the transient blackjack round travelling between deal, hit
// and stand calls. The core never stores it; the caller carries it and the
// engine only transforms it. SealedSeed is the AES-sealed commitment seed
// (revealed only at a terminal step) and Sig is the HMAC the engine uses to
// reject tampered or foreign state.
type RoundState struct {
	PlayerID    string `json:"player_id"`
	PlayerHand  []Card `json:"player_hand"`
	DealerHand  []Card `json:"dealer_hand"`
	PlayerScore int    `json:"player_score"`
	DealerScore int    `json:"dealer_score"`
	SealedSeed  string `json:"sealed_seed"`
	Hash        string `json:"hash"`
	BetAmount   int64  `json:"bet_amount"`
	Draws       int    `json:"draws"` // total cards drawn so far, the next domain-tag index
	Sig         string `json:"sig,omitempty"`
}
