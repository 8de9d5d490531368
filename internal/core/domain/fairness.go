package domain

// Commitment is a provably-fair {seed, hash} pair. Hash = SHA-256(seed) is
// publishable before the outcome is derived; the seed is revealed with the
// result so anyone can recompute the hash and the outcome. One commitment is
// generated per round and never reused.
type Commitment struct {
	Seed string `json:"seed"`
	Hash string `json:"hash"`
}

// WeightedChoice is one label in a weighted draw. Choices are passed as an
// ordered slice so the cumulative-weight scan is deterministic.
type WeightedChoice struct {
	Label  string
	Weight int
}
