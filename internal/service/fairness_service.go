package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"provably-fair-casino/internal/core/domain"
)

// seedBytes gives 256 bits of entropy per commitment.
const seedBytes = 32

// FairnessService implements ports.FairnessEngine with SHA-256 commit-reveal.
// It is stateless; one instance serves every round.
type FairnessService struct{}

// NewFairnessService creates a new FairnessService.
func NewFairnessService() *FairnessService {
	return &FairnessService{}
}

// Commit generates a fresh random seed and its hash. The hash can be
// published before the outcome is derived; the seed is revealed with the
// result.
func (s *FairnessService) Commit() (domain.Commitment, error) {
	buf := make([]byte, seedBytes)
	if _, err := rand.Read(buf); err != nil {
		return domain.Commitment{}, fmt.Errorf("generating seed: %w", err)
	}
	seed := hex.EncodeToString(buf)
	return domain.Commitment{Seed: seed, Hash: hashHex(seed)}, nil
}

// DeriveInt deterministically maps H(seed:tag) to an integer in [min, max).
func (s *FairnessService) DeriveInt(seed, domainTag string, min, max int) int {
	if max <= min {
		return min
	}
	digest := hashHex(seed + ":" + domainTag)
	// First 8 hex chars = 32 bits, plenty for game-sized ranges.
	n, _ := strconv.ParseUint(digest[:8], 16, 64)
	return min + int(n%uint64(max-min))
}

// DeriveUniform deterministically maps the seed to [0, 1) using the first 52
// bits of H(seed), enough precision that threshold comparisons show no
// detectable quantization.
func (s *FairnessService) DeriveUniform(seed string) float64 {
	digest := hashHex(seed)
	n, _ := strconv.ParseUint(digest[:13], 16, 64)
	return float64(n) / float64(uint64(1)<<52)
}

// PickWeighted performs a cumulative-weight scan over DeriveInt. Choices are
// an ordered slice so the scan order (and therefore the label boundaries) is
// stable across calls and processes.
func (s *FairnessService) PickWeighted(seed string, choices []domain.WeightedChoice) string {
	if len(choices) == 0 {
		return ""
	}
	total := 0
	for _, c := range choices {
		total += c.Weight
	}
	if total <= 0 {
		return choices[0].Label
	}
	r := s.DeriveInt(seed, "pick", 0, total)
	cumulative := 0
	for _, c := range choices {
		cumulative += c.Weight
		if r < cumulative {
			return c.Label
		}
	}
	return choices[0].Label
}

// Verify recomputes H(seed) and compares against the published hash.
// Malformed pairs simply verify false.
func (s *FairnessService) Verify(seed, hash string) bool {
	computed := hashHex(seed)
	expected := strings.ToLower(strings.TrimSpace(hash))
	if len(expected) != len(computed) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}

func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
