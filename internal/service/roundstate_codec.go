package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/pkg/apperror"
)

// RoundStateCodecService implements ports.RoundStateCodec. The blackjack
// round travels with the caller between steps, so the engine protects it two
// ways: the commitment seed is sealed with AES-256-GCM (the caller must not
// learn upcoming cards) and the whole state is signed with HMAC-SHA256 (the
// caller must not alter hands, bet or scores).
type RoundStateCodecService struct {
	sealingKey []byte // 32 bytes for AES-256
	signingKey []byte
}

// NewRoundStateCodecService creates a new codec. sealingHexKey must be a
// 64-character hex string (32 bytes decoded).
func NewRoundStateCodecService(sealingHexKey, signingKey string) (*RoundStateCodecService, error) {
	key, err := hex.DecodeString(sealingHexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding sealing key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("sealing key must be 32 bytes, got %d", len(key))
	}
	if signingKey == "" {
		return nil, fmt.Errorf("signing key must not be empty")
	}
	return &RoundStateCodecService{sealingKey: key, signingKey: []byte(signingKey)}, nil
}

// Seal encrypts the seed into state.SealedSeed and signs the state into
// state.Sig.
func (s *RoundStateCodecService) Seal(state *domain.RoundState, seed string) error {
	sealed, err := s.encrypt(seed)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("sealing seed: %w", err))
	}
	state.SealedSeed = sealed

	payload, err := canonicalState(state)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("canonicalizing state: %w", err))
	}
	state.Sig = s.sign(payload)
	return nil
}

// Open authenticates the state and recovers the sealed seed. Any signature
// mismatch, including a state issued for another player or round, comes back
// as an invalid round state.
func (s *RoundStateCodecService) Open(state *domain.RoundState) (string, error) {
	if state == nil || state.Sig == "" || state.SealedSeed == "" {
		return "", apperror.ErrInvalidRoundState()
	}

	payload, err := canonicalState(state)
	if err != nil {
		return "", apperror.ErrInvalidRoundState()
	}
	if !hmac.Equal([]byte(s.sign(payload)), []byte(state.Sig)) {
		return "", apperror.ErrInvalidRoundState()
	}

	seed, err := s.decrypt(state.SealedSeed)
	if err != nil {
		return "", apperror.ErrInvalidRoundState()
	}
	return seed, nil
}

// canonicalState serializes the state with the signature cleared. JSON field
// order follows struct order, so the encoding is stable.
func canonicalState(state *domain.RoundState) (string, error) {
	unsigned := *state
	unsigned.Sig = ""
	raw, err := json.Marshal(&unsigned)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *RoundStateCodecService) sign(payload string) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *RoundStateCodecService) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.sealingKey)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *RoundStateCodecService) decrypt(ciphertextHex string) (string, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	block, err := aes.NewCipher(s.sealingKey)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("opening seal: %w", err)
	}

	return string(plaintext), nil
}
