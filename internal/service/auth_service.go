package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8

	// startingBalance is credited to every new account, in cents.
	startingBalance = 100000
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	playerRepo  ports.PlayerRepository
	balanceRepo ports.BalanceRepository
	hashSvc     ports.HashService
	tokenSvc    ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	playerRepo ports.PlayerRepository,
	balanceRepo ports.BalanceRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		playerRepo:  playerRepo,
		balanceRepo: balanceRepo,
		hashSvc:     hashSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register creates a player account with a starter balance.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Player, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return nil, apperror.Validation(fmt.Sprintf(
			"username must be %d to %d characters", minUsernameLen, maxUsernameLen))
	}
	if len(req.Password) < minPasswordLen {
		return nil, apperror.Validation(fmt.Sprintf(
			"password must be at least %d characters", minPasswordLen))
	}

	existing, err := s.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	player := &domain.Player{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		XP:           0,
		Level:        1,
		CreatedAt:    now,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create player: %w", err))
	}

	if err := s.balanceRepo.Create(ctx, &domain.Balance{
		PlayerID:  player.ID,
		Amount:    startingBalance,
		UpdatedAt: now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create balance: %w", err))
	}

	return player, nil
}

// Login validates credentials and returns a session token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	player, err := s.playerRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find player: %w", err))
	}
	if player == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, player.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(player.ID, player.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
