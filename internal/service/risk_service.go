package service

import (
	"context"

	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RiskService implements ports.RiskLimiter over the ledger's rolling daily
// loss. A worst-case bet counts as fully lost when checking headroom, so the
// cap cannot be overshot by the round in flight.
type RiskService struct {
	ledger       ports.Ledger
	dailyLossCap int64 // cents, 0 disables the limit
	log          zerolog.Logger
}

// NewRiskService creates a new RiskService.
func NewRiskService(ledger ports.Ledger, dailyLossCap int64, log zerolog.Logger) *RiskService {
	return &RiskService{
		ledger:       ledger,
		dailyLossCap: dailyLossCap,
		log:          log,
	}
}

// CheckHeadroom rejects the bet when current 24h losses plus the bet amount
// would exceed the cap. Runs before any debit, so a rejected round leaves no
// trace in the ledger.
func (s *RiskService) CheckHeadroom(ctx context.Context, playerID uuid.UUID, betAmount int64) error {
	if s.dailyLossCap <= 0 {
		return nil
	}

	loss, err := s.ledger.GetDailyLoss(ctx, playerID)
	if err != nil {
		return err
	}

	if loss+betAmount > s.dailyLossCap {
		s.log.Warn().
			Str("player_id", playerID.String()).
			Int64("daily_loss", loss).
			Int64("bet", betAmount).
			Int64("cap", s.dailyLossCap).
			Msg("daily loss limit reached")
		return apperror.ErrDailyLossLimit()
	}
	return nil
}
