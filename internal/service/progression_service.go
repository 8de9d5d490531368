package service

import (
	"context"
	"fmt"
	"time"

	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// levelUpBonusPerLevel is the level-up credit: 100 currency units per
	// reached level, in cents.
	levelUpBonusPerLevel = 10000

	// bigWinThreshold is the single-win amount unlocking the high-roller
	// achievement, in cents.
	bigWinThreshold = 500000

	// perGameAchievementPlays is the play count unlocking a game's
	// dedication achievement.
	perGameAchievementPlays = 20

	claimCooldown = 24 * time.Hour
	streakWindow  = 48 * time.Hour

	// streakBonusStep and streakBonusMax shape the daily bonus on top of the
	// configured base, in cents.
	streakBonusStep = 5000
	streakBonusMax  = 50000
)

// ProgressionService implements ports.ProgressionTracker: XP and levels on
// the player row, achievements derived from aggregate result stats, and the
// daily bonus streak.
type ProgressionService struct {
	playerRepo      ports.PlayerRepository
	resultRepo      ports.GameResultRepository
	achievementRepo ports.AchievementRepository
	streakRepo      ports.StreakRepository
	ledger          ports.Ledger
	transactor      ports.DBTransactor
	dailyBonusBase  int64
	log             zerolog.Logger
}

// NewProgressionService creates a new ProgressionService.
func NewProgressionService(
	playerRepo ports.PlayerRepository,
	resultRepo ports.GameResultRepository,
	achievementRepo ports.AchievementRepository,
	streakRepo ports.StreakRepository,
	ledger ports.Ledger,
	transactor ports.DBTransactor,
	dailyBonusBase int64,
	log zerolog.Logger,
) *ProgressionService {
	return &ProgressionService{
		playerRepo:      playerRepo,
		resultRepo:      resultRepo,
		achievementRepo: achievementRepo,
		streakRepo:      streakRepo,
		ledger:          ledger,
		transactor:      transactor,
		dailyBonusBase:  dailyBonusBase,
		log:             log,
	}
}

// AddXP adds XP under the player row lock. XP only ever grows; a level
// increase credits the level-up bonus through the ledger after the
// progression commit.
func (s *ProgressionService) AddXP(ctx context.Context, playerID uuid.UUID, amount int64) (*ports.ProgressionUpdate, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidParameter("xp amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	player, err := s.playerRepo.GetForUpdate(ctx, dbTx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	newXP := player.XP + amount
	newLevel := domain.LevelForXP(newXP)
	if err := s.playerRepo.UpdateProgress(ctx, dbTx, playerID, newXP, newLevel); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update progress: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit progress: %w", err))
	}

	update := &ports.ProgressionUpdate{
		XP:        newXP,
		Level:     newLevel,
		LeveledUp: newLevel > player.Level,
	}

	if update.LeveledUp {
		bonus := int64(newLevel) * levelUpBonusPerLevel
		meta := fmt.Sprintf(`{"level":%d}`, newLevel)
		if _, err := s.ledger.ApplyDelta(ctx, playerID, bonus, domain.TransactionKindLevelUp, &meta); err != nil {
			s.log.Warn().Err(err).Str("player_id", playerID.String()).Int("level", newLevel).
				Msg("level-up bonus credit failed")
		} else {
			update.Bonus = bonus
			s.log.Info().Str("player_id", playerID.String()).Int("level", newLevel).
				Int64("bonus", bonus).Msg("level up")
		}
	}

	return update, nil
}

// achievementSpec is one derivable achievement.
type achievementSpec struct {
	key         string
	title       string
	description string
	earned      func(*domain.GameStats) bool
}

func achievementCatalog() []achievementSpec {
	specs := []achievementSpec{
		{
			key: "first_win", title: "First Blood",
			description: "Win your first round.",
			earned:      func(st *domain.GameStats) bool { return st.TotalWins >= 1 },
		},
		{
			key: "ten_wins", title: "Warming Up",
			description: "Win 10 rounds.",
			earned:      func(st *domain.GameStats) bool { return st.TotalWins >= 10 },
		},
		{
			key: "fifty_wins", title: "Seasoned",
			description: "Win 50 rounds.",
			earned:      func(st *domain.GameStats) bool { return st.TotalWins >= 50 },
		},
		{
			key: "big_win", title: "High Roller",
			description: "Land a single win of 5,000 or more.",
			earned:      func(st *domain.GameStats) bool { return st.BiggestWin >= bigWinThreshold },
		},
	}
	for _, game := range domain.AllGames {
		g := game
		specs = append(specs, achievementSpec{
			key:         fmt.Sprintf("%s_regular", g),
			title:       fmt.Sprintf("%s Regular", g),
			description: fmt.Sprintf("Play %d rounds of %s.", perGameAchievementPlays, g),
			earned: func(st *domain.GameStats) bool {
				return st.PlaysByGame[g] >= perGameAchievementPlays
			},
		})
	}
	return specs
}

// CheckAchievements derives unlocks from current aggregate stats and returns
// only the newly unlocked ones. Re-running with unchanged stats returns
// nothing; the unique (player, key) constraint makes the unlock idempotent.
func (s *ProgressionService) CheckAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	stats, err := s.resultRepo.Stats(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load stats: %w", err))
	}
	if stats == nil {
		return nil, nil
	}

	var unlocked []domain.Achievement
	for _, spec := range achievementCatalog() {
		if !spec.earned(stats) {
			continue
		}
		a := &domain.Achievement{
			PlayerID:    playerID,
			Key:         spec.key,
			Title:       spec.title,
			Description: spec.description,
			UnlockedAt:  time.Now().UTC(),
		}
		isNew, err := s.achievementRepo.Unlock(ctx, a)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("unlock %s: %w", spec.key, err))
		}
		if isNew {
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked, nil
}

// ClaimDailyBonus credits the daily bonus once per 24 hours. Claiming within
// 48 hours of the previous claim extends the streak; later claims reset it.
func (s *ProgressionService) ClaimDailyBonus(ctx context.Context, playerID uuid.UUID) (*ports.DailyBonusResult, error) {
	now := time.Now().UTC()

	streak, err := s.streakRepo.Get(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load streak: %w", err))
	}

	newStreak := 1
	if streak != nil {
		elapsed := now.Sub(streak.LastClaim)
		if elapsed < claimCooldown {
			return nil, apperror.ErrBonusAlreadyClaimed()
		}
		if elapsed < streakWindow {
			newStreak = streak.CurrentStreak + 1
		}
	}

	streakBonus := int64(newStreak) * streakBonusStep
	if streakBonus > streakBonusMax {
		streakBonus = streakBonusMax
	}
	bonus := s.dailyBonusBase + streakBonus

	meta := fmt.Sprintf(`{"streak":%d}`, newStreak)
	newBalance, err := s.ledger.ApplyDelta(ctx, playerID, bonus, domain.TransactionKindDailyBonus, &meta)
	if err != nil {
		return nil, err
	}

	if err := s.streakRepo.Upsert(ctx, &domain.DailyStreak{
		PlayerID:      playerID,
		CurrentStreak: newStreak,
		LastClaim:     now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save streak: %w", err))
	}

	s.log.Info().Str("player_id", playerID.String()).Int("streak", newStreak).
		Int64("bonus", bonus).Msg("daily bonus claimed")

	return &ports.DailyBonusResult{Bonus: bonus, Streak: newStreak, NewBalance: newBalance}, nil
}

// GetAchievements lists everything the player has unlocked.
func (s *ProgressionService) GetAchievements(ctx context.Context, playerID uuid.UUID) ([]domain.Achievement, error) {
	achievements, err := s.achievementRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list achievements: %w", err))
	}
	return achievements, nil
}

// GetStreak returns the player's streak, or nil when nothing was ever
// claimed.
func (s *ProgressionService) GetStreak(ctx context.Context, playerID uuid.UUID) (*domain.DailyStreak, error) {
	streak, err := s.streakRepo.Get(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load streak: %w", err))
	}
	return streak, nil
}
