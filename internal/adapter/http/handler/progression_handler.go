package handler

import (
	"strconv"
	"time"

	"provably-fair-casino/internal/adapter/http/dto"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
	"provably-fair-casino/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProgressionHandler handles XP, achievements, streak and leaderboard
// endpoints.
type ProgressionHandler struct {
	progression ports.ProgressionTracker
	playerRepo  ports.PlayerRepository
	ledger      ports.Ledger
	leaderboard ports.LeaderboardStore
}

// NewProgressionHandler creates a new ProgressionHandler.
func NewProgressionHandler(
	progression ports.ProgressionTracker,
	playerRepo ports.PlayerRepository,
	ledger ports.Ledger,
	leaderboard ports.LeaderboardStore,
) *ProgressionHandler {
	return &ProgressionHandler{
		progression: progression,
		playerRepo:  playerRepo,
		ledger:      ledger,
		leaderboard: leaderboard,
	}
}

// GetProfile handles GET /api/v1/players/me.
func (h *ProgressionHandler) GetProfile(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	player, err := h.playerRepo.GetByID(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if player == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProfileResponse{
		PlayerID: player.ID.String(),
		Username: player.Username,
		XP:       player.XP,
		Level:    player.Level,
		Balance:  balance,
	})
}

// ListAchievements handles GET /api/v1/players/me/achievements.
func (h *ProgressionHandler) ListAchievements(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	achievements, err := h.progression.GetAchievements(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		items = append(items, dto.AchievementResponse{
			Key:         a.Key,
			Title:       a.Title,
			Description: a.Description,
			UnlockedAt:  a.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}
	response.OK(c, items)
}

// GetStreak handles GET /api/v1/players/me/streak.
func (h *ProgressionHandler) GetStreak(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	streak, err := h.progression.GetStreak(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.StreakResponse{}
	if streak != nil {
		resp.CurrentStreak = streak.CurrentStreak
		resp.LastClaim = streak.LastClaim.UTC().Format(time.RFC3339)
	}
	response.OK(c, resp)
}

// ClaimDailyBonus handles POST /api/v1/players/me/daily-bonus.
func (h *ProgressionHandler) ClaimDailyBonus(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	result, err := h.progression.ClaimDailyBonus(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Leaderboard handles GET /api/v1/leaderboard.
func (h *ProgressionHandler) Leaderboard(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if n <= 0 || n > 100 {
		n = 10
	}

	entries, err := h.leaderboard.TopByProfit(c.Request.Context(), n)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	resp := dto.LeaderboardResponse{Entries: make([]dto.LeaderboardEntryResponse, 0, len(entries))}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, dto.LeaderboardEntryResponse{
			Rank:      i + 1,
			PlayerID:  e.PlayerID.String(),
			NetProfit: e.NetProfit,
		})
	}
	response.OK(c, resp)
}
