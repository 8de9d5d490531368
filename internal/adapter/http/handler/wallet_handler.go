package handler

import (
	"strconv"
	"time"

	"provably-fair-casino/internal/adapter/http/dto"
	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/core/ports"
	"provably-fair-casino/pkg/apperror"
	"provably-fair-casino/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
	ledger    ports.Ledger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, ledger ports.Ledger) *WalletHandler {
	return &WalletHandler{
		walletSvc: walletSvc,
		ledger:    ledger,
	}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	balance, err := h.walletSvc.Balance(c.Request.Context(), playerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Balance: balance})
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.walletSvc.Deposit(c.Request.Context(), playerID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Balance: balance})
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.walletSvc.Withdraw(c.Request.Context(), playerID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Balance: balance})
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	txns, err := h.walletSvc.History(c.Request.Context(), playerID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		items = append(items, toTransactionResponse(t))
	}

	response.OK(c, dto.TransactionListResponse{
		Items:  items,
		Limit:  limit,
		Offset: offset,
	})
}

// ListRounds handles GET /api/v1/wallet/rounds, the settled round history.
func (h *WalletHandler) ListRounds(c *gin.Context) {
	playerID, ok := authedPlayerID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	results, err := h.ledger.GetRoundHistory(c.Request.Context(), playerID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RoundHistoryItem, 0, len(results))
	for _, r := range results {
		items = append(items, toRoundHistoryItem(r))
	}

	response.OK(c, dto.RoundHistoryResponse{
		Items:  items,
		Limit:  limit,
		Offset: offset,
	})
}

func toTransactionResponse(t domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           t.ID.String(),
		Kind:         string(t.Kind),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Metadata:     t.Metadata,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toRoundHistoryItem(r domain.GameResult) dto.RoundHistoryItem {
	return dto.RoundHistoryItem{
		ID:        r.ID.String(),
		Game:      string(r.Game),
		BetAmount: r.BetAmount,
		WinAmount: r.WinAmount,
		Profit:    r.Profit,
		Outcome:   string(r.Outcome),
		Seed:      r.Seed,
		Hash:      r.Hash,
		Details:   r.Details,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// pagination reads limit/offset query params; the service clamps the values.
func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
