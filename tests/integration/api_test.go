package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"provably-fair-casino/config"
	httpHandler "provably-fair-casino/internal/adapter/http/handler"
	redisStorage "provably-fair-casino/internal/adapter/storage/redis"
	"provably-fair-casino/internal/core/domain"
	"provably-fair-casino/internal/service"
	"provably-fair-casino/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSealingKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testSigningKey = "integration-test-signing-key"
)

func testGamesConfig() config.GamesConfig {
	return config.GamesConfig{
		MinBet:          100,
		DailyLossCap:    0, // disabled unless a test overrides it
		CrashHouseEdge:  0.01,
		CrashMaxCashout: 100,
		DiceHouseEdge:   0.01,
		PlinkoHouseEdge: 0.01,
		LimboHouseEdge:  0.01,
		LimboMaxTarget:  1000,
		MinesHouseEdge:  0.01,
	}
}

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	client      *goredis.Client
	txRepo      *inMemoryTransactionRepo
	balanceRepo *inMemoryBalanceRepo
}

func newTestApp(t *testing.T) *testApp {
	return newTestAppWithGames(t, testGamesConfig())
}

func newTestAppWithGames(t *testing.T, games config.GamesConfig) *testApp {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// In-memory repos
	playerRepo := newInMemoryPlayerRepo()
	balanceRepo := newInMemoryBalanceRepo()
	txRepo := newInMemoryTransactionRepo()
	resultRepo := newInMemoryGameResultRepo()
	achievementRepo := newInMemoryAchievementRepo()
	streakRepo := newInMemoryStreakRepo()
	transactor := newInMemoryTransactor()

	// Redis stores
	leaderboard := redisStorage.NewLeaderboardStore(rdb)

	// Core services with real implementations
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	fairness := service.NewFairnessService()
	codec, err := service.NewRoundStateCodecService(testSealingKey, testSigningKey)
	require.NoError(t, err)

	// Business services
	log := logger.New("error", false)
	ledger := service.NewLedgerService(balanceRepo, txRepo, resultRepo, transactor, log)
	risk := service.NewRiskService(ledger, games.DailyLossCap, log)
	progression := service.NewProgressionService(
		playerRepo, resultRepo, achievementRepo, streakRepo, ledger, transactor, 50000, log)
	gameSvc := service.NewGameService(fairness, ledger, risk, codec, progression, leaderboard, games, log)
	walletSvc := service.NewWalletService(ledger)
	authSvc := service.NewAuthService(playerRepo, balanceRepo, hashSvc, tokenSvc)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GameSvc:        gameSvc,
		WalletSvc:      walletSvc,
		Ledger:         ledger,
		ProgressionSvc: progression,
		PlayerRepo:     playerRepo,
		Leaderboard:    leaderboard,
		TokenSvc:       tokenSvc,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:      server,
		redis:       mr,
		client:      rdb,
		txRepo:      txRepo,
		balanceRepo: balanceRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.client.Close()
	a.redis.Close()
}

// registerAndLogin creates an account and returns a bearer token.
func (a *testApp) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	regBody, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "StrongPass123!",
	})
	resp, err := http.Post(a.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(regBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	loginBody, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "StrongPass123!",
	})
	resp, err = http.Post(a.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

// doAuthed performs an authenticated JSON request and decodes the "data"
// field of the envelope into out (when out is non-nil).
func (a *testApp) doAuthed(t *testing.T, token, method, path string, reqBody any, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return resp
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_RegisterLoginProfile(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "player1")

	var profile struct {
		Username string `json:"username"`
		Level    int    `json:"level"`
		Balance  int64  `json:"balance"`
	}
	resp := app.doAuthed(t, token, http.MethodGet, "/api/v1/players/me", nil, &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "player1", profile.Username)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, int64(100000), profile.Balance)
}

func TestIntegration_DuplicateUsernameRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.registerAndLogin(t, "taken")

	regBody, _ := json.Marshal(map[string]string{
		"username": "taken",
		"password": "AnotherPass123!",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(regBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_DepositAndWithdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "wallet_user")

	var bal struct {
		Balance int64 `json:"balance"`
	}
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/wallet/deposit", map[string]int64{"amount": 50000}, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(150000), bal.Balance)

	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/wallet/withdraw", map[string]int64{"amount": 120000}, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(30000), bal.Balance)

	// Overdraft attempt leaves the balance untouched.
	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/wallet/withdraw", map[string]int64{"amount": 999999}, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	resp = app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/balance", nil, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(30000), bal.Balance)
}

func TestIntegration_DiceRoundSettlesExactly(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "dice_player")

	var round struct {
		Outcome    string `json:"outcome"`
		BetAmount  int64  `json:"bet_amount"`
		WinAmount  int64  `json:"win_amount"`
		Profit     int64  `json:"profit"`
		NewBalance int64  `json:"new_balance"`
		Seed       string `json:"seed"`
		Hash       string `json:"hash"`
	}
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/dice", map[string]any{
		"bet_amount": 10000,
		"target":     50,
	}, &round)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Accounting is exact regardless of the outcome.
	assert.Equal(t, int64(10000), round.BetAmount)
	assert.Equal(t, round.WinAmount-round.BetAmount, round.Profit)
	assert.Equal(t, int64(100000)-round.BetAmount+round.WinAmount, round.NewBalance)
	assert.NotEmpty(t, round.Seed)
	assert.NotEmpty(t, round.Hash)

	// The revealed seed must verify against its commitment hash.
	verifyBody, _ := json.Marshal(map[string]string{"seed": round.Seed, "hash": round.Hash})
	vresp, err := http.Post(app.server.URL+"/api/v1/games/verify", "application/json", bytes.NewReader(verifyBody))
	require.NoError(t, err)
	defer vresp.Body.Close()
	require.Equal(t, http.StatusOK, vresp.StatusCode)

	var envelope struct {
		Data struct {
			Valid bool `json:"valid"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(vresp.Body).Decode(&envelope))
	assert.True(t, envelope.Data.Valid)
}

func TestIntegration_LedgerConservation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "ledger_player")

	for i := 0; i < 20; i++ {
		resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/dice", map[string]any{
			"bet_amount": 1000,
			"target":     50,
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var bal struct {
		Balance int64 `json:"balance"`
	}
	resp := app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/balance", nil, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Replaying the full ledger must reproduce the balance exactly.
	var sum int64 = 100000
	for _, txn := range app.txRepo.all() {
		sum += txn.Amount
	}
	assert.Equal(t, bal.Balance, sum)
	assert.GreaterOrEqual(t, bal.Balance, int64(0))
}

// blackjackStep mirrors the step envelope with the settlement decoded
// loosely, since the details payload varies per game.
type blackjackStep struct {
	State      *domain.RoundState `json:"state"`
	Terminal   bool               `json:"terminal"`
	Settlement *struct {
		Outcome   string `json:"outcome"`
		BetAmount int64  `json:"bet_amount"`
		WinAmount int64  `json:"win_amount"`
		Seed      string `json:"seed"`
		Hash      string `json:"hash"`
		Details   struct {
			DealerScore int `json:"dealer_score"`
		} `json:"details"`
	} `json:"settlement"`
	Balance int64 `json:"balance"`
}

func TestIntegration_BlackjackDealHitStand(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "bj_player")

	var step blackjackStep
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/deal", map[string]int64{
		"bet_amount": 10000,
	}, &step)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	if step.Terminal {
		// Natural blackjack settles on the deal.
		require.NotNil(t, step.Settlement)
		assert.Equal(t, int64(20000), step.Settlement.WinAmount)
		return
	}

	require.NotNil(t, step.State)
	assert.Len(t, step.State.PlayerHand, 2)
	assert.Len(t, step.State.DealerHand, 1)
	assert.NotEmpty(t, step.State.SealedSeed)
	assert.NotEmpty(t, step.State.Sig)

	// Stand on the dealt hand; the round must settle.
	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/stand", map[string]any{
		"state": step.State,
	}, &step)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, step.Terminal)
	require.NotNil(t, step.Settlement)
	assert.GreaterOrEqual(t, step.Settlement.Details.DealerScore, 17, "dealer hits to at least 17")
	assert.NotEmpty(t, step.Settlement.Seed, "settlement reveals the seed")
}

func TestIntegration_BlackjackReplayedStandSettlesOnce(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "bj_replay")

	var step blackjackStep
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/deal", map[string]int64{
		"bet_amount": 10000,
	}, &step)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	if step.Terminal {
		t.Skip("natural blackjack, no carried state to replay")
	}

	// Keep a copy of the sealed pre-stand state, the way a replaying client
	// would.
	savedState := *step.State

	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/stand", map[string]any{
		"state": step.State,
	}, &step)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, step.Terminal)
	settledBalance := step.Balance

	// Replaying the saved state must not settle a second time.
	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/stand", map[string]any{
		"state": &savedState,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var bal struct {
		Balance int64 `json:"balance"`
	}
	resp = app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/balance", nil, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, settledBalance, bal.Balance, "no second credit for one bet")

	// Exactly one settled round exists for the bet.
	var rounds struct {
		Items []struct {
			Game string `json:"game"`
		} `json:"items"`
	}
	resp = app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/rounds", nil, &rounds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, rounds.Items, 1)
}

func TestIntegration_BlackjackTamperedStateRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "bj_cheat")

	var step blackjackStep
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/deal", map[string]int64{
		"bet_amount": 10000,
	}, &step)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	if step.Terminal {
		t.Skip("natural blackjack, no carried state to tamper with")
	}

	step.State.BetAmount = 1000000 // inflate the stake

	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/games/blackjack/hit", map[string]any{
		"state": step.State,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_DailyBonusStreak(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "bonus_player")

	var claim struct {
		Bonus      int64 `json:"bonus"`
		Streak     int   `json:"streak"`
		NewBalance int64 `json:"new_balance"`
	}
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/players/me/daily-bonus", nil, &claim)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, claim.Streak)
	assert.Equal(t, int64(55000), claim.Bonus)
	assert.Equal(t, int64(155000), claim.NewBalance)

	// A second claim inside the same day is rejected.
	resp = app.doAuthed(t, token, http.MethodPost, "/api/v1/players/me/daily-bonus", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestIntegration_DailyLossLimitBlocksPlay(t *testing.T) {
	games := testGamesConfig()
	games.DailyLossCap = 5000
	app := newTestAppWithGames(t, games)
	defer app.close()

	token := app.registerAndLogin(t, "capped_player")

	// A bet larger than the remaining headroom is rejected before any debit.
	resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/dice", map[string]any{
		"bet_amount": 6000,
		"target":     50,
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var bal struct {
		Balance int64 `json:"balance"`
	}
	resp = app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/balance", nil, &bal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(100000), bal.Balance)
}

func TestIntegration_LeaderboardTracksRounds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "lb_player")

	for i := 0; i < 5; i++ {
		resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/games/dice", map[string]any{
			"bet_amount": 1000,
			"target":     90,
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := http.Get(app.server.URL + "/api/v1/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Entries []struct {
				PlayerID  string `json:"player_id"`
				NetProfit int64  `json:"net_profit"`
			} `json:"entries"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Entries, 1)
}

func TestIntegration_TransactionHistoryOrdering(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.registerAndLogin(t, "hist_player")

	for i := 1; i <= 3; i++ {
		resp := app.doAuthed(t, token, http.MethodPost, "/api/v1/wallet/deposit",
			map[string]int64{"amount": int64(i * 1000)}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var list struct {
		Items []struct {
			Kind   string `json:"kind"`
			Amount int64  `json:"amount"`
		} `json:"items"`
	}
	resp := app.doAuthed(t, token, http.MethodGet, "/api/v1/wallet/transactions", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, list.Items, 3)
	assert.Equal(t, "deposit", list.Items[0].Kind)
	assert.Equal(t, int64(3000), list.Items[0].Amount, "newest entry first")
}

func TestIntegration_RequestsWithoutTokenRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	paths := []string{
		"/api/v1/wallet/balance",
		"/api/v1/players/me",
	}
	for _, p := range paths {
		resp, err := http.Get(app.server.URL + p)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, fmt.Sprintf("path %s", p))
	}
}
