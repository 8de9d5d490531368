package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Game Rounds (GAME) ----

func ErrInvalidParameter(message string) *AppError {
	return New("GAME_001", message, http.StatusBadRequest)
}

func ErrInvalidRoundState() *AppError {
	return New("GAME_002", "Round state is malformed or was not issued by this server", http.StatusBadRequest)
}

// ---- Wallet & Ledger (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New("WAL_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount(message string) *AppError {
	return New("WAL_002", message, http.StatusBadRequest)
}

func ErrAccountNotFound() *AppError {
	return New("WAL_003", "Account not found", http.StatusNotFound)
}

// ---- Responsible Gaming (RISK) ----

func ErrDailyLossLimit() *AppError {
	return New("RISK_001", "Daily loss limit reached", http.StatusUnprocessableEntity)
}

// ---- Progression (PRG) ----

func ErrBonusAlreadyClaimed() *AppError {
	return New("PRG_001", "Daily bonus already claimed", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a GAME_001-style validation error.
func Validation(message string) *AppError {
	return New("GAME_001", message, http.StatusBadRequest)
}
