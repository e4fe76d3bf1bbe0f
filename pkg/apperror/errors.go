package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes.
const (
	CodeConfiguration    = "CFG_001"
	CodeValidation       = "VAL_001"
	CodeInvalidSignature = "SEC_001"
	CodeGatewayCall      = "GW_001"
	CodeInvalidToken     = "AUTH_001"
	CodeForbidden        = "AUTH_002"
	CodeRateLimit        = "RATE_001"
	CodeIdempotency      = "IDEM_001"
	CodeInternal         = "SYS_001"
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

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Configuration (CFG) ----

// ErrConfiguration reports a required gateway setting that is missing.
func ErrConfiguration(field string) *AppError {
	return New(CodeConfiguration, fmt.Sprintf("VNPAY configuration is missing: %s", field), http.StatusInternalServerError)
}

// ---- Validation (VAL) ----

// Validation reports a caller-supplied field that is missing or malformed.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ErrRequiredField is a Validation error for an empty required field.
func ErrRequiredField(field string) *AppError {
	return Validation(fmt.Sprintf("%s is required", field))
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ErrForbidden is returned when a valid token lacks the scope a route needs.
func ErrForbidden(scope string) *AppError {
	return New(CodeForbidden, fmt.Sprintf("Token is missing scope %s", scope), http.StatusForbidden)
}

// ---- Gateway (GW) ----

// ErrGatewayCall surfaces a failed merchant API call. status is the
// gateway's HTTP status, 0 when no response was received.
func ErrGatewayCall(message string, status int) *AppError {
	if status > 0 {
		message = fmt.Sprintf("%s (gateway status %d)", message, status)
	}
	return New(CodeGatewayCall, message, http.StatusBadGateway)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Idempotency (IDEM) ----

func ErrIdempotencyConflict() *AppError {
	return New(CodeIdempotency, "Idempotency key was already used with a different request", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
