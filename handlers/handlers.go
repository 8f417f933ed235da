// Package handlers implements the HTTP endpoints of the local otp-agent.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/84adam/ft-otp/crypto"
	"github.com/84adam/ft-otp/logging"
	"github.com/84adam/ft-otp/otp"
	"github.com/84adam/ft-otp/storage"
)

// OTPHandler serves one-time passwords computed from the persisted key store.
type OTPHandler struct {
	store *storage.KeyStore
	now   func() time.Time
}

// NewOTPHandler creates a handler backed by the given key store.
func NewOTPHandler(store *storage.KeyStore) *OTPHandler {
	return &OTPHandler{store: store, now: time.Now}
}

// CodeResponse is the payload returned for a generated code.
type CodeResponse struct {
	Code      string `json:"code"`
	Period    int    `json:"period"`
	ExpiresIn int64  `json:"expires_in"`
}

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status     string    `json:"status"`
	KeyPresent bool      `json:"key_present"`
	Timestamp  time.Time `json:"timestamp"`
}

// GetTOTP returns the current time-based code for the stored key.
func (h *OTPHandler) GetTOTP(c echo.Context) error {
	key, err := h.store.LoadKey()
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrKeyFileNotFound):
			return JSONError(c, http.StatusNotFound, "no key has been stored")
		case errors.Is(err, crypto.ErrInvalidKeyFormat):
			return JSONError(c, http.StatusInternalServerError, "stored key is malformed")
		default:
			logging.ErrorLogger.Printf("Failed to load key: %v", err)
			return JSONError(c, http.StatusInternalServerError, "failed to load key")
		}
	}
	defer crypto.SecureZeroBytes(key)

	now := h.now()
	code, err := otp.TOTP(key, now)
	if err != nil {
		logging.ErrorLogger.Printf("Failed to generate code: %v", err)
		return JSONError(c, http.StatusInternalServerError, "failed to generate code")
	}

	return JSONResponse(c, http.StatusOK, "", CodeResponse{
		Code:      code,
		Period:    otp.Period,
		ExpiresIn: otp.Period - now.Unix()%otp.Period,
	})
}

// Health reports whether the agent can serve codes.
func (h *OTPHandler) Health(c echo.Context) error {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
	}

	if _, err := h.store.LoadKey(); err != nil {
		resp.Status = "degraded"
	} else {
		resp.KeyPresent = true
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}

// RegisterRoutes attaches the agent endpoints to e.
func (h *OTPHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/api/totp", h.GetTOTP)
}
