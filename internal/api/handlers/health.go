// Package handlers implements HTTP handlers for the price-guardian API.
//
// The dashboard API is strictly read-only: handlers receive a store.Reader
// and can never commit monitoring state. All writes flow through the
// monitoring engine and the CLI.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pricewar-labs/price-guardian/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Reader
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Reader) *HealthHandler {
	return &HealthHandler{store: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			StatusResponse{Status: "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
