package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ResponseMsg struct {
	Message string `json:"message"`
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db, log}
}

func (h *HealthHandler) Healthcheck(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		h.log.Error("database ping failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, ResponseMsg{
			Message: "Database unavailable",
		})
	}

	return c.JSON(http.StatusOK, ResponseMsg{
		Message: "I'm fine, Thank!",
	})
}
