package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/analytics"
	"sauti.app/api/internal/service"
)

type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsSvc}
}

func (h *AnalyticsHandler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()

	window, err := analytics.ParseWindow(c.DefaultQuery("window", string(analytics.Window7d)))
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window must be one of 24h, 7d, 30d, 90d", "code": "unknown_window"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_request"})
		return
	}

	metrics, err := h.analytics.Aggregate(ctx, window)
	if err != nil {
		slog.ErrorContext(ctx, "failed to aggregate analytics", "error", err, "window", window)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate analytics", "code": "internal"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
