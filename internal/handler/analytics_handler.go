package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
	"github.com/Anandhu362/Url-shorten-website/pkg/response"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, shortID string) (*domain.Analytics, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetAnalytics serves the aggregate consumed by the dashboard. The
// body is the aggregate itself, not an envelope; the dashboard reads
// the chart arrays directly.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	shortID := c.Param("shortId")
	if shortID == "" {
		response.BadRequest(c, "Short id is required")
		return
	}

	analytics, err := h.service.GetAnalytics(c.Request.Context(), shortID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(c, "URL not found")
			return
		}
		response.InternalServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, analytics)
}
