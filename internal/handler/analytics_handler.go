package handler

import (
	"log/slog"
	"net/http"

	"smartbrief/internal/analytics"
	"smartbrief/internal/auth"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	store      ArticleStore
	aggregator *analytics.Aggregator
}

func NewAnalyticsHandler(store ArticleStore, aggregator *analytics.Aggregator) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, aggregator: aggregator}
}

func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID := auth.UserID(c)

	saved, err := h.store.GetByUser(userID)
	if err != nil {
		slog.Error("error fetching saved articles for analytics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard analytics"})
		return
	}

	total, err := h.store.CountAll()
	if err != nil {
		slog.Error("error counting articles for analytics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard analytics"})
		return
	}

	c.JSON(http.StatusOK, h.aggregator.Build(c.Request.Context(), saved, total))
}

func (h *AnalyticsHandler) GetHealth(c *gin.Context) {
	if _, err := h.store.CountAll(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
