package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
)

// statsHandler handles HTTP requests for the dashboard statistics.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

func newStatsHandler(ss portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsService: ss}
}

// registerStatsRoutes registers the dashboard route.
func registerStatsRoutes(rg *gin.RouterGroup, statsService portssvc.StatsSvcFacade) {
	h := newStatsHandler(statsService)

	rg.GET("/stats/dashboard", h.getDashboard)
}

func (h *statsHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.statsService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(stats))
}
