package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
)

// notificationHandler exposes on-demand milestone evaluation, used by clients
// on startup to catch milestones crossed since the last session.
type notificationHandler struct {
	milestoneService portssvc.MilestoneSvcFacade
}

func newNotificationHandler(ms portssvc.MilestoneSvcFacade) *notificationHandler {
	return &notificationHandler{milestoneService: ms}
}

// registerNotificationRoutes registers the milestone evaluation route.
func registerNotificationRoutes(rg *gin.RouterGroup, milestoneService portssvc.MilestoneSvcFacade) {
	h := newNotificationHandler(milestoneService)

	rg.POST("/notifications/evaluate", h.evaluate)
}

func (h *notificationHandler) evaluate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notifications, err := h.milestoneService.Evaluate(c.Request.Context())
	if err != nil {
		logger.Error("Milestone evaluation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate milestones"})
		return
	}

	c.JSON(http.StatusOK, dto.NotificationListResponse{
		Notifications: dto.ToNotificationResponses(notifications),
	})
}
