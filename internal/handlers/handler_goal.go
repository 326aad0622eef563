package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to the savings goal.
type goalHandler struct {
	goalService      portssvc.GoalSvcFacade
	statsService     portssvc.StatsSvcFacade
	milestoneService portssvc.MilestoneSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade, ss portssvc.StatsSvcFacade, ms portssvc.MilestoneSvcFacade) *goalHandler {
	return &goalHandler{
		goalService:      gs,
		statsService:     ss,
		milestoneService: ms,
	}
}

// registerGoalRoutes registers routes related to the goal.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade, statsService portssvc.StatsSvcFacade, milestoneService portssvc.MilestoneSvcFacade) {
	h := newGoalHandler(goalService, statsService, milestoneService)

	goal := rg.Group("/goal")
	{
		goal.GET("", h.getGoal)
		goal.PUT("", h.saveGoal)
		goal.DELETE("", h.deleteGoal)
	}
}

// getGoal returns the active goal with derived progress, or a null goal when
// none is set.
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goal, err := h.goalService.GetGoal(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get goal"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusOK, dto.GoalStatusResponse{Goal: nil})
		return
	}

	stats, err := h.statsService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute goal progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get goal"})
		return
	}

	c.JSON(http.StatusOK, dto.GoalStatusResponse{
		Goal: dto.ToGoalResponse(goal, stats.TotalSaved, time.Now()),
	})
}

// saveGoal replaces the active goal and reports any milestone notifications
// the new goal fires immediately.
func (h *goalHandler) saveGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.SaveGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	stats, err := h.statsService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute goal progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	notifications, err := h.milestoneService.Evaluate(c.Request.Context())
	if err != nil {
		logger.Error("Milestone evaluation failed after goal save", slog.String("error", err.Error()))
		notifications = nil
	}

	c.JSON(http.StatusOK, dto.GoalStatusResponse{
		Goal:          dto.ToGoalResponse(goal, stats.TotalSaved, time.Now()),
		Notifications: dto.ToNotificationResponses(notifications),
	})
}

// deleteGoal clears the goal and its milestone flags.
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.goalService.DeleteGoal(c.Request.Context()); err != nil {
		logger.Error("Failed to delete goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.Status(http.StatusNoContent)
}
