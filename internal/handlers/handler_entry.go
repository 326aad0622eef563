package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to savings entries.
type entryHandler struct {
	entryService     portssvc.EntrySvcFacade
	milestoneService portssvc.MilestoneSvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade, ms portssvc.MilestoneSvcFacade) *entryHandler {
	return &entryHandler{
		entryService:     es,
		milestoneService: ms,
	}
}

// RegisterEntryRoutes registers routes related to entries.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade, milestoneService portssvc.MilestoneSvcFacade) {
	h := newEntryHandler(entryService, milestoneService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.POST("/transfers", h.createTransfer)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), params.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToEntryListResponse(entries)})
}

func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	resp := dto.ToEntryResponse(entry)
	c.JSON(http.StatusCreated, dto.EntryMutationResponse{
		Entry:         &resp,
		Notifications: h.evaluateMilestones(c),
	})
}

func (h *entryHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.entryService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transfer"})
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		Entries:       dto.ToEntryListResponse(entries),
		Notifications: h.evaluateMilestones(c),
	})
}

func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}
	if entry == nil {
		// Stale reference, nothing was stored under that ID.
		c.Status(http.StatusNoContent)
		return
	}

	resp := dto.ToEntryResponse(entry)
	c.JSON(http.StatusOK, dto.EntryMutationResponse{
		Entry:         &resp,
		Notifications: h.evaluateMilestones(c),
	})
}

func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// evaluateMilestones runs the milestone check after a mutation. Evaluation
// failures are logged and swallowed so the mutation response still succeeds.
func (h *entryHandler) evaluateMilestones(c *gin.Context) []dto.NotificationResponse {
	notifications, err := h.milestoneService.Evaluate(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Milestone evaluation failed after entry mutation", slog.String("error", err.Error()))
		notifications = nil
	}
	return dto.ToNotificationResponses(notifications)
}
