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

// conceptHandler handles HTTP requests related to the concept registry.
type conceptHandler struct {
	conceptService portssvc.ConceptSvcFacade
}

func newConceptHandler(cs portssvc.ConceptSvcFacade) *conceptHandler {
	return &conceptHandler{conceptService: cs}
}

// registerConceptRoutes registers routes related to concepts.
func registerConceptRoutes(rg *gin.RouterGroup, conceptService portssvc.ConceptSvcFacade) {
	h := newConceptHandler(conceptService)

	concepts := rg.Group("/concepts")
	{
		concepts.GET("", h.listConcepts)
		concepts.POST("", h.addConcept)
		concepts.PUT("/reorder", h.reorderConcepts)
		concepts.PUT("/:name", h.renameConcept)
		concepts.DELETE("/:name", h.deleteConcept)
	}
}

func (h *conceptHandler) listConcepts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	concepts, err := h.conceptService.ListConcepts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list concepts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list concepts"})
		return
	}

	c.JSON(http.StatusOK, dto.ConceptListResponse{Concepts: concepts})
}

func (h *conceptHandler) addConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	concepts, err := h.conceptService.AddConcept(c.Request.Context(), req.Name)
	if err != nil {
		h.writeConceptError(c, logger, err, "Failed to add concept")
		return
	}

	c.JSON(http.StatusCreated, dto.ConceptListResponse{Concepts: concepts})
}

func (h *conceptHandler) renameConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	var req dto.RenameConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	concepts, err := h.conceptService.RenameConcept(c.Request.Context(), name, req.NewName)
	if err != nil {
		h.writeConceptError(c, logger, err, "Failed to rename concept")
		return
	}

	c.JSON(http.StatusOK, dto.ConceptListResponse{Concepts: concepts})
}

func (h *conceptHandler) deleteConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	concepts, err := h.conceptService.DeleteConcept(c.Request.Context(), name)
	if err != nil {
		h.writeConceptError(c, logger, err, "Failed to delete concept")
		return
	}

	c.JSON(http.StatusOK, dto.ConceptListResponse{Concepts: concepts})
}

func (h *conceptHandler) reorderConcepts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReorderConceptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	concepts, err := h.conceptService.ReorderConcepts(c.Request.Context(), *req.FromIndex, *req.ToIndex)
	if err != nil {
		h.writeConceptError(c, logger, err, "Failed to reorder concepts")
		return
	}

	c.JSON(http.StatusOK, dto.ConceptListResponse{Concepts: concepts})
}

// writeConceptError maps service errors to HTTP status codes.
func (h *conceptHandler) writeConceptError(c *gin.Context, logger *slog.Logger, err error, genericMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Concept validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate concept", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(genericMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
	}
}
