package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
)

// tipHandler handles HTTP requests for AI savings tips.
type tipHandler struct {
	tipService portssvc.TipSvcFacade
}

func newTipHandler(ts portssvc.TipSvcFacade) *tipHandler {
	return &tipHandler{tipService: ts}
}

// registerTipRoutes registers the savings tip route.
func registerTipRoutes(rg *gin.RouterGroup, tipService portssvc.TipSvcFacade) {
	h := newTipHandler(tipService)

	rg.GET("/tips/savings", h.getSavingsTip)
}

func (h *tipHandler) getSavingsTip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tip, err := h.tipService.GenerateTip(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate savings tip", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate savings tip"})
		return
	}

	c.JSON(http.StatusOK, dto.TipResponse{Tip: tip})
}
