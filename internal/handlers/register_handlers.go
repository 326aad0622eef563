package handlers

import (
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/platform/config"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes
	registerAuthRoutes(r, cfg)

	// Protected API v1 routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterEntryRoutes(v1, services.Entry, services.Milestone)
	registerConceptRoutes(v1, services.Concept)
	registerGoalRoutes(v1, services.Goal, services.Stats, services.Milestone)
	registerStatsRoutes(v1, services.Stats)
	registerNotificationRoutes(v1, services.Milestone)
	registerTipRoutes(v1, services.Tip)
}
