package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/middleware"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes plus the channel read model.
	registerAuthRoutes(r, cfg, services)
	registerChannelRoutes(r, cfg, services)

	// API v1 routes behind the auth middleware.
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName))

	registerUserRoutes(v1, services.User)
}
