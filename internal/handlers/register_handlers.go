package handlers

import (
	"github.com/degroeneboom/school_site_app/cmd/docs"
	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/degroeneboom/school_site_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploads portsrepo.UploadStore,
) {
	dto.RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services, uploads)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the public /api/v1 group and the JWT-protected
// /api/v1/admin group, then delegates to the entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploads portsrepo.UploadStore,
) {
	public := r.Group("/api/v1")
	admin := public.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSiteRoutes(public, admin, services.Sync)
	registerNewsRoutes(public, admin, services.Sync)
	registerEventRoutes(public, admin, services.Sync)
	registerAlbumRoutes(public, admin, services.Sync)
	registerTeamRoutes(public, admin, services.Sync)
	registerActivityRoutes(public, admin, services.Sync)
	registerDownloadRoutes(public, admin, services.Sync)
	registerPageRoutes(public, admin, services.Sync)
	registerSubmissionRoutes(public, admin, services.Sync)
	registerEnrollmentRoutes(public, admin, services.Sync)
	registerUploadRoutes(admin, uploads)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
