package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/degroeneboom/school_site_app/internal/adapters/localcache"
	"github.com/degroeneboom/school_site_app/internal/adapters/remote"
	"github.com/degroeneboom/school_site_app/internal/adapters/uploads"
	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	"github.com/degroeneboom/school_site_app/internal/core/services"
	"github.com/degroeneboom/school_site_app/internal/handlers"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/degroeneboom/school_site_app/pkg/config"
	"github.com/degroeneboom/school_site_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title School Site App API
// @version 1.0
// @description Local-first content API for the school website and its admin panel.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the local document replica
	db, err := database.NewBadgerDB(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to open local database", slog.String("error", err.Error()), slog.String("dir", cfg.DataDir))
		os.Exit(1)
	}
	defer database.CloseBadgerDB(db)
	logger.Info("Local database opened.", slog.String("dir", cfg.DataDir))

	cache := localcache.NewBadgerDocumentCache(db)

	// The remote store is optional; without it every write stays local-only.
	var remoteStore portsrepo.RemoteDocumentStore
	if cfg.RemoteAPIURL != "" {
		remoteStore = remote.NewHTTPDocumentStore(cfg.RemoteAPIURL, cfg.RemoteAPIToken, &http.Client{Timeout: 15 * time.Second})
		logger.Info("Remote document store configured.", slog.String("url", cfg.RemoteAPIURL))
	}

	serviceContainer := services.NewServiceContainer(remoteStore, cache, logger)

	// Bootstrap the in-memory document before accepting traffic. Load never
	// fails; a degraded source only surfaces as a warning.
	loadRes := serviceContainer.Sync.Load(context.Background())
	if loadRes.Warning != "" {
		logger.Warn("Document loaded with degraded source", slog.String("source", string(loadRes.Source)), slog.String("warning", loadRes.Warning))
	} else {
		logger.Info("Document loaded.", slog.String("source", string(loadRes.Source)))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("Failed to create upload directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	uploadStore := uploads.NewDiskStore(cfg.UploadDir, "/uploads")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Serve stored uploads under the same reference prefix DiskStore hands out
	r.Static("/uploads", cfg.UploadDir)

	handlers.RegisterRoutes(r, cfg, serviceContainer, uploadStore)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
