package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Conceptual-Machines/harmonia-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/harmonia-api/internal/api/middleware"
	"github.com/Conceptual-Machines/harmonia-api/internal/config"
	"github.com/Conceptual-Machines/harmonia-api/internal/metrics"
	"github.com/Conceptual-Machines/harmonia-api/internal/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	voiceLeadingService := services.NewVoiceLeadingService(cw, cfg.SearchLimit)

	// Voice-leading endpoints (stateless, no auth required)
	voiceLeadingHandler := handlers.NewVoiceLeadingHandler(voiceLeadingService)
	router.POST("/api/voiceleading/search", voiceLeadingHandler.Search)
	router.POST("/api/voiceleading/check", voiceLeadingHandler.Check)
	router.POST("/api/voicings/generate", voiceLeadingHandler.GenerateVoicings)

	// Saved progressions (persisted; ownership comes from the gateway
	// when AUTH_MODE=gateway)
	if db != nil {
		progressions := router.Group("/api/progressions")
		if cfg.IsGatewayMode() {
			progressions.Use(apimiddleware.GatewayAuth())
		} else {
			progressions.Use(apimiddleware.NoAuth())
		}
		{
			progressionHandler := handlers.NewProgressionHandler(db, voiceLeadingService)
			progressions.POST("", progressionHandler.Create)
			progressions.GET("", progressionHandler.List)
			progressions.GET("/:id", progressionHandler.Get)
			progressions.DELETE("/:id", progressionHandler.Delete)
		}
	}

	return router
}
