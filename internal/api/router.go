package api

import (
	"github.com/Conceptual-Machines/caged-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/caged-api/internal/api/middleware"
	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/Conceptual-Machines/caged-api/internal/metrics"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/gin-gonic/gin"
)

// Deps are the components the HTTP surface serves from
type Deps struct {
	Provider  caged.VoicingProvider
	Oracle    theory.ChordToneOracle
	Library   handlers.Sizer
	Cache     handlers.Sizer // nil when caching is disabled
	CWMetrics *metrics.Client
}

func SetupRouter(cfg *config.Config, deps Deps, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(deps.CWMetrics))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.Library, deps.Cache)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	stats := handlers.NewVoicingStats()
	metricsHandler := handlers.NewMetricsHandler(version, stats, deps.Library, deps.Cache)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1 (anonymous or gateway-authenticated per AUTH_MODE)
	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.Auth(cfg))
	{
		voicingHandler := handlers.NewVoicingHandler(cfg, deps.Provider, deps.Oracle, deps.CWMetrics, stats)
		v1.GET("/voicings", voicingHandler.GetVoicings)
		v1.GET("/voicings/batch", voicingHandler.GetVoicingsBatch)

		shapeHandler := handlers.NewShapeHandler(deps.Oracle)
		v1.POST("/shapes/classify", shapeHandler.Classify)
		v1.GET("/shapes/:shape/transpose", shapeHandler.Transpose)

		chordHandler := handlers.NewChordHandler(deps.Oracle)
		v1.GET("/chords/tones", chordHandler.Tones)
		v1.GET("/chords/qualities", chordHandler.Qualities)
	}

	return router
}
