package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/caged-api/internal/api"
	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/Conceptual-Machines/caged-api/internal/library"
	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/metrics"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "caged-api@" + releaseVersion,            // Use embedded release version
			EnableTracing:    true,                                     // Enable tracing for spans
			TracesSampleRate: 1.0,                                      // 100% sampling for now, adjust based on volume
			EnableLogs:       true,                                     // Enable Sentry Logs feature
			Debug:            cfg.Environment != environmentProduction, // Enable debug in non-prod
			BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
				// Filter out sensitive data
				if event.Request != nil {
					event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				}
				return event
			},
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			// Flush on shutdown
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Load the curated voicing library (embedded unless VOICING_LIBRARY_PATH is set)
	lib, err := library.Open(cfg.VoicingLibraryPath)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to load voicing library:", err)
	}
	log.Printf("🎸 Voicing library loaded (%d voicings)", lib.Len())

	oracle := theory.IntervalOracle{}
	assembler := caged.NewAssembler(oracle, lib)
	deps := api.Deps{
		Provider: assembler,
		Oracle:   oracle,
		Library:  lib,
	}
	if cfg.VoicingCache {
		cached := caged.NewCachedAssembler(assembler)
		deps.Provider = cached
		deps.Cache = cached
	}

	// CloudWatch metrics (production only)
	cwMetrics, err := metrics.NewClient(context.Background(), cfg.Environment, cfg.CloudWatchNamespace)
	if err != nil {
		log.Printf("⚠️  CloudWatch metrics unavailable: %v", err)
	}
	deps.CWMetrics = cwMetrics

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(cfg, deps, GetVersion())

	// Start server
	port := cfg.Port
	log.Printf("🚀 Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
		"x-user-email":  true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
