package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: the service is stateless - no database, chord voicings are computed per request
type Config struct {
	// Environment
	Environment string
	Port        string
	LogLevel    string

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchNamespace string // Namespace for custom CloudWatch metrics (production only)

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the fronting gateway
	AuthMode string

	// Voicing generation
	PlayableFretMin    int    // Lowest base fret a voicing may start on
	PlayableFretMax    int    // Highest base fret a voicing may start on
	MaxVoicings        int    // Default number of voicings per request
	VoicingLibraryPath string // YAML voicing library; empty uses the embedded one
	VoicingCache       bool   // Memoize voicings per chord and options
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "CAGED/API"),
		AuthMode:            getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
		PlayableFretMin:     getEnvInt("PLAYABLE_FRET_MIN", 0),
		PlayableFretMax:     getEnvInt("PLAYABLE_FRET_MAX", 15),
		MaxVoicings:         getEnvInt("MAX_VOICINGS", 5),
		VoicingLibraryPath:  getEnv("VOICING_LIBRARY_PATH", ""),
		VoicingCache:        getEnv("VOICING_CACHE_ENABLED", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("⚠️  Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// IsGatewayMode returns true if running behind the gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
