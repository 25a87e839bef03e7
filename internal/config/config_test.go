package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "AUTH_MODE", "PLAYABLE_FRET_MIN", "PLAYABLE_FRET_MAX",
		"MAX_VOICINGS", "VOICING_LIBRARY_PATH", "VOICING_CACHE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.PlayableFretMin)
	assert.Equal(t, 15, cfg.PlayableFretMax)
	assert.Equal(t, 5, cfg.MaxVoicings)
	assert.True(t, cfg.VoicingCache)
	assert.False(t, cfg.IsGatewayMode())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTH_MODE", "gateway")
	t.Setenv("PLAYABLE_FRET_MAX", "12")
	t.Setenv("MAX_VOICINGS", "three")
	t.Setenv("VOICING_CACHE_ENABLED", "false")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.IsGatewayMode())
	assert.Equal(t, 12, cfg.PlayableFretMax)
	assert.Equal(t, 5, cfg.MaxVoicings, "invalid numbers fall back to the default")
	assert.False(t, cfg.VoicingCache)
}
