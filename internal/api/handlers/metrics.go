package handlers

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/gin-gonic/gin"
)

const bytesToMB = 1024 * 1024

// VoicingStats counts voicing queries since startup. Safe for concurrent use.
type VoicingStats struct {
	requests     atomic.Int64
	emptyResults atomic.Int64
	voicings     atomic.Int64
	mutedStrings atomic.Int64
}

func NewVoicingStats() *VoicingStats {
	return &VoicingStats{}
}

// Record adds one answered chord query
func (s *VoicingStats) Record(returned, muted int) {
	if s == nil {
		return
	}
	s.requests.Add(1)
	s.voicings.Add(int64(returned))
	s.mutedStrings.Add(int64(muted))
	if returned == 0 {
		s.emptyResults.Add(1)
	}
}

// VoicingMetrics is a snapshot of VoicingStats
type VoicingMetrics struct {
	Requests     int64 `json:"requests"`
	EmptyResults int64 `json:"empty_results"`
	Voicings     int64 `json:"voicings"`
	MutedStrings int64 `json:"muted_strings"`
}

func (s *VoicingStats) snapshot() VoicingMetrics {
	if s == nil {
		return VoicingMetrics{}
	}
	return VoicingMetrics{
		Requests:     s.requests.Load(),
		EmptyResults: s.emptyResults.Load(),
		Voicings:     s.voicings.Load(),
		MutedStrings: s.mutedStrings.Load(),
	}
}

// CatalogMetrics describes what the service can answer
type CatalogMetrics struct {
	LibraryVoicings int      `json:"library_voicings"`
	CacheEntries    int      `json:"cache_entries"`
	Templates       int      `json:"templates"`
	Shapes          []string `json:"shapes"`
	Qualities       []string `json:"qualities"`
}

type RuntimeMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
	NumGC        uint32 `json:"num_gc"`
}

type MetricsResponse struct {
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	StartTime     string         `json:"start_time"`
	Uptime        string         `json:"uptime"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Voicings      VoicingMetrics `json:"voicings"`
	Catalog       CatalogMetrics `json:"catalog"`
	Runtime       RuntimeMetrics `json:"runtime"`
}

type MetricsHandler struct {
	startTime time.Time
	version   string
	stats     *VoicingStats
	library   Sizer
	cache     Sizer
}

// NewMetricsHandler reports voicing counters next to the library and cache
// sizes. cache may be nil.
func NewMetricsHandler(version string, stats *VoicingStats, library Sizer, cache Sizer) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		stats:     stats,
		library:   library,
		cache:     cache,
	}
}

// formatUptime renders whole seconds, e.g. "1h1m1s"
func formatUptime(d time.Duration) string {
	return d.Truncate(time.Second).String()
}

// GetMetrics returns counters for the voicing service
// GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	shapes := make([]string, len(caged.AllShapes))
	for i, shape := range caged.AllShapes {
		shapes[i] = string(shape)
	}

	catalog := CatalogMetrics{
		Templates: len(caged.Templates()),
		Shapes:    shapes,
		Qualities: theory.Qualities(),
	}
	if h.library != nil {
		catalog.LibraryVoicings = h.library.Len()
	}
	if h.cache != nil {
		catalog.CacheEntries = h.cache.Len()
	}

	uptime := time.Since(h.startTime)
	c.JSON(http.StatusOK, MetricsResponse{
		Status:        "healthy",
		Version:       h.version,
		StartTime:     h.startTime.UTC().Format(time.RFC3339),
		Uptime:        formatUptime(uptime),
		UptimeSeconds: uptime.Seconds(),
		Voicings:      h.stats.snapshot(),
		Catalog:       catalog,
		Runtime: RuntimeMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAllocMB:   m.Alloc / bytesToMB,
			NumGC:        m.NumGC,
		},
	})
}
