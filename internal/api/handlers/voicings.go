package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/metrics"
	"github.com/Conceptual-Machines/caged-api/internal/models"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type VoicingHandler struct {
	provider      caged.VoicingProvider
	oracle        theory.ChordToneOracle
	cfg           *config.Config
	cwMetrics     *metrics.Client
	sentryMetrics *metrics.SentryMetrics
	stats         *VoicingStats
}

// NewVoicingHandler serves chord voicings from provider. cwMetrics and stats
// may be nil.
func NewVoicingHandler(
	cfg *config.Config,
	provider caged.VoicingProvider,
	oracle theory.ChordToneOracle,
	cwMetrics *metrics.Client,
	stats *VoicingStats,
) *VoicingHandler {
	if oracle == nil {
		oracle = theory.IntervalOracle{}
	}
	return &VoicingHandler{
		provider:      provider,
		oracle:        oracle,
		cfg:           cfg,
		cwMetrics:     cwMetrics,
		sentryMetrics: metrics.NewSentryMetrics(),
		stats:         stats,
	}
}

// chordRequest is one chord resolved from query parameters
type chordRequest struct {
	symbol  string
	root    string
	quality string
}

// GetVoicings returns the CAGED voicings of one chord
// GET /api/v1/voicings?root=A&quality=minor or ?chord=Am
func (h *VoicingHandler) GetVoicings(c *gin.Context) {
	chord, err := chordFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts, err := h.optionsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.compute(c.Request.Context(), chord, opts)
	if err != nil {
		h.respondError(c, chord, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetVoicingsBatch returns voicings for several chord symbols, computed concurrently
// GET /api/v1/voicings/batch?chords=C,Am,G7
func (h *VoicingHandler) GetVoicingsBatch(c *gin.Context) {
	symbols := splitChords(c.Query("chords"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chords is required"})
		return
	}
	if len(symbols) > maxBatchChords {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("at most %d chords per request", maxBatchChords),
		})
		return
	}

	chords := make([]chordRequest, len(symbols))
	for i, symbol := range symbols {
		root, quality, err := theory.ParseChordSymbol(symbol)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "chord": symbol})
			return
		}
		chords[i] = chordRequest{symbol: symbol, root: root, quality: quality}
	}

	opts, err := h.optionsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]models.VoicingsResponse, len(chords))
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(batchConcurrency)
	for i, chord := range chords {
		i, chord := i, chord
		g.Go(func() error {
			resp, err := h.compute(ctx, chord, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", chord.symbol, err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.respondError(c, chordRequest{symbol: c.Query("chords")}, err)
		return
	}

	c.JSON(http.StatusOK, models.BatchVoicingsResponse{Results: results})
}

// compute runs one chord query and records logs and metrics for it
func (h *VoicingHandler) compute(ctx context.Context, chord chordRequest, opts caged.Options) (models.VoicingsResponse, error) {
	start := time.Now()

	voicings, err := h.provider.GetVoicings(chord.root, chord.quality, opts)
	if err != nil {
		return models.VoicingsResponse{}, err
	}

	pc, err := theory.PitchClassOf(chord.root)
	if err != nil {
		return models.VoicingsResponse{}, err
	}
	quality := theory.NormalizeQuality(chord.quality)

	muted := 0
	for _, v := range voicings {
		muted += len(v.Corrections)
	}

	label := pc.String() + " " + quality
	duration := time.Since(start)
	logger.LogVoicingRequest(ctx, label, duration, len(voicings), muted, logger.Fields{
		"max":            opts.MaxCount,
		"min_fret":       opts.MinFret,
		"max_fret":       opts.MaxFret,
		"only_validated": opts.OnlyValidated,
	})
	h.sentryMetrics.RecordVoicingRequest(ctx, label, len(voicings), muted, duration)
	h.cwMetrics.RecordVoicingRequest(quality, len(voicings), muted)
	h.stats.Record(len(voicings), muted)

	return models.VoicingsResponse{
		Chord:      chord.symbol,
		Root:       pc.String(),
		Quality:    quality,
		ChordTones: theory.NoteNames(h.oracle.ChordTones(pc, quality)),
		Voicings:   models.FromVoicings(voicings),
	}, nil
}

func (h *VoicingHandler) respondError(c *gin.Context, chord chordRequest, err error) {
	if errors.Is(err, theory.ErrInvalidNote) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := logger.WithContext(c)
	fields["chord"] = chord.symbol
	logger.Error("Failed to compute voicings", err, fields)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Failed to compute voicings",
		"request_id": c.GetString("request_id"),
	})
}

// optionsFromQuery starts from the configured defaults and applies max,
// min_fret, max_fret and only_validated
func (h *VoicingHandler) optionsFromQuery(c *gin.Context) (caged.Options, error) {
	opts := caged.Options{
		MaxCount: h.cfg.MaxVoicings,
		MinFret:  h.cfg.PlayableFretMin,
		MaxFret:  h.cfg.PlayableFretMax,
	}

	var err error
	if opts.MaxCount, err = queryInt(c, "max", opts.MaxCount); err != nil {
		return opts, err
	}
	if opts.MinFret, err = queryInt(c, "min_fret", opts.MinFret); err != nil {
		return opts, err
	}
	if opts.MaxFret, err = queryInt(c, "max_fret", opts.MaxFret); err != nil {
		return opts, err
	}
	// Base frets start at 1, so an explicit zero ceiling can never match
	if c.Query("max_fret") != "" && opts.MaxFret == 0 {
		return opts, errors.New("max_fret must be at least 1")
	}
	if opts.OnlyValidated, err = queryBool(c, "only_validated", false); err != nil {
		return opts, err
	}

	if opts.MinFret > theory.MaxFret || opts.MaxFret > theory.MaxFret {
		return opts, fmt.Errorf("fret range must be within 0-%d", theory.MaxFret)
	}
	if opts.MaxFret > 0 && opts.MinFret > opts.MaxFret {
		return opts, fmt.Errorf("min_fret %d is above max_fret %d", opts.MinFret, opts.MaxFret)
	}
	return opts, nil
}

// chordFromQuery reads either chord=<symbol> or root=<note>&quality=<tag>
func chordFromQuery(c *gin.Context) (chordRequest, error) {
	if symbol := strings.TrimSpace(c.Query("chord")); symbol != "" {
		root, quality, err := theory.ParseChordSymbol(symbol)
		if err != nil {
			return chordRequest{}, err
		}
		return chordRequest{symbol: symbol, root: root, quality: quality}, nil
	}

	root := strings.TrimSpace(c.Query("root"))
	if root == "" {
		return chordRequest{}, errors.New("root or chord is required")
	}
	quality := c.DefaultQuery("quality", defaultQuality)
	return chordRequest{symbol: root + " " + quality, root: root, quality: quality}, nil
}

func splitChords(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func queryBool(c *gin.Context, name string, fallback bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return b, nil
}
