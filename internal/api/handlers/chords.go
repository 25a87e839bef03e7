package handlers

import (
	"net/http"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/models"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type ChordHandler struct {
	oracle theory.ChordToneOracle
}

func NewChordHandler(oracle theory.ChordToneOracle) *ChordHandler {
	if oracle == nil {
		oracle = theory.IntervalOracle{}
	}
	return &ChordHandler{oracle: oracle}
}

// Tones returns the pitch classes of a chord
// GET /api/v1/chords/tones?root=A&quality=minor or ?chord=Am
func (h *ChordHandler) Tones(c *gin.Context) {
	chord, err := chordFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc, err := theory.PitchClassOf(chord.root)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality := theory.NormalizeQuality(chord.quality)

	tones := h.oracle.ChordTones(pc, quality)
	if len(tones) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "unknown chord quality: " + strings.TrimSpace(chord.quality),
			"qualities": theory.Qualities(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChordTonesResponse{
		Root:    pc.String(),
		Quality: quality,
		Tones:   theory.NoteNames(tones),
	})
}

// Qualities lists the chord qualities the oracle knows
// GET /api/v1/chords/qualities
func (h *ChordHandler) Qualities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"qualities": theory.Qualities()})
}
