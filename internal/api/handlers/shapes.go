package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/models"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type ShapeHandler struct {
	transposer *caged.Transposer
}

func NewShapeHandler(oracle theory.ChordToneOracle) *ShapeHandler {
	return &ShapeHandler{transposer: caged.NewTransposer(oracle)}
}

// Classify labels a fret pattern with the CAGED shape it most resembles
// POST /api/v1/shapes/classify
func (h *ShapeHandler) Classify(c *gin.Context) {
	var req models.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frets, err := caged.FretsFromSlice(req.Frets)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	baseFret := req.BaseFret
	if baseFret == 0 {
		baseFret = 1
	}
	if baseFret < 1 || baseFret > theory.MaxFret {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base_fret must be between 1 and 24"})
		return
	}

	c.JSON(http.StatusOK, models.ClassifyResponse{
		Shape: string(caged.ClassifyShape(frets, baseFret)),
	})
}

// Transpose moves a shape template to a new root
// GET /api/v1/shapes/:shape/transpose?root=C&quality=major&validate=true
func (h *ShapeHandler) Transpose(c *gin.Context) {
	shape, err := caged.ParseShape(c.Param("shape"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	root := strings.TrimSpace(c.Query("root"))
	if root == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "root is required"})
		return
	}
	validate, err := queryBool(c, "validate", defaultValidate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.transposer.Transpose(root, shape, c.DefaultQuery("quality", defaultQuality), validate)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.FromTransposition(t))
	case errors.Is(err, theory.ErrInvalidNote), errors.Is(err, caged.ErrUnsupportedQuality):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, caged.ErrUntransposableShape), errors.Is(err, caged.ErrUnknownChord):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		fields := logger.WithContext(c)
		fields["shape"] = string(shape)
		logger.Error("Transposition failed", err, fields)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Transposition failed",
			"request_id": c.GetString("request_id"),
		})
	}
}
