package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sizer reports how many entries a component holds
type Sizer interface {
	Len() int
}

type HealthHandler struct {
	library Sizer
	cache   Sizer
}

// NewHealthHandler reports the curated library size and, when caching is
// enabled, the number of memoized chord queries. cache may be nil.
func NewHealthHandler(library Sizer, cache Sizer) *HealthHandler {
	return &HealthHandler{library: library, cache: cache}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status": "healthy",
		"library": gin.H{
			"voicings": h.library.Len(),
		},
	}
	if h.cache != nil {
		resp["cache"] = gin.H{
			"entries": h.cache.Len(),
		}
	}
	c.JSON(http.StatusOK, resp)
}
