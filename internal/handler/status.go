package handler

import (
	"net/http"
	"time"

	"github.com/tayara1972/apexview-backend/internal/cache"

	"github.com/gin-gonic/gin"
)

// Status godoc
// @Summary      Service status
// @Description  Returns service identity, environment, and wired providers
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"service":     "apexview-backend",
		"environment": h.cfg.Environment,
		"providers": gin.H{
			"quotes": h.quotes.ProviderName(),
			"fx":     h.fx.ProviderName(),
			"search": h.search.ProviderName(),
		},
		"cacheTtlMinutes": int(cache.DefaultTTL.Minutes()),
		"time":            time.Now().UTC().Format(time.RFC3339),
	})
}
