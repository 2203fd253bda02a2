package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Search godoc
// @Summary      Symbol search
// @Description  Proxies a free-text query (1-20 chars) to the provider search API; upstream faults surface as 502
// @Tags         search
// @Produce      json
// @Param        query  query  string  true  "Free-text query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /search [get]
func (h *Handler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.search")
	defer span.End()

	query := c.Query("query")
	span.SetAttributes(attribute.Int("query.len", len(query)))

	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	results, err := h.search.Search(ctx, query)
	if err != nil {
		// The fault is the third party's, not the caller's.
		writeServiceError(c, err, http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":    h.search.ProviderName(),
		"environment": h.cfg.Environment,
		"query":       query,
		"results":     results,
	})
}
