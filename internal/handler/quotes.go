package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetQuotes godoc
// @Summary      Batch quote lookup
// @Description  Returns normalized quotes for up to 100 comma-separated symbols; per-symbol provider failures yield absent-valued entries, not batch failure
// @Tags         quotes
// @Produce      json
// @Param        symbols  query  string  true  "Comma-separated symbols (e.g., AAPL,BTC-USD)"
// @Success      200  {object}  domain.QuoteBatch
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /quotes [get]
func (h *Handler) GetQuotes(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-quotes")
	defer span.End()

	symbols := c.Query("symbols")
	if symbols == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols parameter is required"})
		return
	}

	batch, err := h.quotes.GetQuotes(ctx, symbols)
	if err != nil {
		writeServiceError(c, err, http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.Int("quotes.returned", len(batch.Data)))

	c.JSON(http.StatusOK, batch)
}
