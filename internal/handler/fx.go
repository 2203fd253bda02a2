package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetFxRate godoc
// @Summary      Pairwise exchange rate
// @Description  Returns the exchange rate between two currency codes; identical codes short-circuit to 1.0
// @Tags         fx
// @Produce      json
// @Param        from  query  string  true  "Source currency code (e.g., USD)"
// @Param        to    query  string  true  "Target currency code (e.g., EUR)"
// @Success      200  {object}  domain.FxRate
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /fx [get]
func (h *Handler) GetFxRate(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-fx-rate")
	defer span.End()

	from := c.Query("from")
	to := c.Query("to")
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to parameters are required"})
		return
	}

	rate, err := h.fx.GetRate(ctx, from, to)
	if err != nil {
		writeServiceError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, rate)
}
