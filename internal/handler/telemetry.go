package handler

import (
	"net/http"

	"github.com/tayara1972/apexview-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// Telemetry godoc
// @Summary      Accept an anonymized client telemetry report
// @Description  Validates the report against fixed allowlists and bounds; nothing is persisted
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        report  body  telemetry.Report  true  "Telemetry report"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Router       /telemetry [post]
func (h *Handler) Telemetry(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.telemetry")
	defer span.End()

	var report telemetry.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}

	if verr := report.Validate(); verr != nil {
		c.JSON(verr.Status, gin.H{"error": verr.Code})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"reportId": report.ReportID,
		"received": len(report.Events),
	})
}
