package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/tayara1972/apexview-backend/internal/config"
	"github.com/tayara1972/apexview-backend/internal/domain"
	"github.com/tayara1972/apexview-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer trace.Tracer
	cfg    *config.Config
	quotes *service.QuoteService
	fx     *service.FxService
	search *service.SearchService
}

func New(tracer trace.Tracer, cfg *config.Config, quotes *service.QuoteService, fx *service.FxService, search *service.SearchService) *Handler {
	return &Handler{
		tracer: tracer,
		cfg:    cfg,
		quotes: quotes,
		fx:     fx,
		search: search,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Status)
	r.POST("/telemetry", h.Telemetry)

	data := r.Group("/", RateLimit(h.cfg.RateLimitPerMin))
	data.GET("/quotes", h.GetQuotes)
	data.GET("/fx", h.GetFxRate)
	data.GET("/search", h.Search)
}

// writeServiceError maps service-layer error classes onto HTTP responses.
// upstreamStatus lets /search surface provider faults as 502 while /quotes
// and /fx keep them at 500. Upstream detail is logged, never echoed.
func writeServiceError(c *gin.Context, err error, upstreamStatus int) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider API key not configured"})
	case errors.Is(err, domain.ErrUpstream):
		log.Printf("%s %s: upstream failure: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(upstreamStatus, gin.H{"error": "upstream provider failure"})
	default:
		log.Printf("%s %s: internal error: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
