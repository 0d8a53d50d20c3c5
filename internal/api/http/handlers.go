package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forgewp/blockforge/internal/blueprint"
	"github.com/forgewp/blockforge/internal/infrastructure/logging"
	"github.com/forgewp/blockforge/internal/infrastructure/monitoring"
	"github.com/forgewp/blockforge/internal/markup"
	"github.com/forgewp/blockforge/internal/patterns"
	"github.com/forgewp/blockforge/internal/sanitize"
	"github.com/forgewp/blockforge/internal/theme"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	logger          *logging.Logger
	metrics         *monitoring.Metrics
	compiler        *blueprint.Compiler
	sanitizeDefault bool
}

// NewHandlers creates a new handler set.
func NewHandlers(logger *logging.Logger, metrics *monitoring.Metrics, compiler *blueprint.Compiler, sanitizeDefault bool) *Handlers {
	return &Handlers{
		logger:          logger,
		metrics:         metrics,
		compiler:        compiler,
		sanitizeDefault: sanitizeDefault,
	}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "blockforge",
		"version": "0.3.0",
	})
}

// Health handles the health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"uptime_seconds": h.metrics.UptimeSeconds(),
		"sections":       len(patterns.SectionNames()),
	})
}

// ListSections lists declared section types and their layout variants.
func (h *Handlers) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": patterns.Catalog(),
	})
}

// GenerateRequest is the body of POST /generate/section.
type GenerateRequest struct {
	Type     string                 `json:"type" binding:"required"`
	Variant  string                 `json:"variant"`
	Config   map[string]interface{} `json:"config"`
	Sanitize *bool                  `json:"sanitize"`
}

// GenerateSection generates one section and returns its markup.
func (h *Handlers) GenerateSection(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := req.Config
	if h.shouldSanitize(req.Sanitize) {
		cfg = sanitize.Config(cfg)
	}

	start := time.Now()
	block := patterns.Generate(req.Type, req.Variant, cfg)
	if block == nil {
		h.metrics.SectionsSkipped.Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section type: " + req.Type})
		return
	}
	doc := markup.Serialize(*block)

	h.metrics.RecordGeneration(req.Type, req.Variant, time.Since(start))
	h.metrics.RecordMarkup(len(doc))

	c.JSON(http.StatusOK, gin.H{
		"section": req.Type,
		"variant": req.Variant,
		"markup":  doc,
	})
}

// GeneratePage compiles a full blueprint (YAML or JSON body) into a page
// document.
func (h *Handlers) GeneratePage(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "blueprint body required"})
		return
	}

	doc, err := h.compiler.Compile(body)
	if err != nil {
		h.metrics.RecordCompile("error")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.metrics.RecordCompile("ok")
	h.metrics.RecordMarkup(len(doc.Markup))

	h.logger.Info("Blueprint compiled",
		zap.String("id", doc.ID),
		zap.String("title", doc.Title),
		zap.Int("skipped", len(doc.Skipped)),
	)
	c.JSON(http.StatusOK, doc)
}

// BuildTheme builds a theme descriptor from a style configuration. The
// response body is the descriptor document itself.
func (h *Handlers) BuildTheme(c *gin.Context) {
	var cfg theme.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := theme.Encode(theme.Build(cfg))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.metrics.ThemeBuilds.Inc()
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handlers) shouldSanitize(override *bool) bool {
	if override != nil {
		return *override
	}
	return h.sanitizeDefault
}
