package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"creator-compass/report"
	"creator-compass/script"
	"creator-compass/search"
	"creator-compass/shared/config"
	"creator-compass/shared/monitoring"
)

// Server exposes the search and script workflows over HTTP. A nil
// orchestrator means search is disabled (no API key configured); script
// routes keep working.
type Server struct {
	cfg          *config.Config
	orchestrator *search.Orchestrator
	workflow     *script.Workflow
	monitor      *monitoring.Monitor
	exporter     *report.Exporter
}

func NewServer(cfg *config.Config, orchestrator *search.Orchestrator, workflow *script.Workflow, monitor *monitoring.Monitor, exporter *report.Exporter) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
		workflow:     workflow,
		monitor:      monitor,
		exporter:     exporter,
	}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.GET("/status", s.handleStatus)

	api := r.Group("/api")
	api.POST("/search", s.handleSearch)
	api.GET("/search/export", s.handleExport)

	sc := api.Group("/script")
	sc.GET("", s.handleScriptState)
	sc.GET("/styles", s.handleStyles)
	sc.POST("/analyze", s.handleAnalyze)
	sc.POST("/select", s.handleSelect)
	sc.POST("/step", s.handleStep)
	sc.POST("/sections/:index/improve", s.handleImproveSection)
	sc.POST("/generate", s.handleGenerate)
	sc.POST("/improve", s.handleImproveScript)
	sc.POST("/versions/:index/restore", s.handleRestoreVersion)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("API server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Printf("API server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.monitor.IsHealthy() {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
}

func (s *Server) handleStatus(c *gin.Context) {
	status := gin.H{
		"summary":        s.monitor.GetStatusSummary(),
		"search_enabled": s.orchestrator != nil,
	}
	if s.orchestrator != nil {
		status["search_state"] = s.orchestrator.State()
	}
	c.JSON(http.StatusOK, status)
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

func (s *Server) handleSearch(c *gin.Context) {
	if s.orchestrator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": search.ErrMissingAPIKey.Error()})
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := s.orchestrator.Search(c.Request.Context(), req.Query)
	if err != nil {
		s.searchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"query": req.Query, "results": results})
}

func (s *Server) handleExport(c *gin.Context) {
	if s.orchestrator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": search.ErrMissingAPIKey.Error()})
		return
	}

	results := s.orchestrator.Results()
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no results to export; run a search first"})
		return
	}

	html, err := s.exporter.Render(&report.Data{
		Query:       c.Query("query"),
		GeneratedAt: time.Now(),
		Results:     results,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="competitor-analysis.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// searchError maps pipeline errors to HTTP statuses. Provider failures are
// a bad gateway; anything unexpected stays a generic 500 without leaking
// internals.
func (s *Server) searchError(c *gin.Context, err error) {
	var provErr *search.ProviderError
	switch {
	case errors.Is(err, search.ErrMissingAPIKey):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, search.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, search.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &provErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Error()})
	default:
		log.Printf("Unexpected search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search videos. Please try again."})
	}
}

func (s *Server) handleScriptState(c *gin.Context) {
	c.JSON(http.StatusOK, s.workflow.Snapshot())
}

func (s *Server) handleStyles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": script.Styles})
}

// AnalyzeRequest is the body of POST /api/script/analyze.
type AnalyzeRequest struct {
	Notes string `json:"notes" binding:"required"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := s.workflow.Analyze(c.Request.Context(), req.Notes)
	if err != nil {
		s.scriptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// SelectRequest is the body of POST /api/script/select.
type SelectRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (s *Server) handleSelect(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outline, err := s.workflow.SelectPath(*req.Index)
	if err != nil {
		s.scriptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outline": outline})
}

// StepRequest is the body of POST /api/script/step.
type StepRequest struct {
	Step string `json:"step" binding:"required"`
}

func (s *Server) handleStep(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.workflow.GoTo(script.Step(req.Step)); err != nil {
		s.scriptError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.workflow.Snapshot())
}

func (s *Server) handleImproveSection(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section index must be a number"})
		return
	}

	outline, err := s.workflow.ImproveSection(c.Request.Context(), index)
	if err != nil {
		s.scriptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outline": outline})
}

// GenerateRequest is the body of POST /api/script/generate.
type GenerateRequest struct {
	Topic string `json:"topic" binding:"required"`
	Style string `json:"style"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := s.workflow.GenerateScript(c.Request.Context(), req.Topic, req.Style)
	if err != nil {
		s.scriptError(c, err)
		return
	}

	snap := s.workflow.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"script":   content,
		"keywords": snap.Keywords,
		"metrics":  snap.Metrics,
	})
}

func (s *Server) handleImproveScript(c *gin.Context) {
	content, err := s.workflow.ImproveScript(c.Request.Context())
	if err != nil {
		s.scriptError(c, err)
		return
	}

	snap := s.workflow.Snapshot()
	c.JSON(http.StatusOK, gin.H{"script": content, "metrics": snap.Metrics})
}

func (s *Server) handleRestoreVersion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version index must be a number"})
		return
	}

	content, err := s.workflow.RestoreVersion(index)
	if err != nil {
		s.scriptError(c, err)
		return
	}

	snap := s.workflow.Snapshot()
	c.JSON(http.StatusOK, gin.H{"script": content, "metrics": snap.Metrics})
}

func (s *Server) scriptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, script.ErrEmptyNotes),
		errors.Is(err, script.ErrNoSuggestion),
		errors.Is(err, script.ErrNoSection),
		errors.Is(err, script.ErrStepLocked):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, script.ErrNoOutline), errors.Is(err, script.ErrNoScript):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	default:
		log.Printf("Unexpected script error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Script operation failed. Please try again."})
	}
}
