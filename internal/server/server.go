// Package server is the thin HTTP shell over the RAG service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"omniassist/internal/config"
	"omniassist/internal/domain"
)

type Server struct {
	svc    domain.RAGService
	cfg    config.ServerConfig
	logger *log.Logger
	router *gin.Engine
}

func New(svc domain.RAGService, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, cfg: cfg, logger: logger}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/", s.handleRoot)
	router.POST("/chat", s.handleChat)
	router.POST("/ingest", s.handleIngest)

	s.router = router
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler { return s.router }

type chatRequest struct {
	Query string `json:"query" binding:"required"`
	Role  string `json:"role"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "OmniAssist API is running"})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if req.Role == "" {
		req.Role = "learner"
	}
	answer, err := s.svc.Answer(c.Request.Context(), req.Query, req.Role)
	if err != nil {
		s.logger.Error("chat request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": answer})
}

// Ingestion is not triggerable over the wire; operators run the ingest
// binary out-of-band.
func (s *Server) handleIngest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Run the ingest binary to index the corpus."})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// Run serves HTTP until SIGINT/SIGTERM, then drains with a bounded timeout.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("OmniAssist backend started", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
