// Package server exposes the engine's trigger, query and snapshot
// surfaces over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"StockGenie/internal/engine"
)

const (
	defaultAlertLimit = 50
	maxAlertLimit     = 200
)

// Server wraps the gin router and the underlying http.Server.
type Server struct {
	engine *engine.Engine
	log    *zap.Logger
	http   *http.Server
}

// New creates the HTTP server on the given port.
func New(eng *engine.Engine, port int, log *zap.Logger) *Server {
	s := &Server{engine: eng, log: log}
	s.http = &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           s.Router(),
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// The source served the trigger on both methods.
	router.POST("/trigger-scan", s.triggerScan)
	router.GET("/trigger-scan", s.triggerScan)

	api := router.Group("/api")
	{
		api.GET("/alerts", s.listAlerts)
		api.GET("/stocks", s.listStocks)
	}
	return router
}

// triggerScan starts a scan pass and acknowledges immediately; the
// response says the pass started, not that it finished.
func (s *Server) triggerScan(c *gin.Context) {
	s.engine.TriggerScan()
	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}

// listAlerts returns the most recent alerts, newest first.
// GET /api/alerts?limit=N
func (s *Server) listAlerts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAlertLimit)))
	if err != nil || limit <= 0 {
		limit = defaultAlertLimit
	}
	if limit > maxAlertLimit {
		limit = maxAlertLimit
	}

	alerts, err := s.engine.RecentAlerts(limit)
	if err != nil {
		s.log.Error("list alerts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// listStocks returns the per-symbol snapshot + trend view sorted by
// descending intraday volume. Symbols without data are omitted.
// GET /api/stocks
func (s *Server) listStocks(c *gin.Context) {
	views := s.engine.Snapshots()
	out := make([]gin.H, 0, len(views))
	for _, v := range views {
		out = append(out, gin.H{
			"symbol":        v.Snapshot.Symbol,
			"price":         v.Snapshot.Price,
			"change_pct":    v.Snapshot.ChangePct,
			"volume":        v.Snapshot.Volume,
			"ai_prediction": string(v.Trend),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Start begins serving. Blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
