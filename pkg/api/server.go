// Package api exposes the HTTP surface of the fill engine: ingress
// endpoints that enqueue fill events, read endpoints for cell statuses
// and events, and the health endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rowboat-dev/rowboat/pkg/database"
	"github.com/rowboat-dev/rowboat/pkg/queue"
	"github.com/rowboat-dev/rowboat/pkg/services"
	"github.com/rowboat-dev/rowboat/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	db       *database.Client
	sheets   *services.SheetService
	ingest   *services.IngestService
	statuses *services.StatusService
	events   *services.EventService
	pool     *queue.WorkerPool

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	sheets *services.SheetService,
	ingest *services.IngestService,
	statuses *services.StatusService,
	events *services.EventService,
	pool *queue.WorkerPool,
) *Server {
	return &Server{
		db:       db,
		sheets:   sheets,
		ingest:   ingest,
		statuses: statuses,
		events:   events,
		pool:     pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sheets", s.createSheetHandler)
		v1.GET("/sheets/:id", s.getSheetHandler)
		v1.GET("/sheets/:id/statuses", s.listStatusesHandler)
		v1.GET("/sheets/:id/rows/:row/events", s.listRowEventsHandler)

		v1.POST("/sheets/:id/cells", s.cellEditHandler)
		v1.POST("/sheets/:id/rows", s.bulkRowsHandler)
		v1.POST("/sheets/:id/triggers", s.manualTriggerHandler)

		v1.GET("/events/:id", s.getEventHandler)
	}

	return router
}

// Start runs the HTTP server in a goroutine.
func (s *Server) Start(addr string) {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	poolHealth := s.pool.Health()

	if err != nil || !poolHealth.IsHealthy {
		body := gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"pool":     poolHealth,
		}
		if err != nil {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	counts, err := s.events.CountByStatus(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"pool":     poolHealth,
		"events":   counts,
	})
}
