package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/services"
)

// createSheetHandler handles POST /api/v1/sheets.
func (s *Server) createSheetHandler(c *gin.Context) {
	var req services.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sheet, err := s.sheets.CreateSheet(c.Request.Context(), &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sheet)
}

// getSheetHandler handles GET /api/v1/sheets/:id.
func (s *Server) getSheetHandler(c *gin.Context) {
	sheet, err := s.sheets.GetSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// cellEditHandler handles POST /api/v1/sheets/:id/cells — a user cell
// edit that seeds (or re-seeds) a row's fill chain.
func (s *Server) cellEditHandler(c *gin.Context) {
	var req models.CellEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SheetID = c.Param("id")

	event, err := s.ingest.EnqueueCellEdit(c.Request.Context(), &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"event_id": event.ID})
}

// bulkRowsHandler handles POST /api/v1/sheets/:id/rows — CSV or agent
// row insertion. start_row positions the batch.
func (s *Server) bulkRowsHandler(c *gin.Context) {
	var req models.BulkRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SheetID = c.Param("id")

	startRow := 0
	if v := c.Query("start_row"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_row must be a non-negative integer"})
			return
		}
		startRow = n
	}

	events, err := s.ingest.BulkCreateRows(c.Request.Context(), &req, startRow)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	eventIDs := make([]string, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}
	c.JSON(http.StatusAccepted, gin.H{"event_ids": eventIDs, "rows": len(req.Rows)})
}

// manualTriggerHandler handles POST /api/v1/sheets/:id/triggers —
// re-running a chosen operator on one cell.
func (s *Server) manualTriggerHandler(c *gin.Context) {
	var req models.ManualTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SheetID = c.Param("id")

	event, err := s.ingest.EnqueueManualTrigger(c.Request.Context(), &req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"event_id": event.ID})
}

// listStatusesHandler handles GET /api/v1/sheets/:id/statuses.
func (s *Server) listStatusesHandler(c *gin.Context) {
	statuses, err := s.statuses.ListForSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// listRowEventsHandler handles GET /api/v1/sheets/:id/rows/:row/events.
func (s *Server) listRowEventsHandler(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row must be a non-negative integer"})
		return
	}

	events, err := s.events.ListRowEvents(c.Request.Context(), c.Param("id"), row)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *gin.Context) {
	event, err := s.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
