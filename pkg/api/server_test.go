package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/queue"
	"github.com/rowboat-dev/rowboat/pkg/services"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	pool := queue.NewWorkerPool("pod-test", client.Client, config.DefaultDispatcherConfig(), nil)

	server := NewServer(client,
		services.NewSheetService(client.Client),
		services.NewIngestService(client.Client),
		services.NewStatusService(client.Client),
		services.NewEventService(client.Client),
		pool)
	return server.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createTestSheet(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets", gin.H{
		"columns": []gin.H{
			{"title": "Company", "data_type": "company"},
			{"title": "Website", "data_type": "url"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sheet struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sheet))
	require.NotEmpty(t, sheet.ID)
	return sheet.ID
}

func TestCreateSheetEndpoint(t *testing.T) {
	router := setupServer(t)

	t.Run("creates and fetches a sheet", func(t *testing.T) {
		id := createTestSheet(t, router)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/sheets/"+id, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets", gin.H{
			"columns": []gin.H{{"title": "Lonely"}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing sheet returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/sheets/no-such-sheet", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCellEditEndpoint(t *testing.T) {
	router := setupServer(t)
	id := createTestSheet(t, router)

	t.Run("accepted edit returns the event id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/cells", gin.H{
			"row_index": 0, "col_index": 0, "content": "Acme Robotics",
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var resp struct {
			EventID string `json:"event_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.EventID)

		get := doJSON(t, router, http.MethodGet, "/api/v1/events/"+resp.EventID, nil)
		assert.Equal(t, http.StatusOK, get.Code)
	})

	t.Run("empty content returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/cells", gin.H{
			"row_index": 0, "col_index": 0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBulkRowsEndpoint(t *testing.T) {
	router := setupServer(t)
	id := createTestSheet(t, router)

	t.Run("enqueues one event per seeded row", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/rows?start_row=5", gin.H{
			"rows": [][]string{{"Acme"}, {"Globex"}},
		})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var resp struct {
			EventIDs []string `json:"event_ids"`
			Rows     int      `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.EventIDs, 2)
		assert.Equal(t, 2, resp.Rows)
	})

	t.Run("bad start_row returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/rows?start_row=-2", gin.H{
			"rows": [][]string{{"Acme"}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestManualTriggerEndpoint(t *testing.T) {
	router := setupServer(t)
	id := createTestSheet(t, router)

	t.Run("accepted trigger", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/triggers", gin.H{
			"row_index": 0, "col_index": 1, "trigger_type": "google_search",
		})
		assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	})

	t.Run("unknown operator returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/triggers", gin.H{
			"row_index": 0, "col_index": 1, "trigger_type": "crystal_ball",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListRowEventsEndpoint(t *testing.T) {
	router := setupServer(t)
	id := createTestSheet(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sheets/"+id+"/cells", gin.H{
		"row_index": 3, "col_index": 0, "content": "Acme Robotics",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	t.Run("lists the row's events in order", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/sheets/"+id+"/rows/3/events", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Events []struct {
				EventType string `json:"event_type"`
			} `json:"events"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 1)
		assert.Equal(t, "user_cell_edit", resp.Events[0].EventType)
	})

	t.Run("bad row returns 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/sheets/"+id+"/rows/abc/events", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
