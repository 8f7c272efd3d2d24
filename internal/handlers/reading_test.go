package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/data/repos/readings"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

func newReadingRouter(tb testing.TB) *gin.Engine {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	h := NewReadingHandler(log, readings.NewMemoryRepo(readings.DefaultMemorySeed()))

	router := gin.New()
	router.GET("/api/readings", h.List)
	router.POST("/api/readings", h.Create)
	return router
}

func postReading(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/readings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReadingAcceptsZonelessTime(t *testing.T) {
	router := newReadingRouter(t)

	w := postReading(router, `{
		"crossection": "Crossection 1",
		"sensor_name": "Sensor 1",
		"location_in_topology": [36.2, 13.9],
		"value": 40,
		"time": "2024-09-30T23:20:35"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var flat readings.FlatReading
	if err := json.Unmarshal(w.Body.Bytes(), &flat); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if flat.Time != "2024-09-30T23:20:35Z" {
		t.Fatalf("zone-less time not taken as UTC: %q", flat.Time)
	}
	if flat.Unit != "Unit 1" || flat.Value != 40 {
		t.Fatalf("unexpected reading: %+v", flat)
	}
}

func TestCreateReadingRejectsUnparseableTime(t *testing.T) {
	router := newReadingRouter(t)

	w := postReading(router, `{
		"crossection": "Crossection 1",
		"sensor_name": "Sensor 1",
		"location_in_topology": [1, 1],
		"value": 1,
		"time": "yesterday at noon"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	want := time.Date(2024, 9, 30, 23, 20, 35, 0, time.UTC)
	for _, raw := range []string{
		"2024-09-30T23:20:35Z",
		"2024-09-30T23:20:35",
		"2024-09-30 23:20:35",
	} {
		got, err := parseTimestamp(raw)
		if err != nil {
			t.Fatalf("parseTimestamp(%q): %v", raw, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parseTimestamp(%q) = %v, want %v", raw, got, want)
		}
	}

	if _, err := parseTimestamp("30/09/2024"); !apperr.IsValidation(err) {
		t.Fatalf("want validation error for unknown layout, got %v", err)
	}
}
