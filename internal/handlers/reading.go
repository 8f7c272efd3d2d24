package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/data/repos/readings"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type ReadingHandler struct {
	log  *logger.Logger
	repo readings.Repo
}

func NewReadingHandler(log *logger.Logger, repo readings.Repo) *ReadingHandler {
	return &ReadingHandler{log: log.With("handler", "ReadingHandler"), repo: repo}
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperr.Validationf("unparseable date %q", raw)
	}
	return &t, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFilter(c *gin.Context) (readings.Filter, error) {
	var f readings.Filter

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		return f, err
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		return f, err
	}
	f.StartDate, f.EndDate = start, end

	for _, raw := range splitParam(c.Query("sensor_id")) {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return f, apperr.Validationf("sensor_id %q is not an integer", raw)
		}
		f.SensorIDs = append(f.SensorIDs, id)
	}
	f.SensorNames = splitParam(c.Query("sensor_name"))
	return f, nil
}

func (h *ReadingHandler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	rows, err := h.repo.GetReadings(dbctx.Context{Ctx: c.Request.Context()}, f)
	if err != nil {
		h.log.Error("list readings failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": rows})
}

type createReadingRequest struct {
	Crossection        string    `json:"crossection"`
	SensorName         string    `json:"sensor_name"`
	LocationInTopology []float64 `json:"location_in_topology"`
	Unit               string    `json:"unit"`
	Value              float64   `json:"value"`
	Time               string    `json:"time"`
}

// parseTimestamp accepts RFC3339 plus the zone-less layouts sensor
// exports commonly use; zone-less times are taken as UTC.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validationf("unparseable time %q", raw)
}

func (h *ReadingHandler) Create(c *gin.Context) {
	var req createReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Crossection == "" || req.SensorName == "" || req.Time == "" {
		RespondAppError(c, apperr.Validationf("crossection, sensor_name and time are required"))
		return
	}
	at, err := parseTimestamp(req.Time)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	p := readings.Payload{
		Crossection:        req.Crossection,
		SensorName:         req.SensorName,
		LocationInTopology: req.LocationInTopology,
		Unit:               req.Unit,
		Value:              req.Value,
		Time:               at,
	}

	flat, err := h.repo.CreateReading(dbctx.Context{Ctx: c.Request.Context()}, p)
	if err != nil {
		h.log.Error("create reading failed", "error", err, "crossection", p.Crossection, "sensor", p.SensorName)
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, flat)
}
