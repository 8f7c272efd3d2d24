package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/data/repos/registry"
	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

// SensorHandler covers the sensor registry: sensors, their types and the
// units of measure those types carry.
type SensorHandler struct {
	log     *logger.Logger
	sensors registry.SensorRepo
	types   registry.SensorTypeRepo
	units   registry.UnitRepo
}

func NewSensorHandler(log *logger.Logger, sensors registry.SensorRepo, types registry.SensorTypeRepo, units registry.UnitRepo) *SensorHandler {
	return &SensorHandler{
		log:     log.With("handler", "SensorHandler"),
		sensors: sensors,
		types:   types,
		units:   units,
	}
}

func (h *SensorHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	items, err := h.sensors.List(dbctx.Context{Ctx: c.Request.Context()}, activeOnly)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *SensorHandler) Get(c *gin.Context) {
	sensor, err := h.sensors.GetByName(dbctx.Context{Ctx: c.Request.Context()}, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, sensor)
}

type createSensorRequest struct {
	Name                 string `json:"name"`
	SensorTypeID         int    `json:"sensor_type_id"`
	LocationInTopologyID *int   `json:"location_in_topology_id"`
}

func (h *SensorHandler) Create(c *gin.Context) {
	var req createSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Name == "" || req.SensorTypeID == 0 {
		RespondAppError(c, apperr.Validationf("name and sensor_type_id are required"))
		return
	}
	sensor, err := h.sensors.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.Sensor{
		Name:                 req.Name,
		SensorTypeID:         req.SensorTypeID,
		LocationInTopologyID: req.LocationInTopologyID,
		IsActive:             true,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, sensor)
}

func (h *SensorHandler) Deactivate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if err := h.sensors.Deactivate(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createSensorTypeRequest struct {
	Name        string `json:"name"`
	Details     string `json:"details"`
	Multisensor bool   `json:"multisensor"`
}

func (h *SensorHandler) CreateType(c *gin.Context) {
	var req createSensorTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Name == "" {
		RespondAppError(c, apperr.Validationf("name is required"))
		return
	}
	st, err := h.types.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.SensorType{
		Name:        req.Name,
		Details:     req.Details,
		Multisensor: req.Multisensor,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, st)
}

func (h *SensorHandler) GetType(c *gin.Context) {
	st, err := h.types.GetByName(dbctx.Context{Ctx: c.Request.Context()}, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, st)
}

type addTypeUnitRequest struct {
	Unit string `json:"unit"`
}

// AddTypeUnit associates an existing unit of measure with a sensor type.
func (h *SensorHandler) AddTypeUnit(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	st, err := h.types.GetByName(dbc, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}

	var req addTypeUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	unit, err := h.units.GetBySymbol(dbc, req.Unit)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if err := h.types.AddUnit(dbc, st, *unit); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, st)
}

type createUnitRequest struct {
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

func (h *SensorHandler) CreateUnit(c *gin.Context) {
	var req createUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Unit == "" {
		RespondAppError(c, apperr.Validationf("unit is required"))
		return
	}
	unit, err := h.units.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.UnitOfMeasure{
		Unit:        req.Unit,
		Description: req.Description,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, unit)
}

func (h *SensorHandler) ListUnits(c *gin.Context) {
	items, err := h.units.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}
