package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/geodykes/geodykes-backend/internal/data/repos/registry"
	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type CrossectionHandler struct {
	log          *logger.Logger
	crossections registry.CrossectionRepo
	topologies   registry.TopologyRepo
}

func NewCrossectionHandler(log *logger.Logger, crossections registry.CrossectionRepo, topologies registry.TopologyRepo) *CrossectionHandler {
	return &CrossectionHandler{
		log:          log.With("handler", "CrossectionHandler"),
		crossections: crossections,
		topologies:   topologies,
	}
}

type createCrossectionRequest struct {
	DykeID      int    `json:"dyke_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Topology    string `json:"topology"`
}

func (h *CrossectionHandler) Create(c *gin.Context) {
	var req createCrossectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Name == "" || req.DykeID == 0 {
		RespondAppError(c, apperr.Validationf("dyke_id and name are required"))
		return
	}
	cs, err := h.crossections.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.Crossection{
		DykeID:      req.DykeID,
		Name:        req.Name,
		Description: req.Description,
		Topology:    req.Topology,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, cs)
}

func (h *CrossectionHandler) Get(c *gin.Context) {
	cs, err := h.crossections.GetByName(dbctx.Context{Ctx: c.Request.Context()}, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, cs)
}

type createTopologyRequest struct {
	Coordinates []domain.Point `json:"coordinates"`
}

func (h *CrossectionHandler) CreateTopology(c *gin.Context) {
	var req createTopologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	topo, err := h.topologies.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.Topology{
		Coordinates: datatypes.NewJSONSlice(req.Coordinates),
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, topo)
}

type addLayerRequest struct {
	SoilType         string `json:"soil_type"`
	TopTopologyID    int    `json:"top_topology_id"`
	BottomTopologyID int    `json:"bottom_topology_id"`
}

func (h *CrossectionHandler) AddLayer(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	cs, err := h.crossections.GetByName(dbc, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}

	var req addLayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.SoilType == "" || req.TopTopologyID == 0 || req.BottomTopologyID == 0 {
		RespondAppError(c, apperr.Validationf("soil_type, top_topology_id and bottom_topology_id are required"))
		return
	}
	layer, err := h.crossections.AddLayer(dbc, &domain.CrossectionLayer{
		CrossectionID:    cs.ID,
		SoilType:         req.SoilType,
		TopTopologyID:    req.TopTopologyID,
		BottomTopologyID: req.BottomTopologyID,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, layer)
}

func (h *CrossectionHandler) ListLayers(c *gin.Context) {
	dbc := dbctx.Context{Ctx: c.Request.Context()}
	cs, err := h.crossections.GetByName(dbc, c.Param("name"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	layers, err := h.crossections.ListLayers(dbc, cs.ID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": layers})
}
