package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/data/repos/registry"
	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type DykeHandler struct {
	log          *logger.Logger
	dykes        registry.DykeRepo
	crossections registry.CrossectionRepo
}

func NewDykeHandler(log *logger.Logger, dykes registry.DykeRepo, crossections registry.CrossectionRepo) *DykeHandler {
	return &DykeHandler{
		log:          log.With("handler", "DykeHandler"),
		dykes:        dykes,
		crossections: crossections,
	}
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperr.Validationf("%s must be an integer", name)
	}
	return id, nil
}

func (h *DykeHandler) List(c *gin.Context) {
	dykes, err := h.dykes.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": dykes})
}

func (h *DykeHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	dyke, err := h.dykes.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, dyke)
}

type createDykeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *DykeHandler) Create(c *gin.Context) {
	var req createDykeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Name == "" {
		RespondAppError(c, apperr.Validationf("name is required"))
		return
	}
	dyke, err := h.dykes.Create(dbctx.Context{Ctx: c.Request.Context()}, &domain.Dyke{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, dyke)
}

func (h *DykeHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if err := h.dykes.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DykeHandler) ListCrossections(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	items, err := h.crossections.ListByDyke(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}
