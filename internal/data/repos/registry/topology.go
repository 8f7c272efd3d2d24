package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type TopologyRepo interface {
	Create(dbc dbctx.Context, topo *domain.Topology) (*domain.Topology, error)
	GetByID(dbc dbctx.Context, id int) (*domain.Topology, error)
	CreateLocation(dbc dbctx.Context, loc *domain.LocationInTopology) (*domain.LocationInTopology, error)
}

type topologyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopologyRepo(db *gorm.DB, baseLog *logger.Logger) TopologyRepo {
	return &topologyRepo{db: db, log: baseLog.With("repo", "TopologyRepo")}
}

func (r *topologyRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *topologyRepo) Create(dbc dbctx.Context, topo *domain.Topology) (*domain.Topology, error) {
	if err := r.conn(dbc).Create(topo).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return topo, nil
}

func (r *topologyRepo) GetByID(dbc dbctx.Context, id int) (*domain.Topology, error) {
	var topo domain.Topology
	if err := r.conn(dbc).First(&topo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("topology %d not found", id)
		}
		return nil, apperr.FromDB(err)
	}
	return &topo, nil
}

func (r *topologyRepo) CreateLocation(dbc dbctx.Context, loc *domain.LocationInTopology) (*domain.LocationInTopology, error) {
	if err := loc.Coordinates.Validate(); err != nil {
		return nil, err
	}
	if err := r.conn(dbc).Create(loc).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return loc, nil
}
