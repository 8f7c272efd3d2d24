package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type CrossectionRepo interface {
	Create(dbc dbctx.Context, cs *domain.Crossection) (*domain.Crossection, error)
	GetByName(dbc dbctx.Context, name string) (*domain.Crossection, error)
	ListByDyke(dbc dbctx.Context, dykeID int) ([]domain.Crossection, error)
	AddLayer(dbc dbctx.Context, layer *domain.CrossectionLayer) (*domain.CrossectionLayer, error)
	ListLayers(dbc dbctx.Context, crossectionID int) ([]domain.CrossectionLayer, error)
}

type crossectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCrossectionRepo(db *gorm.DB, baseLog *logger.Logger) CrossectionRepo {
	return &crossectionRepo{db: db, log: baseLog.With("repo", "CrossectionRepo")}
}

func (r *crossectionRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *crossectionRepo) Create(dbc dbctx.Context, cs *domain.Crossection) (*domain.Crossection, error) {
	if err := r.conn(dbc).Create(cs).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return cs, nil
}

func (r *crossectionRepo) GetByName(dbc dbctx.Context, name string) (*domain.Crossection, error) {
	var cs domain.Crossection
	err := r.conn(dbc).Preload("Layers").Where("name = ?", name).First(&cs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("crossection %q not found", name)
		}
		return nil, apperr.FromDB(err)
	}
	return &cs, nil
}

func (r *crossectionRepo) ListByDyke(dbc dbctx.Context, dykeID int) ([]domain.Crossection, error) {
	var out []domain.Crossection
	if err := r.conn(dbc).Where("dyke_id = ?", dykeID).Order("id").Find(&out).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return out, nil
}

// AddLayer attaches a soil layer to a crossection. Both bounding
// topologies must already exist; layers carry no order column.
func (r *crossectionRepo) AddLayer(dbc dbctx.Context, layer *domain.CrossectionLayer) (*domain.CrossectionLayer, error) {
	if err := r.conn(dbc).Create(layer).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return layer, nil
}

func (r *crossectionRepo) ListLayers(dbc dbctx.Context, crossectionID int) ([]domain.CrossectionLayer, error) {
	var layers []domain.CrossectionLayer
	err := r.conn(dbc).
		Preload("TopTopology").
		Preload("BottomTopology").
		Where("crossection_id = ?", crossectionID).
		Order("id").
		Find(&layers).Error
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return layers, nil
}
