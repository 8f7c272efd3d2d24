package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type UnitRepo interface {
	Create(dbc dbctx.Context, unit *domain.UnitOfMeasure) (*domain.UnitOfMeasure, error)
	GetBySymbol(dbc dbctx.Context, symbol string) (*domain.UnitOfMeasure, error)
	List(dbc dbctx.Context) ([]domain.UnitOfMeasure, error)
}

type unitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	return &unitRepo{db: db, log: baseLog.With("repo", "UnitRepo")}
}

func (r *unitRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *unitRepo) Create(dbc dbctx.Context, unit *domain.UnitOfMeasure) (*domain.UnitOfMeasure, error) {
	if err := r.conn(dbc).Create(unit).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return unit, nil
}

func (r *unitRepo) GetBySymbol(dbc dbctx.Context, symbol string) (*domain.UnitOfMeasure, error) {
	var unit domain.UnitOfMeasure
	err := r.conn(dbc).Where("unit = ?", symbol).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("unit of measure %q not found", symbol)
		}
		return nil, apperr.FromDB(err)
	}
	return &unit, nil
}

func (r *unitRepo) List(dbc dbctx.Context) ([]domain.UnitOfMeasure, error) {
	var units []domain.UnitOfMeasure
	if err := r.conn(dbc).Order("id").Find(&units).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return units, nil
}
