package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type SensorTypeRepo interface {
	Create(dbc dbctx.Context, st *domain.SensorType) (*domain.SensorType, error)
	GetByName(dbc dbctx.Context, name string) (*domain.SensorType, error)
	AddUnit(dbc dbctx.Context, st *domain.SensorType, unit domain.UnitOfMeasure) error
}

type sensorTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSensorTypeRepo(db *gorm.DB, baseLog *logger.Logger) SensorTypeRepo {
	return &sensorTypeRepo{db: db, log: baseLog.With("repo", "SensorTypeRepo")}
}

func (r *sensorTypeRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *sensorTypeRepo) Create(dbc dbctx.Context, st *domain.SensorType) (*domain.SensorType, error) {
	if err := r.conn(dbc).Create(st).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return st, nil
}

func (r *sensorTypeRepo) GetByName(dbc dbctx.Context, name string) (*domain.SensorType, error) {
	var st domain.SensorType
	err := r.conn(dbc).
		Preload("UnitsOfMeasure", func(db *gorm.DB) *gorm.DB {
			return db.Order("unit_of_measure.id")
		}).
		Where("name = ?", name).
		First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("sensor type %q not found", name)
		}
		return nil, apperr.FromDB(err)
	}
	return &st, nil
}

// AddUnit runs the aggregate's cardinality check first, so a violation
// surfaces before any database round trip; only then is the association
// row written.
func (r *sensorTypeRepo) AddUnit(dbc dbctx.Context, st *domain.SensorType, unit domain.UnitOfMeasure) error {
	if err := st.AddUnit(unit); err != nil {
		return err
	}
	err := r.conn(dbc).Model(st).Association("UnitsOfMeasure").Append(&unit)
	if err != nil {
		// Roll the in-memory append back so the aggregate stays in
		// sync with the store.
		st.UnitsOfMeasure = st.UnitsOfMeasure[:len(st.UnitsOfMeasure)-1]
		return apperr.FromDB(err)
	}
	return nil
}
