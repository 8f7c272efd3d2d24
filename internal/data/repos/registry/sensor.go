package registry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type SensorRepo interface {
	Create(dbc dbctx.Context, sensor *domain.Sensor) (*domain.Sensor, error)
	GetByName(dbc dbctx.Context, name string) (*domain.Sensor, error)
	List(dbc dbctx.Context, activeOnly bool) ([]domain.Sensor, error)
	Deactivate(dbc dbctx.Context, id int) error
}

type sensorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSensorRepo(db *gorm.DB, baseLog *logger.Logger) SensorRepo {
	return &sensorRepo{db: db, log: baseLog.With("repo", "SensorRepo")}
}

func (r *sensorRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(dbc.Ctx)
}

func (r *sensorRepo) Create(dbc dbctx.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	if err := r.conn(dbc).Create(sensor).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return sensor, nil
}

// GetByName resolves a sensor eagerly with its type, the type's unit
// set (insertion order) and its own location, in a single fetch chain.
func (r *sensorRepo) GetByName(dbc dbctx.Context, name string) (*domain.Sensor, error) {
	var sensor domain.Sensor
	err := r.conn(dbc).
		Preload("SensorType.UnitsOfMeasure", func(db *gorm.DB) *gorm.DB {
			return db.Order("unit_of_measure.id")
		}).
		Preload("Location").
		Where("name = ?", name).
		First(&sensor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("sensor %q not found", name)
		}
		return nil, apperr.FromDB(err)
	}
	return &sensor, nil
}

func (r *sensorRepo) List(dbc dbctx.Context, activeOnly bool) ([]domain.Sensor, error) {
	q := r.conn(dbc).Preload("SensorType").Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var sensors []domain.Sensor
	if err := q.Find(&sensors).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return sensors, nil
}

// Deactivate flips is_active off; sensors are never deleted, hardware
// that failed or was replaced stays addressable from old readings.
func (r *sensorRepo) Deactivate(dbc dbctx.Context, id int) error {
	res := r.conn(dbc).Model(&domain.Sensor{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("sensor %d not found", id)
	}
	return nil
}
