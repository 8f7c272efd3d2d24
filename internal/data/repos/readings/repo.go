package readings

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
	"github.com/geodykes/geodykes-backend/internal/pkg/pointers"
)

// Repo is the reading query/assembly boundary. Implementations are
// swapped at composition time (database vs in-memory), never by runtime
// type inspection.
type Repo interface {
	GetReadings(dbc dbctx.Context, f Filter) ([]FlatReading, error)
	CreateReading(dbc dbctx.Context, p Payload) (*FlatReading, error)
}

type readingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepo(db *gorm.DB, baseLog *logger.Logger) Repo {
	repoLog := baseLog.With("repo", "ReadingRepo")
	return &readingRepo{db: db, log: repoLog}
}

// preloadAll attaches every relation the flat shape needs. Preload
// issues one IN query per relation, so the round-trip count stays
// constant in the result-set size.
func preloadAll(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Crossection").
		Preload("Location").
		Preload("Unit").
		Preload("Sensor").
		Preload("Sensor.SensorType").
		Preload("Sensor.Location")
}

func (r *readingRepo) GetReadings(dbc dbctx.Context, f Filter) ([]FlatReading, error) {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}

	q := preloadAll(tx.WithContext(dbc.Ctx).Model(&domain.Reading{}))

	switch {
	case f.StartDate != nil && f.EndDate != nil:
		q = q.Where("reading.time BETWEEN ? AND ?", *f.StartDate, *f.EndDate)
	case f.StartDate != nil:
		q = q.Where("reading.time >= ?", *f.StartDate)
	case f.EndDate != nil:
		q = q.Where("reading.time <= ?", *f.EndDate)
	}

	if len(f.SensorIDs) > 0 {
		q = q.Where("reading.sensor_id IN ?", f.SensorIDs)
	} else if names := f.CleanSensorNames(); len(names) > 0 {
		q = q.Joins("JOIN sensor ON sensor.id = reading.sensor_id").
			Where("sensor.name IN ?", names)
	}

	var rows []domain.Reading
	if err := q.Order("reading.time, reading.id").Find(&rows).Error; err != nil {
		return nil, apperr.FromDB(err)
	}

	out := make([]FlatReading, 0, len(rows))
	for i := range rows {
		out = append(out, Flatten(&rows[i]))
	}
	return out, nil
}

func (r *readingRepo) CreateReading(dbc dbctx.Context, p Payload) (*FlatReading, error) {
	var out *FlatReading

	create := func(tx *gorm.DB) error {
		// Resolve the named crossection; a missing one is a caller
		// error, never an auto-create.
		var crossection domain.Crossection
		if err := tx.Where("name = ?", p.Crossection).First(&crossection).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("crossection %q not found", p.Crossection)
			}
			return apperr.FromDB(err)
		}

		coords, err := domain.NewCoordinates(p.LocationInTopology...)
		if err != nil {
			return err
		}
		location := domain.LocationInTopology{
			CrossectionID: crossection.ID,
			Coordinates:   coords,
		}
		if err := tx.Create(&location).Error; err != nil {
			return apperr.FromDB(err)
		}

		// One eager fetch for the sensor, its type and the type's unit
		// set; the first associated unit is the default for the reading.
		var sensor domain.Sensor
		err = tx.
			Preload("SensorType.UnitsOfMeasure", func(db *gorm.DB) *gorm.DB {
				return db.Order("unit_of_measure.id")
			}).
			Where("name = ?", p.SensorName).
			First(&sensor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("sensor %q not found", p.SensorName)
			}
			return apperr.FromDB(err)
		}
		if sensor.SensorType == nil || len(sensor.SensorType.UnitsOfMeasure) == 0 {
			return apperr.NotFoundf("sensor %q has no associated unit of measure", p.SensorName)
		}
		unit := sensor.SensorType.UnitsOfMeasure[0]

		reading := domain.Reading{
			CrossectionID:        crossection.ID,
			LocationInTopologyID: &location.ID,
			UnitID:               unit.ID,
			SensorTypeID:         &sensor.SensorTypeID,
			SensorID:             &sensor.ID,
			Value:                pointers.Float64(p.Value),
			Time:                 p.Time,
		}
		if err := tx.Create(&reading).Error; err != nil {
			return apperr.FromDB(err)
		}

		var persisted domain.Reading
		if err := preloadAll(tx).First(&persisted, reading.ID).Error; err != nil {
			return apperr.FromDB(err)
		}
		flat := Flatten(&persisted)
		out = &flat
		return nil
	}

	// The whole sequence is one unit of work: a failure after the
	// location insert must not leave an orphaned row behind, not even
	// staged inside a caller's transaction. Inside an open transaction
	// gorm nests via SAVEPOINT.
	conn := dbc.Tx
	if conn == nil {
		conn = r.db
	}
	if err := conn.WithContext(dbc.Ctx).Transaction(create); err != nil {
		return nil, err
	}
	return out, nil
}

// Flatten denormalizes a reading and its preloaded relations into the
// response-ready shape.
func Flatten(obj *domain.Reading) FlatReading {
	flat := FlatReading{
		ID:   obj.ID,
		Time: obj.Time.Format(time.RFC3339),
	}
	if obj.Value != nil {
		flat.Value = *obj.Value
	}
	if obj.Crossection != nil {
		flat.Crossection = &obj.Crossection.Name
	}
	if obj.Unit != nil {
		flat.Unit = obj.Unit.Unit
	}
	if obj.Location != nil {
		flat.LocationInTopology = []float64(obj.Location.Coordinates)
	}
	if obj.Sensor != nil {
		flat.SensorID = &obj.Sensor.ID
		flat.SensorName = &obj.Sensor.Name
		flat.SensorIsActive = &obj.Sensor.IsActive
		if obj.Sensor.SensorType != nil {
			flat.SensorType = &obj.Sensor.SensorType.Name
		}
		if obj.Sensor.Location != nil {
			flat.SensorLocation = []float64(obj.Sensor.Location.Coordinates)
		}
	}
	return flat
}
