package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/pointers"
)

// BasePoints is the reference surface profile used across fixtures.
var BasePoints = []domain.Point{
	{X: 1, Y: 100},
	{X: 2, Y: 200},
	{X: 3, Y: 300},
	{X: 4, Y: 400},
	{X: 5, Y: 500},
	{X: 6, Y: 600},
}

// ShiftedPoints returns BasePoints lowered by dy, for stacking layer
// boundaries under each other.
func ShiftedPoints(dy float64) []domain.Point {
	pts := make([]domain.Point, len(BasePoints))
	for i, p := range BasePoints {
		pts[i] = domain.Point{X: p.X, Y: p.Y - dy}
	}
	return pts
}

func SeedDyke(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Dyke {
	tb.Helper()
	d := &domain.Dyke{Name: name, Description: "test dyke"}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed dyke: %v", err)
	}
	return d
}

func SeedTopology(tb testing.TB, ctx context.Context, tx *gorm.DB, points []domain.Point) *domain.Topology {
	tb.Helper()
	topo := &domain.Topology{Coordinates: datatypes.NewJSONSlice(points)}
	if err := tx.WithContext(ctx).Create(topo).Error; err != nil {
		tb.Fatalf("seed topology: %v", err)
	}
	return topo
}

func SeedCrossection(tb testing.TB, ctx context.Context, tx *gorm.DB, dykeID int, name string) *domain.Crossection {
	tb.Helper()
	cs := &domain.Crossection{DykeID: dykeID, Name: name, Topology: "surface profile"}
	if err := tx.WithContext(ctx).Create(cs).Error; err != nil {
		tb.Fatalf("seed crossection: %v", err)
	}
	return cs
}

func SeedUnit(tb testing.TB, ctx context.Context, tx *gorm.DB, unit string) *domain.UnitOfMeasure {
	tb.Helper()
	u := &domain.UnitOfMeasure{Unit: unit, Description: "test unit"}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed unit: %v", err)
	}
	return u
}

// SeedSensorType persists a sensor type with its unit set already
// validated through AddUnit.
func SeedSensorType(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, multisensor bool, units ...domain.UnitOfMeasure) *domain.SensorType {
	tb.Helper()
	st := &domain.SensorType{Name: name, Multisensor: multisensor}
	for _, u := range units {
		if err := st.AddUnit(u); err != nil {
			tb.Fatalf("seed sensor type %s: %v", name, err)
		}
	}
	if err := tx.WithContext(ctx).Create(st).Error; err != nil {
		tb.Fatalf("seed sensor type: %v", err)
	}
	return st
}

func SeedSensor(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, typeID int, locationID *int) *domain.Sensor {
	tb.Helper()
	s := &domain.Sensor{Name: name, SensorTypeID: typeID, LocationInTopologyID: locationID, IsActive: true}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed sensor: %v", err)
	}
	return s
}

func SeedLocation(tb testing.TB, ctx context.Context, tx *gorm.DB, crossectionID int, x, y float64) *domain.LocationInTopology {
	tb.Helper()
	loc := &domain.LocationInTopology{CrossectionID: crossectionID, Coordinates: domain.Coordinates{x, y}}
	if err := tx.WithContext(ctx).Create(loc).Error; err != nil {
		tb.Fatalf("seed location: %v", err)
	}
	return loc
}

func SeedReading(tb testing.TB, ctx context.Context, tx *gorm.DB, crossectionID, unitID int, sensor *domain.Sensor, value float64, at time.Time) *domain.Reading {
	tb.Helper()
	r := &domain.Reading{
		CrossectionID: crossectionID,
		UnitID:        unitID,
		Value:         pointers.Float64(value),
		Time:          at,
	}
	if sensor != nil {
		r.SensorID = &sensor.ID
		r.SensorTypeID = &sensor.SensorTypeID
		r.LocationInTopologyID = sensor.LocationInTopologyID
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed reading: %v", err)
	}
	return r
}
