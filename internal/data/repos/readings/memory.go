package readings

import (
	"fmt"
	"sync"
	"time"

	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
)

// MemorySensor is the seed shape for the in-memory backend: a sensor
// with its type and unit set already resolved.
type MemorySensor struct {
	ID       int
	Name     string
	TypeName string
	IsActive bool
	Location []float64
	Units    []string
}

// MemoryRepo keeps readings in process memory. It backs development
// composition and pure-logic tests; semantics mirror the database
// implementation, including name resolution and filter composition.
type MemoryRepo struct {
	mu           sync.RWMutex
	nextID       int
	crossections map[string]int
	sensors      map[string]MemorySensor
	rows         []memoryRow
}

type memoryRow struct {
	flat     FlatReading
	time     time.Time
	sensorID *int
}

// DefaultMemorySeed is the development fixture set: one dyke's two
// crossections and three sensors sharing a single-unit type.
func DefaultMemorySeed() ([]string, []MemorySensor) {
	sensors := make([]MemorySensor, 0, 3)
	for i := 1; i <= 3; i++ {
		sensors = append(sensors, MemorySensor{
			ID:       i,
			Name:     fmt.Sprintf("Sensor %d", i),
			TypeName: "Sensor type 1",
			IsActive: true,
			Units:    []string{"Unit 1"},
		})
	}
	return []string{"Crossection 1", "Crossection 2"}, sensors
}

func NewMemoryRepo(crossections []string, sensors []MemorySensor) *MemoryRepo {
	r := &MemoryRepo{
		nextID:       1,
		crossections: make(map[string]int, len(crossections)),
		sensors:      make(map[string]MemorySensor, len(sensors)),
	}
	for i, name := range crossections {
		r.crossections[name] = i + 1
	}
	for _, s := range sensors {
		r.sensors[s.Name] = s
	}
	return r
}

func (r *MemoryRepo) GetReadings(_ dbctx.Context, f Filter) ([]FlatReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := f.CleanSensorNames()
	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		nameSet[n] = true
	}
	idSet := make(map[int]bool, len(f.SensorIDs))
	for _, id := range f.SensorIDs {
		idSet[id] = true
	}

	out := make([]FlatReading, 0, len(r.rows))
	for _, row := range r.rows {
		if f.StartDate != nil && row.time.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && row.time.After(*f.EndDate) {
			continue
		}
		if len(idSet) > 0 {
			if row.sensorID == nil || !idSet[*row.sensorID] {
				continue
			}
		} else if len(nameSet) > 0 {
			if row.flat.SensorName == nil || !nameSet[*row.flat.SensorName] {
				continue
			}
		}
		out = append(out, row.flat)
	}
	return out, nil
}

func (r *MemoryRepo) CreateReading(_ dbctx.Context, p Payload) (*FlatReading, error) {
	coords, err := domain.NewCoordinates(p.LocationInTopology...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.crossections[p.Crossection]; !ok {
		return nil, apperr.NotFoundf("crossection %q not found", p.Crossection)
	}
	sensor, ok := r.sensors[p.SensorName]
	if !ok {
		return nil, apperr.NotFoundf("sensor %q not found", p.SensorName)
	}
	if len(sensor.Units) == 0 {
		return nil, apperr.NotFoundf("sensor %q has no associated unit of measure", p.SensorName)
	}

	crossection := p.Crossection
	flat := FlatReading{
		ID:                 r.nextID,
		Crossection:        &crossection,
		SensorID:           &sensor.ID,
		SensorName:         &sensor.Name,
		SensorType:         &sensor.TypeName,
		SensorIsActive:     &sensor.IsActive,
		SensorLocation:     sensor.Location,
		LocationInTopology: []float64(coords),
		Unit:               sensor.Units[0],
		Value:              p.Value,
		Time:               p.Time.Format(time.RFC3339),
	}
	r.nextID++
	r.rows = append(r.rows, memoryRow{flat: flat, time: p.Time, sensorID: &sensor.ID})
	return &flat, nil
}
