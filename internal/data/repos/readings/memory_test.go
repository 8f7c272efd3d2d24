package readings

import (
	"testing"
	"time"

	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
)

func newMemoryFixture(tb testing.TB) (*MemoryRepo, time.Time) {
	tb.Helper()

	repo := NewMemoryRepo(
		[]string{"Crossection 2-2"},
		[]MemorySensor{
			{ID: 1, Name: "Sensor A", TypeName: "Piezometer", IsActive: true, Location: []float64{2.5, 180}, Units: []string{"mm", "kPa"}},
			{ID: 2, Name: "Sensor B", TypeName: "Piezometer", IsActive: true, Location: []float64{4.0, 320}, Units: []string{"mm"}},
			{ID: 3, Name: "Sensor Bare", TypeName: "Bare", IsActive: true},
		},
	)

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dbc := dbctx.Context{}
	seed := func(sensor string, value float64, at time.Time) {
		_, err := repo.CreateReading(dbc, Payload{
			Crossection:        "Crossection 2-2",
			SensorName:         sensor,
			LocationInTopology: []float64{1, 1},
			Value:              value,
			Time:               at,
		})
		if err != nil {
			tb.Fatalf("seed reading: %v", err)
		}
	}
	seed("Sensor A", 10, t1)
	seed("Sensor B", 20, t1.Add(time.Hour))
	seed("Sensor A", 30, t1.Add(2*time.Hour))

	return repo, t1
}

func TestMemoryFilterComposition(t *testing.T) {
	repo, t1 := newMemoryFixture(t)
	dbc := dbctx.Context{}
	t2 := t1.Add(time.Hour)

	rows, err := repo.GetReadings(dbc, Filter{})
	if err != nil {
		t.Fatalf("unfiltered: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 readings, got %d", len(rows))
	}

	rows, _ = repo.GetReadings(dbc, Filter{StartDate: &t2})
	if got := values(rows); len(got) != 2 || got[0] != 20 || got[1] != 30 {
		t.Fatalf("start-only window: got %v", got)
	}

	rows, _ = repo.GetReadings(dbc, Filter{EndDate: &t1})
	if got := values(rows); len(got) != 1 || got[0] != 10 {
		t.Fatalf("end-only window: got %v", got)
	}

	rows, _ = repo.GetReadings(dbc, Filter{SensorNames: []string{`"Sensor A"`}})
	if got := values(rows); len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Fatalf("name filter: got %v", got)
	}

	rows, _ = repo.GetReadings(dbc, Filter{SensorIDs: []int{2}, SensorNames: []string{"Sensor A"}})
	if got := values(rows); len(got) != 1 || got[0] != 20 {
		t.Fatalf("ids should win over names: got %v", got)
	}

	rows, _ = repo.GetReadings(dbc, Filter{StartDate: &t2, SensorNames: []string{"Sensor A"}})
	if got := values(rows); len(got) != 1 || got[0] != 30 {
		t.Fatalf("intersection: got %v", got)
	}
}

func TestMemoryCreateReading(t *testing.T) {
	repo, t1 := newMemoryFixture(t)
	dbc := dbctx.Context{}

	flat, err := repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 2-2",
		SensorName:         "Sensor A",
		LocationInTopology: []float64{36.2, 13.9},
		Value:              40,
		Time:               t1.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateReading: %v", err)
	}
	if flat.Unit != "mm" {
		t.Fatalf("want first unit of the sensor's type, got %q", flat.Unit)
	}
	if flat.SensorName == nil || *flat.SensorName != "Sensor A" {
		t.Fatalf("sensor name: %+v", flat.SensorName)
	}
	if len(flat.LocationInTopology) != 2 || flat.LocationInTopology[0] != 36.2 {
		t.Fatalf("location: %v", flat.LocationInTopology)
	}
	if flat.Time != t1.Add(3*time.Hour).Format(time.RFC3339) {
		t.Fatalf("time: %q", flat.Time)
	}
}

// The default seed must support the full read/write cycle out of the
// box, since it is what backs the memory composition.
func TestDefaultMemorySeedIsUsable(t *testing.T) {
	repo := NewMemoryRepo(DefaultMemorySeed())
	dbc := dbctx.Context{}
	at := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

	flat, err := repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 1",
		SensorName:         "Sensor 2",
		LocationInTopology: []float64{1, 1},
		Value:              15,
		Time:               at,
	})
	if err != nil {
		t.Fatalf("CreateReading on default seed: %v", err)
	}
	if flat.Unit != "Unit 1" {
		t.Fatalf("unit: %q", flat.Unit)
	}

	rows, err := repo.GetReadings(dbc, Filter{SensorNames: []string{"Sensor 2"}})
	if err != nil {
		t.Fatalf("GetReadings: %v", err)
	}
	if len(rows) != 1 || rows[0].Value != 15 {
		t.Fatalf("want the created reading back, got %v", values(rows))
	}
}

func TestMemoryCreateReadingFailures(t *testing.T) {
	repo, t1 := newMemoryFixture(t)
	dbc := dbctx.Context{}

	_, err := repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 9-9",
		SensorName:         "Sensor A",
		LocationInTopology: []float64{1, 1},
		Time:               t1,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("unknown crossection: want not-found, got %v", err)
	}

	_, err = repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 2-2",
		SensorName:         "Sensor X",
		LocationInTopology: []float64{1, 1},
		Time:               t1,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("unknown sensor: want not-found, got %v", err)
	}

	_, err = repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 2-2",
		SensorName:         "Sensor Bare",
		LocationInTopology: []float64{1, 1},
		Time:               t1,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("unit-less sensor: want not-found, got %v", err)
	}

	_, err = repo.CreateReading(dbc, Payload{
		Crossection:        "Crossection 2-2",
		SensorName:         "Sensor A",
		LocationInTopology: []float64{1, 2, 3},
		Time:               t1,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("bad pair: want validation, got %v", err)
	}

	rows, _ := repo.GetReadings(dbc, Filter{})
	if len(rows) != 3 {
		t.Fatalf("failed creates must not store rows: got %d", len(rows))
	}
}
