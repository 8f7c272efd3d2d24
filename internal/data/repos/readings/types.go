package readings

import (
	"strings"
	"time"
)

// Filter narrows a readings query. All fields are optional and compose
// conjunctively; SensorIDs takes precedence over SensorNames.
type Filter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	SensorIDs   []int
	SensorNames []string
}

// CleanSensorNames trims whitespace and surrounding quote characters
// from each name, tolerating client-side quoting artifacts.
func (f Filter) CleanSensorNames() []string {
	if len(f.SensorNames) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.SensorNames))
	for _, n := range f.SensorNames {
		n = strings.TrimSpace(n)
		n = strings.Trim(n, `"'`)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Payload is the human-readable input for creating a reading. Names are
// resolved to entities by the repository; Unit is informational only,
// the stored unit comes from the sensor's type.
type Payload struct {
	Crossection        string    `json:"crossection"`
	SensorName         string    `json:"sensor_name"`
	LocationInTopology []float64 `json:"location_in_topology"`
	Unit               string    `json:"unit"`
	Value              float64   `json:"value"`
	Time               time.Time `json:"time"`
}

// FlatReading is the denormalized, response-ready shape of a reading.
// Sensor fields are all nil when no sensor is linked.
type FlatReading struct {
	ID                 int       `json:"id"`
	Crossection        *string   `json:"crossection"`
	SensorID           *int      `json:"sensor_id"`
	SensorName         *string   `json:"sensor_name"`
	SensorType         *string   `json:"sensor_type"`
	SensorIsActive     *bool     `json:"sensor_is_active"`
	SensorLocation     []float64 `json:"sensor_location"`
	LocationInTopology []float64 `json:"location_in_topology"`
	Unit               string    `json:"unit"`
	Value              float64   `json:"value"`
	Time               string    `json:"time"`
}
