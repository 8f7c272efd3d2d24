package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
)

// Point is one vertex of a topology document, in the local 2D frame of a
// crossection (x along the profile, y elevation).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Coordinates is a single 2D position stored as a JSON pair [x, y].
// It is a distinct shape from a topology document: a pair of numbers,
// never a list of points. Build one with NewCoordinates; assigning a
// slice of the wrong length is caught again by Validate before any row
// is written.
type Coordinates []float64

func NewCoordinates(vals ...float64) (Coordinates, error) {
	c := Coordinates(vals)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c Coordinates) Validate() error {
	if len(c) != 2 {
		return apperr.Validationf("coordinates must hold exactly two values [x, y], got %d", len(c))
	}
	return nil
}

func (c Coordinates) X() float64 { return c[0] }
func (c Coordinates) Y() float64 { return c[1] }

// Value implements driver.Valuer, rejecting malformed pairs so a bad
// assignment cannot reach the database even without the model hook.
func (c Coordinates) Value() (driver.Value, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal([]float64(c))
}

func (c *Coordinates) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("coordinates: cannot scan %T", value)
	}
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	*c = Coordinates(vals)
	return nil
}

func (Coordinates) GormDataType() string { return "json" }
