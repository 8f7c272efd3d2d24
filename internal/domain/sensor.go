package domain

import (
	"time"

	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
)

// UnitOfMeasure is a named measurement unit (e.g. "mm"). The unit symbol
// is unique across the system.
type UnitOfMeasure struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Unit        string `gorm:"not null;uniqueIndex" json:"unit"`
	Description string `json:"description,omitempty"`
}

func (UnitOfMeasure) TableName() string { return "unit_of_measure" }

// SensorType is a category of sensor hardware. A plain sensor type
// measures in exactly one unit; a multisensor may carry several.
type SensorType struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Details     string `json:"details,omitempty"`
	Multisensor bool   `gorm:"not null;default:false" json:"multisensor"`

	UnitsOfMeasure []UnitOfMeasure `gorm:"many2many:sensor_type_unit_of_measure" json:"units_of_measure,omitempty"`
}

func (SensorType) TableName() string { return "sensor_type" }

// AddUnit appends a unit to the type's unit set, enforcing the
// multisensor cardinality rule before any database round trip.
func (st *SensorType) AddUnit(u UnitOfMeasure) error {
	if !st.Multisensor && len(st.UnitsOfMeasure) >= 1 {
		return apperr.Validationf(
			"sensor type %q is not a multisensor: it may carry at most one unit of measure", st.Name)
	}
	st.UnitsOfMeasure = append(st.UnitsOfMeasure, u)
	return nil
}

// Sensor is a physical monitoring device. is_active is the only
// lifecycle flag; replaced or failed hardware is deactivated, not
// deleted.
type Sensor struct {
	ID                   int                 `gorm:"primaryKey" json:"id"`
	Name                 string              `gorm:"not null;index" json:"name"`
	SensorTypeID         int                 `gorm:"not null;index" json:"sensor_type_id"`
	SensorType           *SensorType         `gorm:"foreignKey:SensorTypeID" json:"sensor_type,omitempty"`
	LocationInTopologyID *int                `json:"location_in_topology_id,omitempty"`
	Location             *LocationInTopology `gorm:"foreignKey:LocationInTopologyID" json:"location,omitempty"`
	IsActive             bool                `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sensor) TableName() string { return "sensor" }
