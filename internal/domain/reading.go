package domain

import (
	"time"

	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Reading is a timestamped numeric observation tied to a crossection and
// a unit. Sensor, sensor type and location are optional: manual or
// legacy readings may carry no sensor reference at all. Value is a
// pointer so that an absent value hits the NOT NULL constraint instead
// of silently persisting as zero.
type Reading struct {
	ID                   int                 `gorm:"primaryKey" json:"id"`
	CrossectionID        int                 `gorm:"not null;index" json:"crossection_id"`
	Crossection          *Crossection        `gorm:"foreignKey:CrossectionID" json:"crossection,omitempty"`
	LocationInTopologyID *int                `json:"location_in_topology_id,omitempty"`
	Location             *LocationInTopology `gorm:"foreignKey:LocationInTopologyID" json:"location,omitempty"`
	UnitID               int                 `gorm:"not null;index" json:"unit_id"`
	Unit                 *UnitOfMeasure      `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	SensorTypeID         *int                `json:"sensor_type_id,omitempty"`
	SensorType           *SensorType         `gorm:"foreignKey:SensorTypeID" json:"sensor_type,omitempty"`
	SensorID             *int                `gorm:"index" json:"sensor_id,omitempty"`
	Sensor               *Sensor             `gorm:"foreignKey:SensorID" json:"sensor,omitempty"`
	Value                *float64            `gorm:"not null" json:"value"`
	Time                 time.Time           `gorm:"not null;index" json:"time"`
}

func (Reading) TableName() string { return "reading" }

// BeforeCreate guards the required integer/timestamp fields, which a Go
// zero value would otherwise satisfy at the SQL level.
func (r *Reading) BeforeCreate(_ *gorm.DB) error {
	if r.CrossectionID == 0 {
		return apperr.Integrityf("reading requires a crossection")
	}
	if r.UnitID == 0 {
		return apperr.Integrityf("reading requires a unit of measure")
	}
	if r.Time.IsZero() {
		return apperr.Integrityf("reading requires a timestamp")
	}
	return nil
}
