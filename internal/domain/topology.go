package domain

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topology is an ordered sequence of 2D points describing a surface or
// boundary shape, stored as a single JSON document rather than rows.
// An empty sequence is a valid placeholder. Once a CrossectionLayer
// references it the document is treated as immutable; it is shared by
// reference, never owned by a single parent.
type Topology struct {
	ID          int                        `gorm:"primaryKey" json:"id"`
	Coordinates datatypes.JSONSlice[Point] `json:"coordinates"`
}

func (Topology) TableName() string { return "topology" }

// LocationInTopology is a single validated 2D point marking a physical
// position within a crossection. Both sensors and readings use it for
// placement.
type LocationInTopology struct {
	ID            int         `gorm:"primaryKey" json:"id"`
	CrossectionID int         `gorm:"not null;index" json:"crossection_id"`
	Coordinates   Coordinates `gorm:"not null" json:"coordinates"`
}

func (LocationInTopology) TableName() string { return "location_in_topology" }

// BeforeSave rejects malformed coordinate pairs before any SQL is issued.
func (l *LocationInTopology) BeforeSave(_ *gorm.DB) error {
	return l.Coordinates.Validate()
}
