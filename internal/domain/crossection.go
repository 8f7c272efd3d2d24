package domain

import (
	"time"
)

// Crossection is a named cross-sectional slice of a dyke, the organizing
// unit for soil layers and readings. Topology is a denormalized label
// only; the structured shape of a crossection is the set of its layers'
// top/bottom topology documents.
type Crossection struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	DykeID      int    `gorm:"not null;index" json:"dyke_id"`
	Dyke        *Dyke  `gorm:"foreignKey:DykeID" json:"dyke,omitempty"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`
	Topology    string `json:"topology,omitempty"`

	Layers []CrossectionLayer `gorm:"foreignKey:CrossectionID" json:"layers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Crossection) TableName() string { return "crossection" }

// CrossectionLayer is a 2D soil layer within a crossection, bounded above
// and below by two topology documents. Layers carry no explicit order
// column; stacking order follows from the topology y-values.
type CrossectionLayer struct {
	ID               int          `gorm:"primaryKey" json:"id"`
	CrossectionID    int          `gorm:"not null;index" json:"crossection_id"`
	Crossection      *Crossection `gorm:"foreignKey:CrossectionID" json:"crossection,omitempty"`
	SoilType         string       `gorm:"not null" json:"soil_type"`
	TopTopologyID    int          `gorm:"not null" json:"top_topology_id"`
	TopTopology      *Topology    `gorm:"foreignKey:TopTopologyID" json:"top_topology,omitempty"`
	BottomTopologyID int          `gorm:"not null" json:"bottom_topology_id"`
	BottomTopology   *Topology    `gorm:"foreignKey:BottomTopologyID" json:"bottom_topology,omitempty"`
}

func (CrossectionLayer) TableName() string { return "crossection_layer" }
