package domain

import (
	"time"
)

// Dyke is a monitored flood-control embankment. It strictly owns its
// crossections: a dyke with crossections cannot be deleted.
type Dyke struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`

	Crossections []Crossection `gorm:"foreignKey:DykeID" json:"crossections,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Dyke) TableName() string { return "dyke" }
