package db

import (
	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/domain"
)

// AllModels lists every table of the monitoring schema, parents before
// the rows that reference them.
func AllModels() []interface{} {
	return []interface{}{
		&domain.Dyke{},
		&domain.Topology{},
		&domain.Crossection{},
		&domain.CrossectionLayer{},
		&domain.LocationInTopology{},
		&domain.UnitOfMeasure{},
		&domain.SensorType{},
		&domain.Sensor{},
		&domain.Reading{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
