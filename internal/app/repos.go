package app

import (
	"gorm.io/gorm"

	"github.com/geodykes/geodykes-backend/internal/data/repos/readings"
	"github.com/geodykes/geodykes-backend/internal/data/repos/registry"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type Repos struct {
	Readings     readings.Repo
	Dykes        registry.DykeRepo
	Crossections registry.CrossectionRepo
	Topologies   registry.TopologyRepo
	Sensors      registry.SensorRepo
	SensorTypes  registry.SensorTypeRepo
	Units        registry.UnitRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger, cfg Config) Repos {
	log.Info("Wiring repos...")
	set := Repos{
		Dykes:        registry.NewDykeRepo(db, log),
		Crossections: registry.NewCrossectionRepo(db, log),
		Topologies:   registry.NewTopologyRepo(db, log),
		Sensors:      registry.NewSensorRepo(db, log),
		SensorTypes:  registry.NewSensorTypeRepo(db, log),
		Units:        registry.NewUnitRepo(db, log),
	}
	if cfg.ReadingBackend == "memory" {
		set.Readings = readings.NewMemoryRepo(readings.DefaultMemorySeed())
	} else {
		set.Readings = readings.NewRepo(db, log)
	}
	return set
}
