package app

import (
	"github.com/geodykes/geodykes-backend/internal/handlers"
	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
)

type Handlers struct {
	Reading     *handlers.ReadingHandler
	Dyke        *handlers.DykeHandler
	Crossection *handlers.CrossectionHandler
	Sensor      *handlers.SensorHandler
}

func wireHandlers(log *logger.Logger, repos Repos) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Reading:     handlers.NewReadingHandler(log, repos.Readings),
		Dyke:        handlers.NewDykeHandler(log, repos.Dykes, repos.Crossections),
		Crossection: handlers.NewCrossectionHandler(log, repos.Crossections, repos.Topologies),
		Sensor:      handlers.NewSensorHandler(log, repos.Sensors, repos.SensorTypes, repos.Units),
	}
}
