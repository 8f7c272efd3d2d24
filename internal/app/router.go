package app

import (
	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:        cfg.AllowOrigins,
		RequestIDMiddleware: mw.RequestID,
		ReadingHandler:      handlers.Reading,
		DykeHandler:         handlers.Dyke,
		CrossectionHandler:  handlers.Crossection,
		SensorHandler:       handlers.Sensor,
	})
}
