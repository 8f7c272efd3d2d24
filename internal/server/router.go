package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/handlers"
	"github.com/geodykes/geodykes-backend/internal/middleware"
)

type RouterConfig struct {
	AllowOrigins        []string
	RequestIDMiddleware *middleware.RequestIDMiddleware
	ReadingHandler      *handlers.ReadingHandler
	DykeHandler         *handlers.DykeHandler
	CrossectionHandler  *handlers.CrossectionHandler
	SensorHandler       *handlers.SensorHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:8050"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	router.Use(cfg.RequestIDMiddleware.Tag())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Readings
		api.GET("/readings", cfg.ReadingHandler.List)
		api.POST("/readings", cfg.ReadingHandler.Create)

		// Dykes
		api.GET("/dykes", cfg.DykeHandler.List)
		api.POST("/dykes", cfg.DykeHandler.Create)
		api.GET("/dykes/:id", cfg.DykeHandler.Get)
		api.DELETE("/dykes/:id", cfg.DykeHandler.Delete)
		api.GET("/dykes/:id/crossections", cfg.DykeHandler.ListCrossections)

		// Crossections, topologies and layers
		api.POST("/crossections", cfg.CrossectionHandler.Create)
		api.GET("/crossections/:name", cfg.CrossectionHandler.Get)
		api.POST("/crossections/:name/layers", cfg.CrossectionHandler.AddLayer)
		api.GET("/crossections/:name/layers", cfg.CrossectionHandler.ListLayers)
		api.POST("/topologies", cfg.CrossectionHandler.CreateTopology)

		// Sensor registry
		api.GET("/sensors", cfg.SensorHandler.List)
		api.POST("/sensors", cfg.SensorHandler.Create)
		api.GET("/sensors/:name", cfg.SensorHandler.Get)
		api.POST("/sensors/:id/deactivate", cfg.SensorHandler.Deactivate)
		api.POST("/sensor-types", cfg.SensorHandler.CreateType)
		api.GET("/sensor-types/:name", cfg.SensorHandler.GetType)
		api.POST("/sensor-types/:name/units", cfg.SensorHandler.AddTypeUnit)
		api.GET("/units", cfg.SensorHandler.ListUnits)
		api.POST("/units", cfg.SensorHandler.CreateUnit)
	}

	return router
}
