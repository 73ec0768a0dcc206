package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cesarforall/TechManager/internal/handlers"
	"github.com/cesarforall/TechManager/internal/middleware"
)

type RouterConfig struct {
	RequestLogMiddleware *middleware.RequestLogMiddleware
	DeviceHandler        *handlers.DeviceHandler
	TechnicianHandler    *handlers.TechnicianHandler
	KnowledgeHandler     *handlers.KnowledgeHandler
	UpdateHandler        *handlers.UpdateHandler
	VerificationHandler  *handlers.VerificationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(cfg.RequestLogMiddleware.LogRequests())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Devices
		api.POST("/devices", cfg.DeviceHandler.Create)
		api.GET("/devices", cfg.DeviceHandler.List)
		api.GET("/devices/:id", cfg.DeviceHandler.Get)
		api.PUT("/devices/:id", cfg.DeviceHandler.Update)
		api.DELETE("/devices/:id", cfg.DeviceHandler.Delete)
		// Technicians
		api.POST("/technicians", cfg.TechnicianHandler.Create)
		api.GET("/technicians", cfg.TechnicianHandler.List)
		api.GET("/technicians/:id", cfg.TechnicianHandler.Get)
		api.PUT("/technicians/:id", cfg.TechnicianHandler.Update)
		api.DELETE("/technicians/:id", cfg.TechnicianHandler.Delete)
		api.GET("/technicians/drawer/:drawer", cfg.TechnicianHandler.GetByDrawer)
		api.GET("/technicians/:id/available-devices", cfg.TechnicianHandler.AvailableDevices)
		// Knowledge
		api.POST("/knowledge", cfg.KnowledgeHandler.Create)
		api.POST("/knowledge/bulk", cfg.KnowledgeHandler.CreateBulk)
		api.GET("/knowledge", cfg.KnowledgeHandler.List)
		api.DELETE("/knowledge/:id", cfg.KnowledgeHandler.Delete)
		// Updates
		api.POST("/updates", cfg.UpdateHandler.Create)
		api.GET("/updates", cfg.UpdateHandler.List)
		api.GET("/updates/:id", cfg.UpdateHandler.Get)
		api.DELETE("/updates/:id", cfg.UpdateHandler.Delete)
		// Verifications
		api.GET("/verifications", cfg.VerificationHandler.List)
		api.POST("/verifications/confirm", cfg.VerificationHandler.Confirm)
	}

	return router
}
