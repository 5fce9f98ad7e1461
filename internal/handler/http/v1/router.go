package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Сессии персонала ходят с JWT, устройства и интеграции - с API-ключом
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Открытые маршруты
	api.POST("/auth/login", h.login)
	api.GET("/system/health", h.healthCheck)

	// Маршруты персонала, JWT-сессия
	staff := api.Group("", JWTAuthMiddleware(h.cfg, h.logger))
	{
		incidents := staff.Group("/incidents")
		{
			incidents.POST("", h.createIncident)
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)
			incidents.PATCH("/:id", h.updateIncident)
			incidents.POST("/:id/assign", h.assignTeam)
			incidents.POST("/:id/resolve", h.resolveIncident)
		}

		staff.GET("/teams", h.listTeams)

		messages := staff.Group("/messages")
		{
			messages.POST("", h.createMessage)
			messages.GET("", h.listMessages)
			messages.POST("/:id/read", h.markMessageRead)
		}

		evacuation := staff.Group("/evacuation")
		{
			evacuation.GET("/headcount", h.evacuationHeadcount)
			evacuation.GET("/checkins", h.listCheckIns)
			evacuation.PATCH("/checkins/:id", h.updateCheckIn)
		}

		staff.GET("/settings", h.getSettings)
		staff.PUT("/settings", RequireRole("manager", h.logger), h.saveSettings)

		sensors := staff.Group("/sensors")
		{
			sensors.POST("", h.createSensor)
			sensors.GET("", h.listSensors)
			sensors.GET("/alerts", h.listSensorAlerts)
			sensors.POST("/alerts/:id/ack", h.acknowledgeAlert)
			sensors.GET("/:id", h.getSensor)
			sensors.PATCH("/:id", h.updateSensor)
			sensors.DELETE("/:id", h.deleteSensor)
		}

		accounts := staff.Group("/accounts", RequireRole("manager", h.logger))
		{
			accounts.POST("", h.createAccount)
			accounts.GET("", h.listAccounts)
			accounts.GET("/:id", h.getAccount)
			accounts.PATCH("/:id", h.updateAccount)
			accounts.DELETE("/:id", h.deactivateAccount)
		}

		staff.GET("/ws", h.serveWS)
	}

	// Маршруты устройств и интеграций, API-ключ
	ingest := api.Group("/ingest", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		ingest.POST("/incidents", h.pushIncident)
		ingest.PATCH("/incidents/:id", h.pushIncidentUpdate)
		ingest.POST("/sensors/:id/reading", h.ingestSensorReading)
	}
}
