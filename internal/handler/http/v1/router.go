package v1

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.root)

	createLimiter := NewIPRateLimiter(rate.Limit(h.cfg.CreateRateRPS), h.cfg.CreateRateBurst)

	// Публичная лента инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.POST("", RateLimitMiddleware(createLimiter), h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.POST("/:id/react", h.reactToIncident)
	}

	// Присутствие на карте
	api.POST("/users/heartbeat/:sessionId", h.heartbeat)

	// Прокси геокодирования
	api.POST("/geocode", h.geocodeAddress)
	api.POST("/geocode/reverse", h.reverseGeocode)

	// Сквозные данные сообщества
	api.GET("/chat", h.listChatMessages)
	api.POST("/chat", h.postChatMessage)

	streets := api.Group("/streets")
	{
		streets.GET("/highlights", h.listStreetHighlights)
		streets.POST("/highlights", h.addStreetHighlight)
		streets.GET("/notes", h.listStreetNotes)
		streets.POST("/notes", h.addStreetNote)
	}

	api.GET("/notice", h.getWelcomeNotice)

	// Админские маршруты за общей учеткой
	adminAuth := AdminAuthMiddleware(h.cfg, h.logger)
	api.POST("/admin/verify", h.verifyAdmin)

	admin := api.Group("/admin", adminAuth)
	{
		admin.GET("/incidents", h.listIncidentsAdmin)
		admin.PUT("/incidents/:id", h.updateIncident)
		admin.DELETE("/incidents/:id", h.deleteIncident)
	}

	streetsAdmin := api.Group("/streets", adminAuth)
	{
		streetsAdmin.DELETE("/highlights/:id", h.deleteStreetHighlight)
		streetsAdmin.DELETE("/notes/:id", h.deleteStreetNote)
	}
	api.PUT("/notice", adminAuth, h.setWelcomeNotice)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
