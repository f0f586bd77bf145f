// File: routes/routes.go
package routes

import (
	"time"

	"glospa/handlers"
	"glospa/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSMSRoutes registers the inbound webhook and its monitoring
// endpoints.
func RegisterSMSRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sms")
	{
		api.POST("/webhook", hb.WebhookHandler)
		api.GET("/health", hb.HealthHandler)

		// Admin endpoints require the shared key.
		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("/config", hb.GetConfigHandler)
		admin.PUT("/config", hb.UpdateConfigHandler)
		admin.GET("/stats", hb.StatsHandler)
		admin.GET("/log/:phone", hb.RecentLogHandler)
	}
}

// RegisterCatalogRoutes registers public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/id/:id", hb.GetServiceByIDHandler)
		api.GET("/search", hb.SearchServiceHandler)
	}
}

// RegisterAdminRoutes registers salon data endpoints behind the admin key.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	staff := r.Group("/api/staff")
	staff.Use(middleware.AdminAuthMiddleware())
	staff.GET("", hb.ListStaffHandler)

	appts := r.Group("/api/appointments")
	appts.Use(middleware.AdminAuthMiddleware())
	appts.GET("/id/:id", hb.GetAppointmentHandler)
	appts.DELETE("/id/:id", hb.CancelAppointmentHandler)

	clients := r.Group("/api/clients")
	clients.Use(middleware.AdminAuthMiddleware())
	clients.GET("/phone/:phone", hb.GetClientHandler)
}

// RegisterRoutes sets up global middleware and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSMSRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
