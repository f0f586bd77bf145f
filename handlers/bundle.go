// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Inbound SMS.
	WebhookHandler gin.HandlerFunc

	// Admin endpoints.
	GetConfigHandler         gin.HandlerFunc
	UpdateConfigHandler      gin.HandlerFunc
	StatsHandler             gin.HandlerFunc
	RecentLogHandler         gin.HandlerFunc
	ListStaffHandler         gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	GetClientHandler         gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler   gin.HandlerFunc
	GetServiceByIDHandler gin.HandlerFunc
	SearchServiceHandler  gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
