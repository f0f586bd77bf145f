// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "glospa/database/repository/appointment"
	clientRepo "glospa/database/repository/client"
	respondlogRepo "glospa/database/repository/respondlog"
	staffRepo "glospa/database/repository/staff"
	"glospa/services/sms"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminHandler exposes the runtime configuration, monitoring, and salon data
// endpoints behind the admin key.
type AdminHandler struct {
	Engine       sms.Engine
	RespondLog   respondlogRepo.RespondLogRepository
	Staff        staffRepo.StaffRepository
	Appointments appointmentRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository
	Logger       *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(engine sms.Engine, respondLog respondlogRepo.RespondLogRepository, staff staffRepo.StaffRepository, appointments appointmentRepo.AppointmentRepository, clients clientRepo.ClientRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Engine:       engine,
		RespondLog:   respondLog,
		Staff:        staff,
		Appointments: appointments,
		Clients:      clients,
		Logger:       logger,
	}
}

// GetConfig handles GET /api/sms/config.
func (h *AdminHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Settings().Snapshot())
}

// UpdateConfig handles PUT /api/sms/config. Only the fields present in the
// body are changed.
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var body struct {
		Enabled             *bool    `json:"enabled"`
		ConfidenceThreshold *float64 `json:"confidenceThreshold"`
		MaxResponseLength   *int     `json:"maxResponseLength"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("UpdateConfig: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	h.Engine.Settings().Update(body.Enabled, body.ConfidenceThreshold, body.MaxResponseLength)
	c.JSON(http.StatusOK, h.Engine.Settings().Snapshot())
}

// Stats handles GET /api/sms/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Stats(c.Request.Context()))
}

// RecentLog handles GET /api/sms/log/:phone.
func (h *AdminHandler) RecentLog(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing phone"})
		return
	}

	entries, err := h.RespondLog.RecentForPhone(c.Request.Context(), phone, 50)
	if err != nil {
		h.Logger.Error("RecentLog: failed to fetch entries", zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch log entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListStaff handles GET /api/staff.
func (h *AdminHandler) ListStaff(c *gin.Context) {
	staff, err := h.Staff.GetAllStaff(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListStaff: failed to fetch staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetAppointment handles GET /api/appointments/id/:id.
func (h *AdminHandler) GetAppointment(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.Logger.Error("GetAppointment: failed to fetch appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment"})
		return
	}
	if appt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment handles DELETE /api/appointments/id/:id. Cancelled
// appointments stop occupying their slot in availability queries.
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Appointments.Cancel(c.Request.Context(), id); err != nil {
		h.Logger.Warn("CancelAppointment: cancel failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "cancelled"})
}

// GetClient handles GET /api/clients/phone/:phone.
func (h *AdminHandler) GetClient(c *gin.Context) {
	phone := c.Param("phone")
	client, err := h.Clients.GetByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.Logger.Error("GetClient: failed to fetch client", zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch client"})
		return
	}
	c.JSON(http.StatusOK, client)
}
