// File: services/booking/interface.go
package booking

import (
	"context"
	"errors"

	appointmentRepo "glospa/database/repository/appointment"
	clientRepo "glospa/database/repository/client"
	"glospa/models"
	"glospa/services/tasks"
)

// ErrSlotTaken signals that the chosen slot was booked by someone else after
// it was offered. Callers re-offer current availability instead of retrying.
var ErrSlotTaken = errors.New("slot no longer available")

// Service commits a chosen slot exactly once.
type Service interface {
	// Commit re-validates the slot against current appointment data and
	// writes the appointment. Returns ErrSlotTaken when the race was lost.
	Commit(ctx context.Context, req models.BookingRequest, slot models.TimeSlot) (*models.Appointment, error)
}

// DefaultService is the production booking transaction.
type DefaultService struct {
	Appointments appointmentRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository
	Reminders    tasks.ReminderScheduler // optional; nil disables reminders
}
