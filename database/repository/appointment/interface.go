// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a conditional insert loses the race for a
// staff/time interval to a concurrent booking.
var ErrSlotTaken = errors.New("slot no longer available")

// AppointmentRepository provides access to committed appointments.
type AppointmentRepository interface {
	// GetStaffAppointments returns all appointments for the staff member whose
	// interval intersects [dayStart, dayEnd), regardless of status.
	GetStaffAppointments(ctx context.Context, staffID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// CreateIfFree inserts the appointment only if no non-cancelled
	// appointment for the same staff member overlaps its interval. Returns
	// ErrSlotTaken when the interval is already occupied.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
