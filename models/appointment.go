package models

import "time"

// Appointment status values.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment represents a committed booking record.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	StaffID       string    `bson:"staffId" json:"staffId"`
	StartTime     time.Time `bson:"startTime" json:"startTime"`
	EndTime       time.Time `bson:"endTime" json:"endTime"`
	Status        string    `bson:"status" json:"status"`
	TotalAmount   float64   `bson:"totalAmount" json:"totalAmount"`
	BookingMethod string    `bson:"bookingMethod" json:"bookingMethod"` // e.g., "sms"
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Occupies reports whether the appointment still holds its time on the
// calendar. Cancelled appointments do not occupy time.
func (a Appointment) Occupies() bool {
	return a.Status != AppointmentCancelled
}

// Overlaps reports whether the appointment's interval intersects [start, end).
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
