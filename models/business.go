package models

import "time"

// BusinessSettings is reference data about the salon used in outbound copy.
type BusinessSettings struct {
	ID           string `bson:"id" json:"id"`
	BusinessName string `bson:"businessName" json:"businessName"`
	Phone        string `bson:"phone" json:"phone"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	Hours        string `bson:"hours,omitempty" json:"hours,omitempty"` // e.g., "Monday through Saturday, 9:00 AM to 6:00 PM"
}

// BusinessKnowledge is a free-text knowledge base entry used to answer
// business questions.
type BusinessKnowledge struct {
	ID       string `bson:"id" json:"id"`
	Category string `bson:"category" json:"category"` // e.g., "pricing", "hours", "location"
	Content  string `bson:"content" json:"content"`
}

// RespondLogEntry is one row of the auto-response audit trail.
type RespondLogEntry struct {
	ID         string    `bson:"id" json:"id"`
	Phone      string    `bson:"phone" json:"phone"`
	Inbound    string    `bson:"inbound" json:"inbound"`
	Response   string    `bson:"response" json:"response"`
	Intent     string    `bson:"intent" json:"intent"`
	Confidence float64   `bson:"confidence" json:"confidence"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Phone         string `json:"phone"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
