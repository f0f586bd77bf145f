package models

import "time"

// Client represents a salon customer, keyed by phone number for SMS bookings.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Phone     string    `bson:"phone" json:"phone"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
