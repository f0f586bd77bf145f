package models

// Staff represents a stylist or therapist who can be booked.
type Staff struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Title      string   `bson:"title,omitempty" json:"title,omitempty"` // e.g., "Head Spa Specialist"
	ServiceIDs []string `bson:"serviceIds" json:"serviceIds"`           // services this staff member is qualified to perform
}

// CanPerform reports whether the staff member is assigned to the given service.
func (s Staff) CanPerform(serviceID string) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
