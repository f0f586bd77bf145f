package models

// BookingRequest carries the raw booking parameters as the client stated
// them. It is used both for slot search and for the final commit; commit-time
// validation always re-checks against current data rather than reusing a
// stale slot computation.
type BookingRequest struct {
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	ClientPhone string `json:"clientPhone"`
	ClientName  string `json:"clientName,omitempty"`
}
