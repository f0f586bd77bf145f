package models

import "time"

// TimeSlot is a candidate bookable interval for one staff member and one
// service. Slots are derived, never persisted; they are recomputed per query.
type TimeSlot struct {
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	StaffID         string    `json:"staffId"`
	StaffName       string    `json:"staffName"`
	ServiceID       string    `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	ServiceDuration int       `json:"serviceDuration"` // in minutes
	ServicePrice    float64   `json:"servicePrice"`
}

// Label renders the slot's start in the form offered to clients, e.g. "3:00 PM".
func (s TimeSlot) Label() string {
	return s.StartTime.Format("3:04 PM")
}

// Interval represents a continuous block of time within a single day,
// expressed in minutes from midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the interval covers no time.
func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}
