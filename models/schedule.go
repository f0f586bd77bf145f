package models

// StaffSchedule is one row of a staff member's weekly working pattern.
// Several rows may exist for the same staff/day; non-blocked rows union into
// the working window and blocked rows carve time out of it.
type StaffSchedule struct {
	ID        string  `bson:"id" json:"id"`
	StaffID   string  `bson:"staffId" json:"staffId"`
	DayOfWeek string  `bson:"dayOfWeek" json:"dayOfWeek"` // "Monday", "Tuesday", ...
	StartTime string  `bson:"startTime" json:"startTime"` // "HH:MM", 24h
	EndTime   string  `bson:"endTime" json:"endTime"`     // "HH:MM", 24h
	StartDate string  `bson:"startDate" json:"startDate"` // first date the row applies, "YYYY-MM-DD"
	EndDate   *string `bson:"endDate,omitempty" json:"endDate,omitempty"` // nil means open-ended
	IsBlocked bool    `bson:"isBlocked" json:"isBlocked"`
}

// AppliesTo reports whether the row's validity range covers the given date
// (date in "YYYY-MM-DD"; lexicographic comparison is correct for this format).
func (s StaffSchedule) AppliesTo(date string) bool {
	if s.StartDate != "" && date < s.StartDate {
		return false
	}
	if s.EndDate != nil && *s.EndDate != "" && date > *s.EndDate {
		return false
	}
	return true
}
