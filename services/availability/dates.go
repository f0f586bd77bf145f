package availability

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ResolveDate turns a relative date token ("today", "tomorrow", a weekday
// name, or an already-normalized "YYYY-MM-DD") into a concrete calendar date
// anchored at now. Weekday names resolve to the next occurrence, counting
// today as a valid occurrence.
func ResolveDate(token string, now time.Time) (time.Time, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch t {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if wd, ok := weekdays[t]; ok {
		offset := (int(wd) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, offset), nil
	}

	if parsed, err := time.ParseInLocation("2006-01-02", t, now.Location()); err == nil {
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date token %q", token)
}

// DateString formats a resolved date the way schedules and states store it.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsCalendarDate reports whether the token is already a normalized
// "YYYY-MM-DD" date rather than a relative word.
func IsCalendarDate(token string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(token))
	return err == nil
}
