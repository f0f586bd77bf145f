// File: services/availability/engine.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	appointmentRepo "glospa/database/repository/appointment"
	scheduleRepo "glospa/database/repository/schedule"
	staffRepo "glospa/database/repository/staff"
	"glospa/models"
	"glospa/utils"

	"go.uber.org/zap"
)

// Candidate start times are generated on a fixed 30-minute grid within each
// free window.
const slotStepMinutes = 30

// Engine computes open appointment slots for a service on a date.
type Engine interface {
	// FindSlots resolves the date token and returns every open candidate slot
	// for the service, sorted by start time then staff name. The resolved
	// calendar date is returned alongside so callers can store it.
	FindSlots(ctx context.Context, service models.Service, dateToken string) ([]models.TimeSlot, string, error)
}

// DefaultEngine is the production availability engine.
type DefaultEngine struct {
	Staff        staffRepo.StaffRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultEngine) FindSlots(ctx context.Context, service models.Service, dateToken string) ([]models.TimeSlot, string, error) {
	logger := utils.GetLogger()

	day, err := ResolveDate(dateToken, e.now())
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve date: %w", err)
	}
	dateStr := DateString(day)
	dayOfWeek := day.Weekday().String()

	pool, err := e.Staff.GetStaffForService(ctx, service.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load staff pool: %w", err)
	}

	var slots []models.TimeSlot
	for _, staff := range pool {
		rows, err := e.Schedules.GetStaffSchedules(ctx, staff.ID, dayOfWeek, dateStr)
		if err != nil {
			logger.Error("availability: error fetching schedules",
				zap.String("staffId", staff.ID), zap.String("date", dateStr), zap.Error(err))
			return nil, "", err
		}
		if len(rows) == 0 {
			continue
		}

		windows, err := FreeWindows(rows)
		if err != nil {
			return nil, "", fmt.Errorf("staff %s: %w", staff.ID, err)
		}
		if len(windows) == 0 {
			continue
		}

		dayStart := day
		dayEnd := day.AddDate(0, 0, 1)
		appts, err := e.Appointments.GetStaffAppointments(ctx, staff.ID, dayStart, dayEnd)
		if err != nil {
			logger.Error("availability: error fetching appointments",
				zap.String("staffId", staff.ID), zap.String("date", dateStr), zap.Error(err))
			return nil, "", err
		}

		for _, w := range windows {
			slots = append(slots, e.discretize(day, w, staff, service, appts)...)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].StartTime.Before(slots[j].StartTime)
		}
		return slots[i].StaffName < slots[j].StaffName
	})

	return slots, dateStr, nil
}

// discretize walks the free window on the slot grid and keeps every candidate
// whose full service interval fits in the window and touches no existing
// non-cancelled appointment.
func (e *DefaultEngine) discretize(day time.Time, window models.Interval, staff models.Staff, service models.Service, appts []models.Appointment) []models.TimeSlot {
	var out []models.TimeSlot
	for start := window.Start; start+service.Duration <= window.End; start += slotStepMinutes {
		slotStart := day.Add(time.Duration(start) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(service.Duration) * time.Minute)

		conflict := false
		for _, appt := range appts {
			if !appt.Occupies() {
				continue
			}
			if appt.Overlaps(slotStart, slotEnd) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		out = append(out, models.TimeSlot{
			StartTime:       slotStart,
			EndTime:         slotEnd,
			StaffID:         staff.ID,
			StaffName:       staff.Name,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			ServiceDuration: service.Duration,
			ServicePrice:    service.Price,
		})
	}
	return out
}
