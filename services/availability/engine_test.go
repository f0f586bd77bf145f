// File: services/availability/engine_test.go
package availability

import (
	"context"
	"testing"
	"time"

	"glospa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStaffRepo struct {
	staff []models.Staff
}

func (s *stubStaffRepo) GetAllStaff(ctx context.Context) ([]models.Staff, error) {
	return s.staff, nil
}

func (s *stubStaffRepo) GetStaffForService(ctx context.Context, serviceID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, st := range s.staff {
		if st.CanPerform(serviceID) {
			out = append(out, st)
		}
	}
	return out, nil
}

type stubScheduleRepo struct {
	rows []models.StaffSchedule
}

func (s *stubScheduleRepo) GetStaffSchedules(ctx context.Context, staffID, dayOfWeek, date string) ([]models.StaffSchedule, error) {
	var out []models.StaffSchedule
	for _, row := range s.rows {
		if row.StaffID == staffID && row.DayOfWeek == dayOfWeek && row.AppliesTo(date) {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubApptRepo struct {
	appts []models.Appointment
}

func (s *stubApptRepo) GetStaffAppointments(ctx context.Context, staffID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appts {
		if a.StaffID == staffID && a.StartTime.Before(dayEnd) && a.EndTime.After(dayStart) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubApptRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	s.appts = append(s.appts, *appt)
	return nil
}

func (s *stubApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range s.appts {
		if s.appts[i].ID == id {
			return &s.appts[i], nil
		}
	}
	return nil, nil
}

func (s *stubApptRepo) Cancel(ctx context.Context, id string) error { return nil }

func headSpa() models.Service {
	return models.Service{ID: "svc-1", Name: "Signature Head Spa", Duration: 60, Price: 99, Active: true}
}

func fridayMorningEngine(appts []models.Appointment) *DefaultEngine {
	return &DefaultEngine{
		Staff: &stubStaffRepo{staff: []models.Staff{
			{ID: "st-1", Name: "Sarah", ServiceIDs: []string{"svc-1"}},
		}},
		Schedules: &stubScheduleRepo{rows: []models.StaffSchedule{
			{ID: "row-1", StaffID: "st-1", DayOfWeek: "Friday", StartTime: "09:00", EndTime: "12:00", StartDate: "2025-01-01"},
		}},
		Appointments: &stubApptRepo{appts: appts},
		Now:          func() time.Time { return anchor },
	}
}

func slotStarts(slots []models.TimeSlot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.Label())
	}
	return out
}

func TestFindSlotsGridWithinWindow(t *testing.T) {
	eng := fridayMorningEngine(nil)

	slots, date, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-13", date)
	// A 60-minute service in a 09:00-12:00 window starts every 30 minutes up
	// to 11:00.
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM"}, slotStarts(slots))
}

func TestFindSlotsIsIdempotent(t *testing.T) {
	eng := fridayMorningEngine(nil)

	first, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	second, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindSlotsSkipsConflicts(t *testing.T) {
	day := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	eng := fridayMorningEngine([]models.Appointment{{
		ID:        "appt-1",
		StaffID:   "st-1",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
		Status:    models.AppointmentConfirmed,
	}})

	slots, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	// Any candidate overlapping 10:00-11:00 disappears.
	assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, slotStarts(slots))
}

func TestFindSlotsIgnoresCancelledAppointments(t *testing.T) {
	day := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	eng := fridayMorningEngine([]models.Appointment{{
		ID:        "appt-1",
		StaffID:   "st-1",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
		Status:    models.AppointmentCancelled,
	}})

	slots, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	assert.Len(t, slots, 5)
}

func TestFindSlotsExpiredScheduleRowProducesNothing(t *testing.T) {
	end := "2025-06-01"
	eng := fridayMorningEngine(nil)
	eng.Schedules = &stubScheduleRepo{rows: []models.StaffSchedule{
		{ID: "row-1", StaffID: "st-1", DayOfWeek: "Friday", StartTime: "09:00", EndTime: "12:00", StartDate: "2025-01-01", EndDate: &end},
	}}

	slots, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBookedSlotDisappearsFromNextQuery(t *testing.T) {
	eng := fridayMorningEngine(nil)
	ctx := context.Background()

	slots, _, err := eng.FindSlots(ctx, headSpa(), "friday")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	chosen := slots[1]
	require.NoError(t, eng.Appointments.CreateIfFree(ctx, &models.Appointment{
		ID:        "appt-1",
		StaffID:   chosen.StaffID,
		StartTime: chosen.StartTime,
		EndTime:   chosen.EndTime,
		Status:    models.AppointmentConfirmed,
	}))

	after, _, err := eng.FindSlots(ctx, headSpa(), "friday")
	require.NoError(t, err)
	for _, s := range after {
		assert.False(t, s.StartTime.Before(chosen.EndTime) && s.EndTime.After(chosen.StartTime),
			"slot %s still offered over the booked interval", s.Label())
	}
	assert.Less(t, len(after), len(slots))
}

func TestFindSlotsOpenEndedScheduleMatchesFarFuture(t *testing.T) {
	eng := fridayMorningEngine(nil)

	// 2031-01-03 is a Friday; the open-ended row still applies.
	slots, date, err := eng.FindSlots(context.Background(), headSpa(), "2031-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2031-01-03", date)
	assert.NotEmpty(t, slots)
}

func TestFindSlotsSortsByStartThenStaffName(t *testing.T) {
	eng := fridayMorningEngine(nil)
	eng.Staff = &stubStaffRepo{staff: []models.Staff{
		{ID: "st-2", Name: "Zoe", ServiceIDs: []string{"svc-1"}},
		{ID: "st-1", Name: "Sarah", ServiceIDs: []string{"svc-1"}},
	}}
	eng.Schedules = &stubScheduleRepo{rows: []models.StaffSchedule{
		{ID: "row-1", StaffID: "st-1", DayOfWeek: "Friday", StartTime: "09:00", EndTime: "10:00", StartDate: "2025-01-01"},
		{ID: "row-2", StaffID: "st-2", DayOfWeek: "Friday", StartTime: "09:00", EndTime: "10:00", StartDate: "2025-01-01"},
	}}

	slots, _, err := eng.FindSlots(context.Background(), headSpa(), "friday")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "Sarah", slots[0].StaffName)
	assert.Equal(t, "Zoe", slots[1].StaffName)
	assert.Equal(t, slots[0].StartTime, slots[1].StartTime)
}
