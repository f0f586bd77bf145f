// File: services/booking/service_test.go
package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	appointmentRepo "glospa/database/repository/appointment"
	"glospa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memApptRepo mimics the conditional-insert semantics of the real repository:
// an insert only succeeds if no live appointment overlaps it.
type memApptRepo struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (r *memApptRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.appts {
		if existing.StaffID != appt.StaffID || !existing.Occupies() {
			continue
		}
		if existing.Overlaps(appt.StartTime, appt.EndTime) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *memApptRepo) GetStaffAppointments(ctx context.Context, staffID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.StaffID == staffID && a.StartTime.Before(dayEnd) && a.EndTime.After(dayStart) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (r *memApptRepo) Cancel(ctx context.Context, id string) error { return nil }

type stubClients struct{}

func (stubClients) GetOrCreateByPhone(ctx context.Context, phone string) (*models.Client, error) {
	return &models.Client{ID: "cl-1", Phone: phone}, nil
}

func (stubClients) GetByPhone(ctx context.Context, phone string) (*models.Client, error) {
	return &models.Client{ID: "cl-1", Phone: phone}, nil
}

type recordingReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (r *recordingReminders) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment, phone, serviceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, appt.ID)
	return nil
}

func commitSlot() models.TimeSlot {
	start := time.Date(2025, 6, 13, 15, 0, 0, 0, time.UTC)
	return models.TimeSlot{
		StartTime:       start,
		EndTime:         start.Add(60 * time.Minute),
		StaffID:         "st-1",
		StaffName:       "Sarah",
		ServiceID:       "svc-1",
		ServiceName:     "Signature Head Spa",
		ServiceDuration: 60,
		ServicePrice:    99,
	}
}

func commitRequest() models.BookingRequest {
	return models.BookingRequest{
		ServiceName: "Signature Head Spa",
		Date:        "2025-06-13",
		Time:        "3pm",
		ClientPhone: "+19185551234",
	}
}

func TestCommitCreatesConfirmedAppointment(t *testing.T) {
	repo := &memApptRepo{}
	reminders := &recordingReminders{}
	svc := &DefaultService{Appointments: repo, Clients: stubClients{}, Reminders: reminders}

	appt, err := svc.Commit(context.Background(), commitRequest(), commitSlot())
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "cl-1", appt.ClientID)
	assert.Equal(t, "st-1", appt.StaffID)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	assert.Equal(t, "sms", appt.BookingMethod)
	assert.Equal(t, 99.0, appt.TotalAmount)
	assert.Equal(t, []string{appt.ID}, reminders.scheduled)
}

func TestCommitReturnsErrSlotTakenOnOverlap(t *testing.T) {
	repo := &memApptRepo{}
	svc := &DefaultService{Appointments: repo, Clients: stubClients{}}

	_, err := svc.Commit(context.Background(), commitRequest(), commitSlot())
	require.NoError(t, err)

	_, err = svc.Commit(context.Background(), commitRequest(), commitSlot())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCommitWorksWithoutReminderScheduler(t *testing.T) {
	svc := &DefaultService{Appointments: &memApptRepo{}, Clients: stubClients{}}

	_, err := svc.Commit(context.Background(), commitRequest(), commitSlot())
	assert.NoError(t, err)
}

func TestConcurrentCommitsAdmitExactlyOne(t *testing.T) {
	repo := &memApptRepo{}
	svc := &DefaultService{Appointments: repo, Clients: stubClients{}}

	const racers = 8
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Commit(context.Background(), commitRequest(), commitSlot())
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, ErrSlotTaken)
			losses++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, losses)

	appts, err := repo.GetStaffAppointments(context.Background(),
		"st-1", commitSlot().StartTime.Add(-time.Hour), commitSlot().EndTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}
