package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glospa/config"
	"glospa/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues appointment reminders for later delivery.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment, phone, serviceName string) error
}

// AsynqReminderScheduler schedules reminders on the Redis-backed task queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewAsynqReminderScheduler builds a scheduler from the app configuration.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}
}

func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment, phone, serviceName string) error {
	fireAt := appt.StartTime.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		// Too close to the appointment; skip rather than fire immediately.
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Phone:         phone,
		Body: fmt.Sprintf("Reminder: your %s appointment is at %s. See you soon!",
			serviceName, appt.StartTime.Format("3:04 PM")),
		FireDate: fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
