// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "glospa/database/repository/appointment"
	"glospa/models"
	"glospa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultService) Commit(ctx context.Context, req models.BookingRequest, slot models.TimeSlot) (*models.Appointment, error) {
	logger := utils.GetLogger()

	client, err := s.Clients.GetOrCreateByPhone(ctx, req.ClientPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		ServiceID:     slot.ServiceID,
		StaffID:       slot.StaffID,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Status:        models.AppointmentConfirmed,
		TotalAmount:   slot.ServicePrice,
		BookingMethod: "sms",
		Notes:         fmt.Sprintf("Booked via SMS - %s", req.ClientPhone),
		CreatedAt:     time.Now(),
	}

	// The repository re-runs the conflict check and inserts in one
	// transaction; an offer computed minutes ago is never trusted here.
	if err := s.Appointments.CreateIfFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			logger.Info("booking: lost slot race",
				zap.String("staffId", slot.StaffID),
				zap.Time("start", slot.StartTime),
				zap.String("phone", req.ClientPhone))
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt, req.ClientPhone, slot.ServiceName); err != nil {
			// A booking without a reminder is still a booking.
			logger.Error("booking: failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Sugar().Infof("booking: committed appointment %s for %s at %s",
		appt.ID, req.ClientPhone, slot.StartTime.Format(time.RFC3339))
	return appt, nil
}
