// File: services/sms/flow.go
package sms

import (
	"context"
	"errors"

	"glospa/models"
	"glospa/services/availability"
	"glospa/services/booking"
	"glospa/utils"

	"go.uber.org/zap"
)

// advanceBooking runs one turn of the booking dialogue. It mutates state in
// place and returns the reply plus whether the booking completed (completed
// conversations have their state cleared by the caller).
func (e *DefaultEngine) advanceBooking(ctx context.Context, state *models.ConversationState, body string, extracted models.ExtractedData, services []models.Service) (reply string, done bool) {
	logger := utils.GetLogger()

	switch state.Step {
	case models.StepIdle, "":
		state.Step = models.StepServiceSelection
		return e.Formatter.ServiceMenu(services), false

	case models.StepServiceSelection:
		if extracted.Service == "" {
			return e.Formatter.ServiceReprompt(services), false
		}
		state.SelectedService = extracted.Service
		state.Step = models.StepDateSelection
		return e.Formatter.DatePrompt(extracted.Service), false

	case models.StepDateSelection:
		if extracted.Date == "" {
			return e.Formatter.DateReprompt(), false
		}
		svc := findService(services, state.SelectedService)
		if svc == nil {
			// Catalog changed underneath the conversation; restart selection.
			state.Step = models.StepServiceSelection
			state.SelectedService = ""
			return e.Formatter.ServiceReprompt(services), false
		}
		slots, dateStr, err := e.Availability.FindSlots(ctx, *svc, extracted.Date)
		if err != nil {
			logger.Error("sms flow: availability lookup failed",
				zap.String("phone", state.PhoneNumber), zap.String("date", extracted.Date), zap.Error(err))
			return e.Formatter.Trouble(), false
		}
		if len(slots) == 0 {
			return e.Formatter.NoAvailability(svc.Name, displayDate(dateStr, extracted.Date)), false
		}
		state.SelectedDate = dateStr
		state.OfferedSlots = slots
		state.OfferedTimes = slotLabels(slots)
		state.Step = models.StepTimeSelection
		return e.Formatter.TimeOptions(svc.Name, displayDate(dateStr, extracted.Date), state.OfferedTimes), false

	case models.StepTimeSelection:
		idx := matchOfferedTime(body, state.OfferedTimes)
		if idx < 0 {
			return e.Formatter.TimeReprompt(state.OfferedTimes), false
		}
		label := state.OfferedTimes[idx]
		slot, ok := slotForLabel(state.OfferedSlots, label)
		if !ok {
			return e.Formatter.TimeReprompt(state.OfferedTimes), false
		}
		state.SelectedTime = label

		req := models.BookingRequest{
			ServiceName: state.SelectedService,
			Date:        state.SelectedDate,
			Time:        state.SelectedTime,
			ClientPhone: state.PhoneNumber,
		}
		appt, err := e.Booking.Commit(ctx, req, slot)
		if errors.Is(err, booking.ErrSlotTaken) {
			return e.reofferAfterConflict(ctx, state, services), false
		}
		if err != nil {
			logger.Error("sms flow: booking commit failed",
				zap.String("phone", state.PhoneNumber), zap.Error(err))
			return e.Formatter.Trouble(), false
		}
		logger.Info("sms flow: appointment booked",
			zap.String("phone", state.PhoneNumber),
			zap.String("appointmentId", appt.ID),
			zap.String("service", state.SelectedService),
			zap.String("date", state.SelectedDate),
			zap.String("time", state.SelectedTime))
		return e.Formatter.Confirmation(state.SelectedService, state.SelectedDate, state.SelectedTime), true

	default:
		// Unknown persisted step; recover by restarting the flow.
		state.Step = models.StepServiceSelection
		return e.Formatter.ServiceMenu(services), false
	}
}

// reofferAfterConflict re-queries availability after losing a booking race and
// keeps the conversation in time selection with a fresh offer list.
func (e *DefaultEngine) reofferAfterConflict(ctx context.Context, state *models.ConversationState, services []models.Service) string {
	svc := findService(services, state.SelectedService)
	if svc == nil {
		return e.Formatter.Trouble()
	}
	slots, _, err := e.Availability.FindSlots(ctx, *svc, state.SelectedDate)
	if err != nil {
		utils.GetLogger().Error("sms flow: re-offer lookup failed",
			zap.String("phone", state.PhoneNumber), zap.Error(err))
		return e.Formatter.Trouble()
	}
	if len(slots) == 0 {
		state.Step = models.StepDateSelection
		state.OfferedSlots = nil
		state.OfferedTimes = nil
		return e.Formatter.ConflictNoneLeft(state.SelectedDate)
	}
	state.OfferedSlots = slots
	state.OfferedTimes = slotLabels(slots)
	return e.Formatter.ConflictReoffer(state.OfferedTimes)
}

// matchOfferedTime finds which offered label the client's message refers to,
// or -1 if none.
func matchOfferedTime(body string, offered []string) int {
	tok := ExtractTime(body)
	for i, label := range offered {
		if TimeTokensMatch(tok, label) {
			return i
		}
	}
	return -1
}

func findService(services []models.Service, name string) *models.Service {
	for i := range services {
		if services[i].Name == name {
			return &services[i]
		}
	}
	return nil
}

// slotForLabel picks the first slot backing an offered label. Labels are
// deduplicated across staff, so the earliest-sorted staff member wins.
func slotForLabel(slots []models.TimeSlot, label string) (models.TimeSlot, bool) {
	for _, s := range slots {
		if s.Label() == label {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}

func slotLabels(slots []models.TimeSlot) []string {
	seen := make(map[string]bool, len(slots))
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		l := s.Label()
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	return labels
}

// displayDate prefers the word the client used ("tomorrow", "friday") over
// the normalized calendar date when echoing back to them.
func displayDate(dateStr, token string) string {
	if token != "" && !availability.IsCalendarDate(token) {
		return token
	}
	return dateStr
}
