package models

import "time"

// ConversationStep identifies the caller's position in the booking dialogue.
type ConversationStep string

const (
	StepIdle                ConversationStep = "idle"
	StepServiceSelection    ConversationStep = "service_selection"
	StepDateSelection       ConversationStep = "date_selection"
	StepTimeSelection       ConversationStep = "time_selection"
	StepBookingConfirmation ConversationStep = "booking_confirmation"
)

// ConversationState holds the per-phone-number booking dialogue context.
// It is mutated only by the conversation engine and serialized as JSON for
// the Redis-backed store.
type ConversationState struct {
	PhoneNumber     string           `json:"phoneNumber"`
	Step            ConversationStep `json:"step"`
	SelectedService string           `json:"selectedService,omitempty"`
	SelectedDate    string           `json:"selectedDate,omitempty"` // normalized "YYYY-MM-DD"
	SelectedTime    string           `json:"selectedTime,omitempty"` // canonical time token, e.g. "3pm"
	OfferedTimes    []string         `json:"offeredTimes,omitempty"` // labels offered verbatim, e.g. "3:00 PM"
	OfferedSlots    []TimeSlot       `json:"offeredSlots,omitempty"` // the concrete slots backing OfferedTimes
	LastIntent      string           `json:"lastIntent,omitempty"`
	MessageCount    int              `json:"messageCount"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// NewConversationState returns a fresh idle state for the given number.
func NewConversationState(phone string) *ConversationState {
	return &ConversationState{
		PhoneNumber: phone,
		Step:        StepIdle,
		LastUpdated: time.Now(),
	}
}

// InBookingFlow reports whether the conversation is mid booking dialogue.
// While in the flow, inbound text is treated as an answer to the current
// prompt rather than reclassified as a new topic.
func (c *ConversationState) InBookingFlow() bool {
	switch c.Step {
	case StepServiceSelection, StepDateSelection, StepTimeSelection:
		return true
	}
	return false
}

// Expired reports whether the state is older than the given idle threshold.
func (c *ConversationState) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(c.LastUpdated) > ttl
}
