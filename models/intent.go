package models

// Intent is the classified purpose of an inbound message.
type Intent string

const (
	IntentBooking          Intent = "booking"
	IntentReschedule       Intent = "reschedule"
	IntentCancel           Intent = "cancel"
	IntentBusinessQuestion Intent = "business_question"
	IntentGreeting         Intent = "greeting"
	IntentGeneral          Intent = "general"
)

// ExtractedData carries whichever booking entities the classifier could parse
// out of a message. Empty string means the entity was not present.
type ExtractedData struct {
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// IntentResult is the outcome of classifying one inbound message.
type IntentResult struct {
	Intent     Intent        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Extracted  ExtractedData `json:"extractedData,omitzero"`
}
