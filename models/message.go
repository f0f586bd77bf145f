package models

// IncomingMessage is one inbound SMS delivered by the webhook adapter.
type IncomingMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
	MessageID string `json:"messageId"`
}

// Outcome records what the engine did with one inbound message. Every message
// produces exactly one Outcome: either a reply was sent or Reason explains why
// not.
type Outcome struct {
	Success      bool    `json:"success"`
	ResponseSent bool    `json:"responseSent"`
	Response     string  `json:"response,omitempty"`
	Intent       Intent  `json:"intent,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	Reason       string  `json:"reason,omitempty"` // why no response was sent
	Error        string  `json:"error,omitempty"`
}
