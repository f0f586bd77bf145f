// File: services/messenger/messenger.go
package messenger

import (
	"context"

	"glospa/utils"

	"go.uber.org/zap"
)

// Messenger delivers outbound SMS replies. The conversation engine treats
// delivery as fire-and-forget: failures are logged here, never surfaced into
// the state machine.
type Messenger interface {
	SendReply(ctx context.Context, toPhone, text string) error
}

// LogMessenger writes outbound messages to the log. It stands in for the
// transport adapter (Twilio etc.) in development and tests.
type LogMessenger struct{}

func (LogMessenger) SendReply(ctx context.Context, toPhone, text string) error {
	utils.GetLogger().Info("outbound sms",
		zap.String("to", toPhone),
		zap.Int("length", len(text)),
		zap.String("body", text))
	return nil
}
