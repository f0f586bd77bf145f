// File: services/sms/service.go
package sms

import (
	"context"
	"sync"
	"time"

	catalogRepo "glospa/database/repository/catalog"
	clientRepo "glospa/database/repository/client"
	knowledgeRepo "glospa/database/repository/knowledge"
	respondlogRepo "glospa/database/repository/respondlog"
	"glospa/models"
	"glospa/services/availability"
	"glospa/services/booking"
	"glospa/services/messenger"
	"glospa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReasonDisabled is recorded on the outcome when auto-respond is switched off.
const ReasonDisabled = "auto-respond disabled"

// Engine is the conversational SMS front door. Exactly one outcome is
// produced per inbound message; messages from the same number are processed
// strictly in arrival order.
type Engine interface {
	HandleIncomingMessage(ctx context.Context, msg models.IncomingMessage) models.Outcome
	Settings() *Settings
	Stats(ctx context.Context) Stats
}

// Settings is the runtime-mutable configuration surface exposed over the
// admin API. Reads vastly outnumber writes.
type Settings struct {
	mu                  sync.RWMutex
	enabled             bool
	confidenceThreshold float64
	maxResponseLength   int
}

// NewSettings returns the production defaults.
func NewSettings() *Settings {
	return &Settings{enabled: true, confidenceThreshold: 0.7, maxResponseLength: 500}
}

// SettingsSnapshot is the JSON shape for the admin API.
type SettingsSnapshot struct {
	Enabled             bool    `json:"enabled"`
	ConfidenceThreshold float64 `json:"confidenceThreshold"`
	MaxResponseLength   int     `json:"maxResponseLength"`
}

func (s *Settings) Snapshot() SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsSnapshot{
		Enabled:             s.enabled,
		ConfidenceThreshold: s.confidenceThreshold,
		MaxResponseLength:   s.maxResponseLength,
	}
}

// Update applies non-nil fields from the admin API.
func (s *Settings) Update(enabled *bool, threshold *float64, maxLen *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if enabled != nil {
		s.enabled = *enabled
	}
	if threshold != nil && *threshold >= 0 && *threshold <= 1 {
		s.confidenceThreshold = *threshold
	}
	if maxLen != nil && *maxLen > 0 {
		s.maxResponseLength = *maxLen
	}
}

func (s *Settings) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

func (s *Settings) MaxResponseLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxResponseLength
}

// Stats summarizes engine activity for the admin API.
type Stats struct {
	ActiveConversations int   `json:"activeConversations"`
	MessagesHandled     int64 `json:"messagesHandled"`
	BookingsCompleted   int64 `json:"bookingsCompleted"`
}

// DefaultEngine is the production conversation engine.
type DefaultEngine struct {
	States       StateStore
	Catalog      catalogRepo.CatalogRepository
	Knowledge    knowledgeRepo.KnowledgeRepository
	Clients      clientRepo.ClientRepository
	Availability availability.Engine
	Booking      booking.Service
	Messenger    messenger.Messenger
	RespondLog   respondlogRepo.RespondLogRepository
	Formatter    *Formatter

	settings *Settings

	// Per-phone locks serialize concurrent webhook deliveries from the same
	// number so state transitions never interleave.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	statsMu   sync.Mutex
	messages  int64
	completed int64
}

// NewDefaultEngine wires a DefaultEngine with default runtime settings.
func NewDefaultEngine(states StateStore, catalog catalogRepo.CatalogRepository, knowledge knowledgeRepo.KnowledgeRepository, clients clientRepo.ClientRepository, avail availability.Engine, book booking.Service, msgr messenger.Messenger, respondLog respondlogRepo.RespondLogRepository, fmtr *Formatter) *DefaultEngine {
	return &DefaultEngine{
		States:       states,
		Catalog:      catalog,
		Knowledge:    knowledge,
		Clients:      clients,
		Availability: avail,
		Booking:      book,
		Messenger:    msgr,
		RespondLog:   respondLog,
		Formatter:    fmtr,
		settings:     NewSettings(),
		locks:        make(map[string]*sync.Mutex),
	}
}

func (e *DefaultEngine) Settings() *Settings {
	return e.settings
}

func (e *DefaultEngine) Stats(ctx context.Context) Stats {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	return Stats{
		ActiveConversations: e.States.ActiveCount(ctx),
		MessagesHandled:     e.messages,
		BookingsCompleted:   e.completed,
	}
}

func (e *DefaultEngine) phoneLock(phone string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	mu, ok := e.locks[phone]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[phone] = mu
	}
	return mu
}

// HandleIncomingMessage classifies one inbound SMS, advances the caller's
// conversation, sends the reply, and records the audit entry.
func (e *DefaultEngine) HandleIncomingMessage(ctx context.Context, msg models.IncomingMessage) models.Outcome {
	logger := utils.GetLogger()

	if !e.settings.Enabled() {
		return models.Outcome{Success: true, ResponseSent: false, Reason: ReasonDisabled}
	}

	mu := e.phoneLock(msg.From)
	mu.Lock()
	defer mu.Unlock()

	e.statsMu.Lock()
	e.messages++
	e.statsMu.Unlock()

	if _, err := e.Clients.GetOrCreateByPhone(ctx, msg.From); err != nil {
		logger.Error("sms: client lookup failed", zap.String("phone", msg.From), zap.Error(err))
		return models.Outcome{Success: false, ResponseSent: false, Error: "client lookup failed"}
	}

	state, err := e.States.Get(ctx, msg.From)
	if err != nil {
		logger.Error("sms: state load failed", zap.String("phone", msg.From), zap.Error(err))
		return models.Outcome{Success: false, ResponseSent: false, Error: "conversation state unavailable"}
	}

	services, err := e.Catalog.GetAllServices(ctx)
	if err != nil {
		logger.Error("sms: catalog load failed", zap.Error(err))
		return models.Outcome{Success: false, ResponseSent: false, Error: "service catalog unavailable"}
	}
	services = activeServices(services)

	// Clearing a missing key is harmless, so the reply stays consistent
	// whether or not a conversation was live.
	if IsStartOver(msg.Body) {
		if err := e.States.Clear(ctx, msg.From); err != nil {
			logger.Error("sms: state clear failed", zap.String("phone", msg.From), zap.Error(err))
		}
		return e.deliver(ctx, msg, e.Formatter.StartOver(), models.IntentGeneral, 0.5)
	}

	res := ClassifyIntent(msg.Body, state, serviceNames(services))

	var reply string
	switch res.Intent {
	case models.IntentBooking:
		if state == nil {
			state = models.NewConversationState(msg.From)
		}
		var done bool
		reply, done = e.advanceBooking(ctx, state, msg.Body, res.Extracted, services)
		state.LastIntent = string(res.Intent)
		state.MessageCount++
		if done {
			e.statsMu.Lock()
			e.completed++
			e.statsMu.Unlock()
			if err := e.States.Clear(ctx, msg.From); err != nil {
				logger.Error("sms: state clear failed", zap.String("phone", msg.From), zap.Error(err))
			}
		} else if err := e.States.Set(ctx, msg.From, state); err != nil {
			logger.Error("sms: state save failed", zap.String("phone", msg.From), zap.Error(err))
			return models.Outcome{Success: false, ResponseSent: false, Error: "conversation state unavailable"}
		}

	case models.IntentReschedule:
		reply = e.Formatter.RescheduleReferral()
		e.touch(ctx, msg.From, state, res.Intent)
	case models.IntentCancel:
		reply = e.Formatter.CancelReferral()
		e.touch(ctx, msg.From, state, res.Intent)
	case models.IntentBusinessQuestion:
		settings, err := e.Knowledge.GetBusinessSettings(ctx)
		if err != nil {
			logger.Warn("sms: business settings lookup failed", zap.Error(err))
		}
		entries, err := e.Knowledge.GetBusinessKnowledge(ctx)
		if err != nil {
			logger.Warn("sms: business knowledge lookup failed", zap.Error(err))
		}
		reply = e.Formatter.BusinessAnswer(msg.Body, services, settings, entries)
		e.touch(ctx, msg.From, state, res.Intent)
	case models.IntentGreeting:
		reply = e.Formatter.Greeting()
		e.touch(ctx, msg.From, state, res.Intent)
	default:
		reply = e.Formatter.GeneralFallback()
		e.touch(ctx, msg.From, state, res.Intent)
	}

	return e.deliver(ctx, msg, reply, res.Intent, res.Confidence)
}

// touch bumps the message counter on an existing conversation without moving
// its step. A number with no live state stays stateless for side intents.
func (e *DefaultEngine) touch(ctx context.Context, phone string, state *models.ConversationState, intent models.Intent) {
	if state == nil {
		return
	}
	state.MessageCount++
	state.LastIntent = string(intent)
	if err := e.States.Set(ctx, phone, state); err != nil {
		utils.GetLogger().Error("sms: state save failed", zap.String("phone", phone), zap.Error(err))
	}
}

func (e *DefaultEngine) deliver(ctx context.Context, msg models.IncomingMessage, reply string, intent models.Intent, confidence float64) models.Outcome {
	logger := utils.GetLogger()
	reply = Truncate(reply, e.settings.MaxResponseLength())

	if err := e.Messenger.SendReply(ctx, msg.From, reply); err != nil {
		logger.Error("sms: send failed", zap.String("phone", msg.From), zap.Error(err))
		return models.Outcome{
			Success:    false,
			Response:   reply,
			Intent:     intent,
			Confidence: confidence,
			Error:      "failed to send reply",
		}
	}

	if e.RespondLog != nil {
		entry := models.RespondLogEntry{
			ID:         uuid.NewString(),
			Phone:      msg.From,
			Inbound:    msg.Body,
			Response:   reply,
			Intent:     string(intent),
			Confidence: confidence,
			CreatedAt:  time.Now(),
		}
		if err := e.RespondLog.Append(ctx, entry); err != nil {
			logger.Warn("sms: respond log append failed", zap.String("phone", msg.From), zap.Error(err))
		}
	}

	return models.Outcome{
		Success:      true,
		ResponseSent: true,
		Response:     reply,
		Intent:       intent,
		Confidence:   confidence,
	}
}

func activeServices(services []models.Service) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

func serviceNames(services []models.Service) []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

