// File: services/sms/state.go
package sms

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"glospa/models"

	"github.com/go-redis/redis/v8"
)

const statePrefix = "sms:conv:"

// StateStore persists per-phone-number conversation state. Get returns nil
// (not an error) when no live state exists for the number; expired state is
// treated as absent.
type StateStore interface {
	Get(ctx context.Context, phone string) (*models.ConversationState, error)
	Set(ctx context.Context, phone string, state *models.ConversationState) error
	Clear(ctx context.Context, phone string) error
	ActiveCount(ctx context.Context) int
}

// MemoryStateStore keeps conversation state in a mutex-guarded map. Suitable
// for single-instance deployments and tests.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]*models.ConversationState
	ttl    time.Duration

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewMemoryStateStore builds an in-memory store with the given idle TTL.
func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[string]*models.ConversationState),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryStateStore) Get(ctx context.Context, phone string) (*models.ConversationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[phone]
	if !ok {
		return nil, nil
	}
	if st.Expired(s.ttl, s.now()) {
		delete(s.states, phone)
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (s *MemoryStateStore) Set(ctx context.Context, phone string, state *models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *state
	cp.LastUpdated = s.now()
	s.states[phone] = &cp
	return nil
}

func (s *MemoryStateStore) Clear(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, phone)
	return nil
}

func (s *MemoryStateStore) ActiveCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for phone, st := range s.states {
		if st.Expired(s.ttl, s.now()) {
			delete(s.states, phone)
			continue
		}
		n++
	}
	return n
}

// RedisStateStore keeps conversation state in Redis with the idle TTL as key
// expiry, for multi-instance deployments.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore builds a Redis-backed store with the given idle TTL.
func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

func (s *RedisStateStore) Get(ctx context.Context, phone string) (*models.ConversationState, error) {
	data, err := s.client.Get(ctx, statePrefix+phone).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st models.ConversationState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *RedisStateStore) Set(ctx context.Context, phone string, state *models.ConversationState) error {
	state.LastUpdated = time.Now()
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statePrefix+phone, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, phone string) error {
	return s.client.Del(ctx, statePrefix+phone).Err()
}

func (s *RedisStateStore) ActiveCount(ctx context.Context) int {
	keys, err := s.client.Keys(ctx, statePrefix+"*").Result()
	if err != nil {
		return 0
	}
	return len(keys)
}
