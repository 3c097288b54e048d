package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/metrics"
	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultThinkDelay paces the assistant so replies land after a short,
// human-feeling pause.
const DefaultThinkDelay = 1200 * time.Millisecond

// Service owns every live conversation. State lives in memory only and
// is dropped when the process exits.
type Service struct {
	mu            sync.RWMutex
	advisor       *advisor.Advisor
	conversations map[string]*Conversation
	thinkDelay    time.Duration
	metrics       *metrics.Collector
}

// Option configures a Service.
type Option func(*Service)

// WithThinkDelay overrides the pause before each reply. Values below
// zero disable the pause.
func WithThinkDelay(d time.Duration) Option {
	return func(s *Service) {
		if d < 0 {
			d = 0
		}
		s.thinkDelay = d
	}
}

// WithMetrics wires per-turn timings into the collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) {
		s.metrics = c
	}
}

// NewService bootstraps the in-memory conversation service.
func NewService(adv *advisor.Advisor, opts ...Option) *Service {
	s := &Service{
		advisor:       adv,
		conversations: make(map[string]*Conversation),
		thinkDelay:    DefaultThinkDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession provisions a session for the given profile. The new
// transcript already holds the assistant's welcome message.
func (s *Service) CreateSession(_ context.Context, p profile.Profile) (chat.Session, error) {
	if err := p.Validate(); err != nil {
		return chat.Session{}, err
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		Profile:   p,
		CreatedAt: time.Now().UTC(),
	}
	conv := newConversation(session, s.advisor, s.thinkDelay, s.metrics)

	s.mu.Lock()
	s.conversations[session.ID] = conv
	s.mu.Unlock()

	return session, nil
}

// GetConversation retrieves the live conversation for a session.
func (s *Service) GetConversation(_ context.Context, sessionID string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// GetSession retrieves a session descriptor by identifier.
func (s *Service) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	return conv.Session(), nil
}

// LoadTranscript returns the stored messages for the provided session.
func (s *Service) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Transcript(), nil
}

// Suggestions returns the follow-ups currently offered in a session.
func (s *Service) Suggestions(ctx context.Context, sessionID string) ([]string, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.Suggestions(), nil
}

// Submit runs a full turn in the given session.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (Turn, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return Turn{}, err
	}
	return conv.Submit(ctx, text)
}

// SessionCount reports how many conversations are live.
func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
