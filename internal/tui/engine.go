package tui

import (
	"context"

	"github.com/hotgigs/careerassist/internal/client"
	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
)

// State is the conversation snapshot the interface renders from.
type State struct {
	SessionID   string
	Messages    []chat.Message
	Suggestions []string
}

// Turn is a completed user/assistant exchange.
type Turn struct {
	User        chat.Message
	Reply       chat.Message
	Suggestions []string
}

// Engine drives a chat session, either against the embedded assistant or a
// remote API server.
type Engine interface {
	Start(ctx context.Context, p profile.Profile) (State, error)
	Send(ctx context.Context, sessionID, content string) (Turn, error)
}

// LocalEngine runs the assistant in-process.
type LocalEngine struct {
	svc *chatService.Service
}

// NewLocalEngine wraps an in-process chat service.
func NewLocalEngine(svc *chatService.Service) *LocalEngine {
	return &LocalEngine{svc: svc}
}

// Start creates a session and returns its seeded transcript.
func (e *LocalEngine) Start(ctx context.Context, p profile.Profile) (State, error) {
	session, err := e.svc.CreateSession(ctx, p)
	if err != nil {
		return State{}, err
	}
	conv, err := e.svc.GetConversation(ctx, session.ID)
	if err != nil {
		return State{}, err
	}
	return State{
		SessionID:   session.ID,
		Messages:    conv.Transcript(),
		Suggestions: conv.Suggestions(),
	}, nil
}

// Send submits a message and blocks through the think delay until the reply
// is ready.
func (e *LocalEngine) Send(ctx context.Context, sessionID, content string) (Turn, error) {
	turn, err := e.svc.Submit(ctx, sessionID, content)
	if err != nil {
		return Turn{}, err
	}
	return Turn{
		User:        turn.User,
		Reply:       turn.Assistant,
		Suggestions: turn.Assistant.Suggestions,
	}, nil
}

// RemoteEngine drives a session on a careerassist API server.
type RemoteEngine struct {
	client *client.Client
}

// NewRemoteEngine wraps an API client.
func NewRemoteEngine(c *client.Client) *RemoteEngine {
	return &RemoteEngine{client: c}
}

// Start creates a remote session and returns its seeded transcript.
func (e *RemoteEngine) Start(ctx context.Context, p profile.Profile) (State, error) {
	state, err := e.client.CreateSession(ctx, p)
	if err != nil {
		return State{}, err
	}
	return State{
		SessionID:   state.Session.ID,
		Messages:    state.Messages,
		Suggestions: state.Suggestions,
	}, nil
}

// Send submits a message and blocks until the server responds with the turn.
func (e *RemoteEngine) Send(ctx context.Context, sessionID, content string) (Turn, error) {
	turn, err := e.client.SendMessage(ctx, sessionID, content)
	if err != nil {
		return Turn{}, err
	}
	return Turn{
		User:        turn.User,
		Reply:       turn.Reply,
		Suggestions: turn.Suggestions,
	}, nil
}
