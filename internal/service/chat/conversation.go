package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/metrics"
	"github.com/hotgigs/careerassist/internal/model/chat"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is already pending")
)

// Turn is the outcome of one completed exchange: the recorded user
// message and the assistant's reply.
type Turn struct {
	User      chat.Message `json:"user"`
	Assistant chat.Message `json:"assistant"`
}

// Conversation holds one session's transcript and drives it through the
// user-turn/assistant-turn cycle. A single reply may be in flight at a
// time; submitting while one is pending fails with ErrReplyPending.
type Conversation struct {
	mu          sync.RWMutex
	session     chat.Session
	advisor     *advisor.Advisor
	metrics     *metrics.Collector
	delay       time.Duration
	seq         int64
	messages    []chat.Message
	suggestions []string
	pending     bool
	pendingText string
}

func newConversation(session chat.Session, adv *advisor.Advisor, delay time.Duration, collector *metrics.Collector) *Conversation {
	c := &Conversation{
		session:  session,
		advisor:  adv,
		metrics:  collector,
		delay:    delay,
		messages: make([]chat.Message, 0, 16),
	}
	welcome := adv.Welcome(session.Profile)
	c.appendLocked(chat.AuthorAssistant, welcome.Text, welcome.Suggestions)
	c.suggestions = append([]string(nil), welcome.Suggestions...)
	return c
}

// appendLocked stamps and stores the next message. Callers hold the
// write lock, except during construction.
func (c *Conversation) appendLocked(author chat.Author, content string, suggestions []string) chat.Message {
	c.seq++
	msg := chat.Message{
		Seq:         c.seq,
		Author:      author,
		Content:     content,
		Suggestions: append([]string(nil), suggestions...),
		CreatedAt:   time.Now().UTC(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Accept records the user's message, clears the current suggestions and
// marks a reply pending. Every successful Accept must be followed by
// Reply.
func (c *Conversation) Accept(text string) (chat.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		return chat.Message{}, ErrReplyPending
	}
	c.pending = true
	c.pendingText = trimmed
	c.suggestions = nil
	return c.appendLocked(chat.AuthorUser, trimmed, nil), nil
}

// Reply blocks through the think delay, resolves the canned response for
// the pending user message and appends it to the transcript. Calling it
// with no turn pending is a no-op.
func (c *Conversation) Reply() chat.Message {
	c.mu.RLock()
	pending := c.pending
	text := c.pendingText
	role := c.session.Profile.Role
	c.mu.RUnlock()

	if !pending {
		return chat.Message{}
	}

	start := time.Now()
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	resolved := c.advisor.Resolve(text, role)

	c.mu.Lock()
	defer c.mu.Unlock()

	msg := c.appendLocked(chat.AuthorAssistant, resolved.Text, resolved.Suggestions)
	c.suggestions = append([]string(nil), resolved.Suggestions...)
	c.pending = false
	c.pendingText = ""
	if c.metrics != nil {
		c.metrics.RecordTurn(time.Since(start))
	}
	return msg
}

// Submit runs a full turn. It blocks until the assistant's reply is in
// the transcript, which takes at least the configured think delay.
func (c *Conversation) Submit(_ context.Context, text string) (Turn, error) {
	user, err := c.Accept(text)
	if err != nil {
		return Turn{}, err
	}
	return Turn{User: user, Assistant: c.Reply()}, nil
}

// Session returns the session descriptor the conversation was started
// with.
func (c *Conversation) Session() chat.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Transcript returns a copy of all messages in order.
func (c *Conversation) Transcript() []chat.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	copied := make([]chat.Message, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Suggestions returns the follow-ups currently offered to the user.
// Empty while a reply is pending.
func (c *Conversation) Suggestions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.suggestions...)
}

// Typing reports whether the assistant is composing a reply.
func (c *Conversation) Typing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pending
}
