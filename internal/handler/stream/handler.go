// Package stream serves assistant turns over Server-Sent Events so the
// web client can show the user message, the typing indicator and the
// reply as they happen.
package stream

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	chatService "github.com/hotgigs/careerassist/internal/service/chat"
	"github.com/hotgigs/careerassist/pkg/utils"
)

// Handler streams one assistant turn per request.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates a stream handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// streamEnvelope is the payload of the start, typing and end events.
type streamEnvelope struct {
	SessionID string `json:"sessionId"`
	Typing    bool   `json:"typing,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
}

// HandleStreamRequest runs a full turn and emits it as an event
// sequence: start, the recorded user message, typing, the reply, end.
// Errors returned before any event is written are the caller's to
// report; once the stream is open the turn cannot fail.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return errors.New("streaming unsupported")
	}

	conv, err := h.chatSvc.GetConversation(ctx, sessionID)
	if err != nil {
		return err
	}

	user, err := conv.Accept(userMessage)
	if err != nil {
		return err
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "start", streamEnvelope{SessionID: sessionID})
	utils.SendSSEEvent(w, flusher, "message", user)
	utils.SendSSEEvent(w, flusher, "typing", streamEnvelope{SessionID: sessionID, Typing: true})

	reply := conv.Reply()
	utils.SendSSEEvent(w, flusher, "message", reply)
	utils.SendSSEEvent(w, flusher, "end", streamEnvelope{SessionID: sessionID, Finished: true})

	slog.Debug("stream completed", "session", sessionID, "replySeq", reply.Seq)
	return nil
}
