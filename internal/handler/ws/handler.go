// Package ws serves assistant sessions over a WebSocket. Frames in both
// directions share one envelope: {type, sessionId, data, timestamp}.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatService "github.com/hotgigs/careerassist/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
)

// Handler upgrades session connections and relays turns as frames.
type Handler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// New creates a WebSocket handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the WebSocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/assistant/ws/{sessionID}", h.handleWebSocket)
}

type inboundFrame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

type outboundFrame struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type messagePayload struct {
	Content string `json:"content"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	conv, err := h.chatSvc.GetConversation(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "session", sessionID, "error", err)
		return
	}
	defer raw.Close()

	slog.Info("websocket connected", "session", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	raw.SetReadDeadline(time.Now().Add(readTimeout))
	raw.SetPongHandler(func(string) error {
		raw.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	conn := &wsConn{conn: raw}
	go pingLoop(ctx, conn)

	conn.send("connected", sessionID, map[string]interface{}{
		"session":     conv.Session(),
		"suggestions": conv.Suggestions(),
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var frame inboundFrame
			if err := raw.ReadJSON(&frame); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					slog.Error("websocket read failed", "session", sessionID, "error", err)
				}
				return
			}

			raw.SetReadDeadline(time.Now().Add(readTimeout))

			if frame.SessionID != "" && frame.SessionID != sessionID {
				conn.sendError("session mismatch")
				continue
			}

			h.handleFrame(conn, conv, &frame)
		}
	}
}

func (h *Handler) handleFrame(conn *wsConn, conv *chatService.Conversation, frame *inboundFrame) {
	switch frame.Type {
	case "message":
		h.handleChatFrame(conn, conv, frame.Data)
	default:
		conn.sendError("unsupported frame type: " + frame.Type)
	}
}

// handleChatFrame runs one turn. The read loop stays blocked until the
// reply frame is out, so turns on a connection never interleave.
func (h *Handler) handleChatFrame(conn *wsConn, conv *chatService.Conversation, raw json.RawMessage) {
	var payload messagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		conn.sendError("invalid message payload")
		return
	}

	sessionID := conv.Session().ID
	user, err := conv.Accept(payload.Content)
	if err != nil {
		conn.sendError(err.Error())
		return
	}

	conn.send("message", sessionID, user)
	conn.send("typing", sessionID, map[string]bool{"typing": true})

	reply := conv.Reply()

	conn.send("message", sessionID, reply)
	conn.send("typing", sessionID, map[string]bool{"typing": false})
}

// wsConn serializes writes; the ping loop and the turn frames share the
// connection.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(frameType, sessionID string, data interface{}) {
	frame := outboundFrame{
		Type:      frameType,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(frame); err != nil {
		slog.Error("websocket write failed", "type", frameType, "error", err)
	}
}

func (c *wsConn) sendError(message string) {
	frame := outboundFrame{
		Type:      "error",
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().Unix(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(frame); err != nil {
		slog.Error("websocket write failed", "type", "error", "error", err)
	}
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func pingLoop(ctx context.Context, conn *wsConn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}
