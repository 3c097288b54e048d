package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
)

func setupServer(t *testing.T) (*httptest.Server, *chatService.Service) {
	t.Helper()
	adv := advisor.New(advisor.WithSeed(1))
	chatSvc := chatService.NewService(adv, chatService.WithThinkDelay(0))
	handler := New(chatSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc
}

func newSession(t *testing.T, svc *chatService.Service) chat.Session {
	t.Helper()
	session, err := svc.CreateSession(context.Background(), profile.Profile{
		DisplayName: "Ada",
		Role:        profile.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	return session
}

func dialSession(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/assistant/ws/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

type testFrame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

func readFrame(t *testing.T, conn *websocket.Conn) testFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame testFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame err: %v", err)
	}
	return frame
}

func sendMessage(t *testing.T, conn *websocket.Conn, sessionID, content string) {
	t.Helper()
	err := conn.WriteJSON(map[string]interface{}{
		"type":      "message",
		"sessionId": sessionID,
		"data":      map[string]string{"content": content},
		"timestamp": time.Now().Unix(),
	})
	if err != nil {
		t.Fatalf("write frame err: %v", err)
	}
}

func TestWebSocketTurnRoundTrip(t *testing.T) {
	srv, svc := setupServer(t)
	session := newSession(t, svc)
	conn := dialSession(t, srv, session.ID)

	if frame := readFrame(t, conn); frame.Type != "connected" {
		t.Fatalf("first frame type = %s, want connected", frame.Type)
	}

	sendMessage(t, conn, session.ID, "help with my resume")

	userFrame := readFrame(t, conn)
	if userFrame.Type != "message" {
		t.Fatalf("frame type = %s, want message", userFrame.Type)
	}
	var userMsg chat.Message
	if err := json.Unmarshal(userFrame.Data, &userMsg); err != nil {
		t.Fatalf("decode user message: %v", err)
	}
	if userMsg.Author != chat.AuthorUser || userMsg.Content != "help with my resume" {
		t.Fatalf("unexpected user message: %+v", userMsg)
	}

	if frame := readFrame(t, conn); frame.Type != "typing" {
		t.Fatalf("frame type = %s, want typing", frame.Type)
	}

	replyFrame := readFrame(t, conn)
	if replyFrame.Type != "message" {
		t.Fatalf("frame type = %s, want message", replyFrame.Type)
	}
	var reply chat.Message
	if err := json.Unmarshal(replyFrame.Data, &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Author != chat.AuthorAssistant {
		t.Fatalf("reply author = %s", reply.Author)
	}
	if len(reply.Suggestions) != 4 {
		t.Fatalf("reply carries %d suggestions, want 4", len(reply.Suggestions))
	}

	if frame := readFrame(t, conn); frame.Type != "typing" {
		t.Fatalf("frame type = %s, want typing", frame.Type)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	srv, _ := setupServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/assistant/ws/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected handshake failure for unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
}

func TestWebSocketRejectsBadFrames(t *testing.T) {
	srv, svc := setupServer(t)
	session := newSession(t, svc)
	conn := dialSession(t, srv, session.ID)

	if frame := readFrame(t, conn); frame.Type != "connected" {
		t.Fatalf("first frame type = %s, want connected", frame.Type)
	}

	// Empty content never reaches the transcript.
	sendMessage(t, conn, session.ID, "   ")
	if frame := readFrame(t, conn); frame.Type != "error" {
		t.Fatalf("frame type = %s, want error", frame.Type)
	}

	// Frames for another session are refused.
	sendMessage(t, conn, "other-session", "hello")
	if frame := readFrame(t, conn); frame.Type != "error" {
		t.Fatalf("frame type = %s, want error", frame.Type)
	}

	// Unsupported frame types are refused.
	if err := conn.WriteJSON(map[string]interface{}{"type": "audio"}); err != nil {
		t.Fatalf("write frame err: %v", err)
	}
	if frame := readFrame(t, conn); frame.Type != "error" {
		t.Fatalf("frame type = %s, want error", frame.Type)
	}

	transcript, err := svc.LoadTranscript(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("rejected frames reached the transcript: %d messages", len(transcript))
	}
}
