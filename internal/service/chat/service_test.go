package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
)

func newTestService(delay time.Duration) *chatService.Service {
	adv := advisor.New(advisor.WithSeed(1))
	return chatService.NewService(adv, chatService.WithThinkDelay(delay))
}

func seekerProfile() profile.Profile {
	return profile.Profile{DisplayName: "Ada", Role: profile.RoleJobSeeker}
}

func TestCreateSessionSeedsWelcome(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, seekerProfile())
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	if session.ID == "" {
		t.Fatal("session has no ID")
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.Profile.DisplayName != "Ada" || got.Profile.Role != profile.RoleJobSeeker {
		t.Fatalf("unexpected profile: %+v", got.Profile)
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("fresh transcript holds %d messages, want 1", len(transcript))
	}
	welcome := transcript[0]
	if welcome.Author != chat.AuthorAssistant {
		t.Fatalf("welcome author = %s", welcome.Author)
	}
	if welcome.Seq != 1 {
		t.Fatalf("welcome seq = %d, want 1", welcome.Seq)
	}
	if !strings.Contains(welcome.Content, "Ada") {
		t.Fatalf("welcome does not greet the user: %q", welcome.Content)
	}
	if len(welcome.Suggestions) != 4 {
		t.Fatalf("welcome carries %d starters, want 4", len(welcome.Suggestions))
	}

	suggestions, err := svc.Suggestions(ctx, session.ID)
	if err != nil {
		t.Fatalf("Suggestions err: %v", err)
	}
	if len(suggestions) != 4 {
		t.Fatalf("session offers %d suggestions, want 4", len(suggestions))
	}
}

func TestCreateSessionRejectsInvalidProfile(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, profile.Profile{Role: profile.RoleJobSeeker})
	if !errors.Is(err, profile.ErrDisplayNameRequired) {
		t.Fatalf("expected ErrDisplayNameRequired, got %v", err)
	}

	_, err = svc.CreateSession(ctx, profile.Profile{DisplayName: "Ada", Role: "admin"})
	if !errors.Is(err, profile.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, chatService.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Submit(ctx, "missing", "hello"); !errors.Is(err, chatService.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound from Submit, got %v", err)
	}
}

func TestSubmitRecordsFullTurn(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, seekerProfile())
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	turn, err := svc.Submit(ctx, session.ID, "  help with my resume  ")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if turn.User.Content != "help with my resume" {
		t.Fatalf("user content not trimmed: %q", turn.User.Content)
	}
	if turn.User.Author != chat.AuthorUser || turn.Assistant.Author != chat.AuthorAssistant {
		t.Fatalf("unexpected turn authors: %s, %s", turn.User.Author, turn.Assistant.Author)
	}
	if turn.User.Seq != 2 || turn.Assistant.Seq != 3 {
		t.Fatalf("turn seqs = %d, %d, want 2, 3", turn.User.Seq, turn.Assistant.Seq)
	}
	if len(turn.Assistant.Suggestions) != 4 {
		t.Fatalf("reply carries %d suggestions, want 4", len(turn.Assistant.Suggestions))
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("transcript holds %d messages, want 3", len(transcript))
	}
	if transcript[2].Content != turn.Assistant.Content {
		t.Fatal("transcript tail does not match the reply")
	}

	suggestions, _ := svc.Suggestions(ctx, session.ID)
	if len(suggestions) != 4 || suggestions[0] != turn.Assistant.Suggestions[0] {
		t.Fatalf("session suggestions not replaced by the reply's: %v", suggestions)
	}
}

func TestSubmitRejectsEmptyMessage(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, seekerProfile())

	if _, err := svc.Submit(ctx, session.ID, "   "); !errors.Is(err, chatService.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 1 {
		t.Fatalf("rejected message reached the transcript: %d messages", len(transcript))
	}
}

func TestSubmitRejectsWhileReplyPending(t *testing.T) {
	svc := newTestService(100 * time.Millisecond)
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, seekerProfile())

	conv, err := svc.GetConversation(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetConversation err: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, session.ID, "find me a job")
		done <- err
	}()

	waitTyping(t, conv, true)

	if _, err := svc.Submit(ctx, session.ID, "one more thing"); !errors.Is(err, chatService.ErrReplyPending) {
		t.Fatalf("expected ErrReplyPending, got %v", err)
	}

	if err := <-done; err != nil {
		t.Fatalf("first Submit err: %v", err)
	}
	waitTyping(t, conv, false)

	if _, err := svc.Submit(ctx, session.ID, "one more thing"); err != nil {
		t.Fatalf("Submit after reply err: %v", err)
	}
}

func TestSuggestionsClearedWhileTyping(t *testing.T) {
	svc := newTestService(100 * time.Millisecond)
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, seekerProfile())
	conv, _ := svc.GetConversation(ctx, session.ID)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, session.ID, "interview prep")
		done <- err
	}()

	waitTyping(t, conv, true)
	if got := conv.Suggestions(); len(got) != 0 {
		t.Fatalf("suggestions visible while typing: %v", got)
	}

	if err := <-done; err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got := conv.Suggestions(); len(got) != 4 {
		t.Fatalf("suggestions after reply = %d, want 4", len(got))
	}
}

func TestSequenceNumbersIncrease(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, seekerProfile())

	for _, text := range []string{"resume", "find a job", "thanks"} {
		if _, err := svc.Submit(ctx, session.ID, text); err != nil {
			t.Fatalf("Submit(%q) err: %v", text, err)
		}
	}

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 7 {
		t.Fatalf("transcript holds %d messages, want 7", len(transcript))
	}
	for i := 1; i < len(transcript); i++ {
		if transcript[i].Seq <= transcript[i-1].Seq {
			t.Fatalf("seq not increasing at %d: %d then %d", i, transcript[i-1].Seq, transcript[i].Seq)
		}
	}
}

func TestLoadTranscriptReturnsCopy(t *testing.T) {
	svc := newTestService(0)
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx, seekerProfile())

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	transcript[0].Content = "tampered"

	fresh, _ := svc.LoadTranscript(ctx, session.ID)
	if fresh[0].Content == "tampered" {
		t.Fatal("LoadTranscript exposed internal state")
	}
}

func waitTyping(t *testing.T, conv *chatService.Conversation, want bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if conv.Typing() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("typing state never became %v", want)
}
