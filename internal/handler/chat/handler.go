package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
	"github.com/hotgigs/careerassist/pkg/utils"
)

// Handler exposes assistant sessions over HTTP.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers the session and message routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assistant/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Get("/{sessionID}", h.handleGetSession)
		r.Get("/{sessionID}/transcript", h.handleGetTranscript)
		r.Post("/{sessionID}/messages", h.handlePostMessage)
		r.Get("/{sessionID}/suggestions", h.handleGetSuggestions)
	})
}

// sessionEnvelope is the create-session response: the session plus its
// seeded transcript.
type sessionEnvelope struct {
	Session     chat.Session   `json:"session"`
	Messages    []chat.Message `json:"messages"`
	Suggestions []string       `json:"suggestions"`
}

type transcriptEnvelope struct {
	Messages    []chat.Message `json:"messages"`
	Suggestions []string       `json:"suggestions"`
	Typing      bool           `json:"typing"`
}

type turnEnvelope struct {
	User        chat.Message `json:"user"`
	Reply       chat.Message `json:"reply"`
	Suggestions []string     `json:"suggestions"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DisplayName string `json:"displayName"`
		Role        string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := profile.ParseRole(payload.Role)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.chatSvc.CreateSession(r.Context(), profile.Profile{
		DisplayName: payload.DisplayName,
		Role:        role,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	conv, err := h.chatSvc.GetConversation(r.Context(), session.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sessionEnvelope{
		Session:     session,
		Messages:    conv.Transcript(),
		Suggestions: conv.Suggestions(),
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	conv, err := h.chatSvc.GetConversation(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, transcriptEnvelope{
		Messages:    conv.Transcript(),
		Suggestions: conv.Suggestions(),
		Typing:      conv.Typing(),
	})
}

func (h *Handler) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.chatSvc.Submit(r.Context(), chi.URLParam(r, "sessionID"), payload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, turnEnvelope{
		User:        turn.User,
		Reply:       turn.Assistant,
		Suggestions: turn.Assistant.Suggestions,
	})
}

func (h *Handler) handleGetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.chatSvc.Suggestions(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrReplyPending):
		utils.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage),
		errors.Is(err, profile.ErrDisplayNameRequired),
		errors.Is(err, profile.ErrUnknownRole):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
