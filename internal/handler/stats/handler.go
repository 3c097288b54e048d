package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotgigs/careerassist/internal/metrics"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
	"github.com/hotgigs/careerassist/pkg/utils"
)

// Handler exposes runtime statistics.
type Handler struct {
	collector *metrics.Collector
	chatSvc   *chatService.Service
}

// New creates a stats handler.
func New(collector *metrics.Collector, chatSvc *chatService.Service) *Handler {
	return &Handler{collector: collector, chatSvc: chatSvc}
}

// RegisterRoutes registers the stats route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.handleGetStats)
}

type statsResponse struct {
	metrics.Snapshot
	ActiveSessions int `json:"activeSessions"`
}

func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, statsResponse{
		Snapshot:       h.collector.Snapshot(),
		ActiveSessions: h.chatSvc.SessionCount(),
	})
}
