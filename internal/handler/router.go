package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/handler/chat"
	"github.com/hotgigs/careerassist/internal/handler/roles"
	"github.com/hotgigs/careerassist/internal/handler/stats"
	"github.com/hotgigs/careerassist/internal/handler/stream"
	"github.com/hotgigs/careerassist/internal/handler/ws"
	"github.com/hotgigs/careerassist/internal/metrics"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
	"github.com/hotgigs/careerassist/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(adv *advisor.Advisor, chatSvc *chatService.Service, collector *metrics.Collector, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	rolesHandler := roles.New(adv)
	chatHandler := chat.New(chatSvc)
	streamHandler := stream.New(chatSvc)
	wsHandler := ws.New(chatSvc)
	statsHandler := stats.New(collector, chatSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", handleHealth)

		rolesHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)
		statsHandler.RegisterRoutes(api)

		api.Get("/assistant/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			message := r.URL.Query().Get("message")

			if message == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, message); err != nil {
				respondStreamError(w, err)
			}
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondStreamError reports turn setup failures. The stream handler
// only returns errors before the first event is written.
func respondStreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrReplyPending):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("stream request failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
	}
}
