package roles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/pkg/utils"
)

// Handler serves the role catalog used by onboarding surfaces.
type Handler struct {
	advisor *advisor.Advisor
}

// New creates a roles handler.
func New(adv *advisor.Advisor) *Handler {
	return &Handler{advisor: adv}
}

// RegisterRoutes registers the role catalog route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/roles", h.handleListRoles)
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.advisor.Catalog())
}
