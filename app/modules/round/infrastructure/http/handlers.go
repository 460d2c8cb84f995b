// Package roundhttp exposes round submission and retrieval over HTTP.
package roundhttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/go-chi/chi/v5"
)

const (
	maxSubmissionBytes = 1 << 20
	maxScorecardBytes  = 5 << 20
	defaultListLimit   = 20
	maxListLimit       = 200
)

var errForbidden = errors.New("not allowed to record rounds for this player")

// Handlers serves the round endpoints. Rounds stored over HTTP are announced
// on the event bus the same way as rounds recorded from events.
type Handlers struct {
	service   roundservice.Service
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func NewHandlers(service roundservice.Service, publisher eventbus.EventBus, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, publisher: publisher, logger: logger}
}

// Routes mounts the round endpoints on r. r must already verify bearer
// tokens.
func (h *Handlers) Routes(r chi.Router) {
	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", h.HandleSubmitRound)
		r.Post("/import", h.HandleImportScorecard)
		r.Get("/", h.HandleListRounds)
		r.Get("/{roundID}", h.HandleGetRound)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", attr.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}
