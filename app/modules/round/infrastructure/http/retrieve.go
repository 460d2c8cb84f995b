package roundhttp

import (
	"errors"
	"net/http"
	"strconv"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleGetRound handles GET /rounds/{roundID}.
func (h *Handlers) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid round id")
		return
	}

	round, err := h.service.GetRound(r.Context(), claims.ClubID, roundID)
	if err != nil {
		if errors.Is(err, roundservice.ErrRoundNotFound) {
			h.writeError(w, r, http.StatusNotFound, "round not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to get round", attr.Error(err))
		h.writeError(w, r, http.StatusInternalServerError, "failed to get round")
		return
	}
	h.writeJSON(w, r, http.StatusOK, round)
}

// HandleListRounds handles GET /rounds?player=&limit=. The player defaults
// to the caller.
func (h *Handlers) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	playerID := r.URL.Query().Get("player")
	if playerID == "" {
		playerID = claims.PlayerID
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxListLimit)
	}

	rounds, err := h.service.ListPlayerRounds(r.Context(), claims.ClubID, playerID, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list rounds", attr.Error(err))
		h.writeError(w, r, http.StatusInternalServerError, "failed to list rounds")
		return
	}
	if rounds == nil {
		rounds = []rounddomain.Round{}
	}
	h.writeJSON(w, r, http.StatusOK, rounds)
}
