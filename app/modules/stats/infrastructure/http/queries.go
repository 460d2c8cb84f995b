package statshttp

import (
	"net/http"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/go-chi/chi/v5"
)

type metricsResponse struct {
	Metrics []statsdomain.MetricDefinition `json:"metrics"`
}

// HandleMetrics handles GET /metrics.
func (h *Handlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, metricsResponse{Metrics: h.service.Metrics()})
}

// HandleMemberStats handles GET /stats/members.
func (h *Handlers) HandleMemberStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.MemberStats(r.Context(), claims.ClubID)
	if err == nil && res.Success != nil && *res.Success == nil {
		*res.Success = []statsdomain.MemberStats{}
	}
	respond(h, w, r, "MemberStats", res, err)
}

// HandlePlayerStats handles GET /stats/members/{playerID}.
func (h *Handlers) HandlePlayerStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.PlayerStats(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"))
	respond(h, w, r, "PlayerStats", res, err)
}

// HandleRankings handles GET /stats/rankings/{metric}.
func (h *Handlers) HandleRankings(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.Rankings(r.Context(), claims.ClubID, chi.URLParam(r, "metric"))
	respond(h, w, r, "Rankings", res, err)
}

// HandleCompare handles GET /stats/members/{playerID}/compare/{metric}.
func (h *Handlers) HandleCompare(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.Compare(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"), chi.URLParam(r, "metric"))
	respond(h, w, r, "Compare", res, err)
}

// HandleRadar handles GET /stats/members/{playerID}/radar?axes=.
func (h *Handlers) HandleRadar(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	axes := parseAxes(r.URL.Query().Get("axes"))
	res, err := h.service.Radar(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"), axes)
	respond(h, w, r, "Radar", res, err)
}

// HandleDistance handles GET /stats/members/{playerID}/distance.
func (h *Handlers) HandleDistance(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.Distance(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"))
	respond(h, w, r, "Distance", res, err)
}

// HandleCourseStats handles GET /stats/courses/{course}.
func (h *Handlers) HandleCourseStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	res, err := h.service.CourseStats(r.Context(), claims.ClubID, chi.URLParam(r, "course"))
	respond(h, w, r, "CourseStats", res, err)
}
