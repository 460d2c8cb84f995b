package statshttp

import (
	"fmt"
	"net/http"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	"github.com/go-chi/chi/v5"
)

// HandleRadarChart handles GET /stats/members/{playerID}/radar.png?axes=.
func (h *Handlers) HandleRadarChart(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	axes := parseAxes(r.URL.Query().Get("axes"))
	png, err := h.service.RadarChart(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"), axes)
	h.respondFile(w, r, "RadarChart", contentTypePNG, png, err)
}

// HandleDistanceChart handles GET /stats/members/{playerID}/distance.png?kind=.
// The kind defaults to putting.
func (h *Handlers) HandleDistanceChart(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	kind := statsservice.DistanceKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = statsservice.DistancePutting
	}
	png, err := h.service.DistanceChart(r.Context(), claims.ClubID, chi.URLParam(r, "playerID"), kind)
	h.respondFile(w, r, "DistanceChart", contentTypePNG, png, err)
}

// HandleExport handles GET /stats/export.xlsx.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	data, err := h.service.ExportWorkbook(r.Context(), claims.ClubID)
	if err == nil {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", claims.ClubID+"-stats.xlsx"))
	}
	h.respondFile(w, r, "ExportWorkbook", contentTypeXLSX, data, err)
}
