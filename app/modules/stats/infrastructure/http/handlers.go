// Package statshttp serves the read side of the stats module over HTTP.
package statshttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	"github.com/go-chi/chi/v5"
)

const (
	contentTypePNG  = "image/png"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handlers serves the stats endpoints. Every query is scoped to the club of
// the caller's token.
type Handlers struct {
	service statsservice.Service
	logger  *slog.Logger
}

func NewHandlers(service statsservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the stats endpoints on r. r must already verify bearer
// tokens.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/metrics", h.HandleMetrics)
	r.Route("/stats", func(r chi.Router) {
		r.Get("/members", h.HandleMemberStats)
		r.Route("/members/{playerID}", func(r chi.Router) {
			r.Get("/", h.HandlePlayerStats)
			r.Get("/compare/{metric}", h.HandleCompare)
			r.Get("/radar", h.HandleRadar)
			r.Get("/radar.png", h.HandleRadarChart)
			r.Get("/distance", h.HandleDistance)
			r.Get("/distance.png", h.HandleDistanceChart)
		})
		r.Get("/rankings/{metric}", h.HandleRankings)
		r.Get("/courses/{course}", h.HandleCourseStats)
		r.Get("/export.xlsx", h.HandleExport)
	})
}

// parseAxes reads the axes query parameter: empty for the default five,
// "extended" for the extended set, or a comma-separated list of metric keys.
func parseAxes(raw string) []string {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return nil
	case "extended":
		return statsdomain.ExtendedAxes
	}
	var axes []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			axes = append(axes, key)
		}
	}
	return axes
}

// statusFor maps a rejected query onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, statsdomain.ErrPlayerNotFound), errors.Is(err, statsdomain.ErrNoValue):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// respond writes a service result: the success payload, the failure as a
// client error, or a 500 for infrastructure errors.
func respond[S any](h *Handlers, w http.ResponseWriter, r *http.Request, op string, res results.OperationResult[S, error], err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Stats query failed",
			attr.String("operation", op),
			attr.Error(err),
		)
		h.writeError(w, r, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	if res.Failure != nil {
		h.writeError(w, r, statusFor(*res.Failure), (*res.Failure).Error())
		return
	}
	if res.Success == nil {
		h.writeError(w, r, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	h.writeJSON(w, r, http.StatusOK, *res.Success)
}

// respondFile writes rendered bytes, or maps err the same way respond does.
func (h *Handlers) respondFile(w http.ResponseWriter, r *http.Request, op, contentType string, data []byte, err error) {
	if err != nil {
		if statsservice.IsQueryFailure(err) {
			h.writeError(w, r, statusFor(err), err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Stats render failed",
			attr.String("operation", op),
			attr.Error(err),
		)
		h.writeError(w, r, http.StatusInternalServerError, "failed to render")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write response", attr.Error(err))
	}
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
