package roundhttp

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
)

// HandleSubmitRound handles POST /rounds with a JSON RoundSubmission. The
// club always comes from the token; the player defaults to the caller.
func (h *Handlers) HandleSubmitRound(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	var sub rounddomain.RoundSubmission
	if err := json.NewDecoder(io.LimitReader(r.Body, maxSubmissionBytes)).Decode(&sub); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	playerID, err := scopePlayer(claims, sub.PlayerID)
	if err != nil {
		h.writeError(w, r, http.StatusForbidden, err.Error())
		return
	}
	sub.ClubID = claims.ClubID
	sub.PlayerID = playerID

	result, err := h.service.SubmitRound(r.Context(), sub)
	h.respondRound(w, r, result, err)
}

// HandleImportScorecard handles POST /rounds/import: a multipart upload with
// the scorecard in the "scorecard" field and the round details as form
// values.
func (h *Handlers) HandleImportScorecard(w http.ResponseWriter, r *http.Request) {
	claims, ok := authdomain.ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxScorecardBytes)
	if err := r.ParseMultipartForm(maxScorecardBytes); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("scorecard")
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "missing scorecard file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "failed to read scorecard")
		return
	}

	playerID, err := scopePlayer(claims, r.FormValue("player_id"))
	if err != nil {
		h.writeError(w, r, http.StatusForbidden, err.Error())
		return
	}

	result, err := h.service.ImportScorecard(r.Context(), roundservice.ImportRequest{
		ClubID:     claims.ClubID,
		PlayerID:   playerID,
		CourseID:   r.FormValue("course_id"),
		CourseName: r.FormValue("course_name"),
		PlayedOn:   r.FormValue("played_on"),
		Tee:        r.FormValue("tee"),
		Filename:   header.Filename,
		Data:       data,
	})
	h.respondRound(w, r, result, err)
}

func scopePlayer(claims *authdomain.Claims, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = claims.PlayerID
	}
	if !claims.Role.CanRecordFor(claims.PlayerID, requested) {
		return "", errForbidden
	}
	return requested, nil
}

func (h *Handlers) respondRound(w http.ResponseWriter, r *http.Request, result results.OperationResult[rounddomain.Round, error], err error) {
	ctx := r.Context()
	if err != nil {
		h.logger.ErrorContext(ctx, "Round submission failed", attr.Error(err))
		h.writeError(w, r, http.StatusInternalServerError, "failed to record round")
		return
	}
	if result.Failure != nil {
		h.writeError(w, r, http.StatusUnprocessableEntity, (*result.Failure).Error())
		return
	}
	if result.Success == nil {
		h.writeError(w, r, http.StatusInternalServerError, "failed to record round")
		return
	}

	round := *result.Success
	h.announce(r, round)
	h.writeJSON(w, r, http.StatusCreated, round)
}

// announce publishes RoundSavedV1. The round is already stored, so a publish
// failure is logged and not reported to the caller.
func (h *Handlers) announce(r *http.Request, round rounddomain.Round) {
	if h.publisher == nil {
		return
	}
	ctx := r.Context()
	msg, err := handlerwrapper.NewMessage(roundevents.RoundSavedV1, roundevents.SavedPayload(round), attr.CorrelationID(ctx))
	if err == nil {
		err = h.publisher.Publish(roundevents.RoundSavedV1, msg)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to publish saved round",
			attr.RoundID("round_id", round.ID),
			attr.Error(err),
		)
	}
}

