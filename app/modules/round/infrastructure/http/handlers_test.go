package roundhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

// newServer mounts the handlers behind a middleware that injects claims the
// way the bearer middleware does.
func newServer(h *Handlers, claims *authdomain.Claims) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if claims != nil {
				req = req.WithContext(authdomain.WithClaims(req.Context(), claims))
			}
			next.ServeHTTP(w, req)
		})
	})
	h.Routes(r)
	return r
}

func player(id string) *authdomain.Claims {
	return &authdomain.Claims{PlayerID: id, ClubID: "club-1", Role: authdomain.RolePlayer}
}

func storedRound(sub rounddomain.RoundSubmission) results.OperationResult[rounddomain.Round, error] {
	return results.SuccessResult[rounddomain.Round, error](rounddomain.Round{
		ID: uuid.New(), ClubID: sub.ClubID, PlayerID: sub.PlayerID, CourseName: sub.CourseName,
		Holes: []rounddomain.Hole{{Number: 1, Par: 4, Strokes: 4, Putts: 2}},
	})
}

func TestHandleSubmitRound(t *testing.T) {
	tests := []struct {
		name       string
		claims     *authdomain.Claims
		body       string
		setup      func(*FakeService)
		wantStatus int
		wantTrace  []string
	}{
		{
			name:   "records the caller's round in the token's club",
			claims: player("p1"),
			body:   `{"club_id":"other-club","course_name":"Pine Hills","holes":[]}`,
			setup: func(f *FakeService) {
				f.SubmitRoundFn = func(_ context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
					if sub.ClubID != "club-1" || sub.PlayerID != "p1" {
						return results.OperationResult[rounddomain.Round, error]{}, errors.New("unscoped submission")
					}
					return storedRound(sub), nil
				}
			},
			wantStatus: http.StatusCreated,
			wantTrace:  []string{"SubmitRound"},
		},
		{
			name:       "player cannot record for someone else",
			claims:     player("p1"),
			body:       `{"player_id":"p2","course_name":"Pine Hills"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "viewer cannot record",
			claims:     &authdomain.Claims{PlayerID: "p1", ClubID: "club-1", Role: authdomain.RoleViewer},
			body:       `{"course_name":"Pine Hills"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "editor records for someone else",
			claims: &authdomain.Claims{PlayerID: "p1", ClubID: "club-1", Role: authdomain.RoleEditor},
			body:   `{"player_id":"p2","course_name":"Pine Hills"}`,
			setup: func(f *FakeService) {
				f.SubmitRoundFn = func(_ context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
					return storedRound(sub), nil
				}
			},
			wantStatus: http.StatusCreated,
			wantTrace:  []string{"SubmitRound"},
		},
		{
			name:   "validation failure",
			claims: player("p1"),
			body:   `{"course_name":"Pine Hills","holes":[]}`,
			setup: func(f *FakeService) {
				f.SubmitRoundFn = func(context.Context, rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
					return results.FailureResult[rounddomain.Round, error](roundservice.ErrInvalidHoleCount), nil
				}
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantTrace:  []string{"SubmitRound"},
		},
		{
			name:   "storage error",
			claims: player("p1"),
			body:   `{"course_name":"Pine Hills"}`,
			setup: func(f *FakeService) {
				f.SubmitRoundFn = func(context.Context, rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
					return results.OperationResult[rounddomain.Round, error]{}, errors.New("db down")
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantTrace:  []string{"SubmitRound"},
		},
		{
			name:       "malformed body",
			claims:     player("p1"),
			body:       `{"holes":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no claims",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &FakeService{}
			if tt.setup != nil {
				tt.setup(fake)
			}
			srv := newServer(NewHandlers(fake, nil, discard), tt.claims)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantTrace, fake.Trace())
		})
	}
}

func TestHandleSubmitRoundAnnouncesSavedRound(t *testing.T) {
	bus := eventbus.NewInMemory(discard)
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	saved, err := bus.Subscribe(ctx, roundevents.RoundSavedV1)
	require.NoError(t, err)

	fake := &FakeService{
		SubmitRoundFn: func(_ context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
			return storedRound(sub), nil
		},
	}
	srv := newServer(NewHandlers(fake, bus, discard), player("p1"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds", strings.NewReader(`{"course_name":"Pine Hills"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	select {
	case msg := <-saved:
		msg.Ack()
		var payload roundevents.RoundSavedPayloadV1
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, "p1", payload.PlayerID)
		assert.Equal(t, "pine hills", payload.CourseKey)
		assert.Equal(t, 4, payload.TotalScore)
	case <-ctx.Done():
		t.Fatal("round.saved was not published")
	}
}

func TestHandleImportScorecard(t *testing.T) {
	var got roundservice.ImportRequest
	fake := &FakeService{
		ImportScorecardFn: func(_ context.Context, req roundservice.ImportRequest) (results.OperationResult[rounddomain.Round, error], error) {
			got = req
			return storedRound(rounddomain.RoundSubmission{ClubID: req.ClubID, PlayerID: req.PlayerID}), nil
		},
	}
	srv := newServer(NewHandlers(fake, nil, discard), player("p1"))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("course_name", "Pine Hills"))
	require.NoError(t, mw.WriteField("played_on", "yesterday"))
	part, err := mw.CreateFormFile("scorecard", "card.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Par,4\nScore,4\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/rounds/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "club-1", got.ClubID)
	assert.Equal(t, "p1", got.PlayerID)
	assert.Equal(t, "card.csv", got.Filename)
	assert.Equal(t, "yesterday", got.PlayedOn)
	assert.Equal(t, "Par,4\nScore,4\n", string(got.Data))

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rounds/import", strings.NewReader("plain")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetRound(t *testing.T) {
	id := uuid.New()
	fake := &FakeService{
		GetRoundFn: func(_ context.Context, clubID string, roundID uuid.UUID) (rounddomain.Round, error) {
			if clubID != "club-1" || roundID != id {
				return rounddomain.Round{}, roundservice.ErrRoundNotFound
			}
			return rounddomain.Round{ID: id, ClubID: clubID, PlayerID: "p1"}, nil
		},
	}
	srv := newServer(NewHandlers(fake, nil, discard), player("p1"))

	tests := []struct {
		path string
		want int
	}{
		{path: "/rounds/" + id.String(), want: http.StatusOK},
		{path: "/rounds/" + uuid.NewString(), want: http.StatusNotFound},
		{path: "/rounds/not-a-uuid", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, tt.path)
	}
}

func TestHandleListRounds(t *testing.T) {
	var gotPlayer string
	var gotLimit int
	fake := &FakeService{
		ListPlayerRoundsFn: func(_ context.Context, _ string, playerID string, limit int) ([]rounddomain.Round, error) {
			gotPlayer, gotLimit = playerID, limit
			return nil, nil
		},
	}
	srv := newServer(NewHandlers(fake, nil, discard), player("p1"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", gotPlayer)
	assert.Equal(t, defaultListLimit, gotLimit)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds?player=p2&limit=5000", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p2", gotPlayer)
	assert.Equal(t, maxListLimit, gotLimit)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds?limit=zero", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
