package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/handler"
	"github.com/THIRUSELVAN-V/travellaV2/internal/service"
)

// sessionRepo is a minimal repo.BookingRepo double for confirm tests.
type sessionRepo struct {
	create func(ctx context.Context, b domain.Booking) (domain.Booking, error)
}

func (m *sessionRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if m.create != nil {
		return m.create(ctx, b)
	}
	b.ID = uuid.New()
	return b, nil
}
func (m *sessionRepo) GetByID(context.Context, uuid.UUID) (domain.Booking, error) {
	return domain.Booking{}, domain.ErrNotFound
}
func (m *sessionRepo) ListPaged(context.Context, domain.BookingStatus, domain.PaginationParams) ([]domain.Booking, int64, error) {
	return nil, 0, nil
}
func (m *sessionRepo) UpdateStatus(context.Context, uuid.UUID, domain.BookingStatus) (domain.Booking, error) {
	return domain.Booking{}, domain.ErrNotFound
}

// newSessionRouter wires a real PlannerService (in-memory sessions) behind
// the HTTP surface, so these tests exercise the full request path.
func newSessionRouter(repo *sessionRepo) http.Handler {
	planner := service.NewPlannerService(repo, time.Hour)
	srv := handler.NewServer(planner, nil, nil, nil, discardLog())
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do runs one request against the router and decodes the JSON response body.
func do(t *testing.T, h http.Handler, method, path string, body io.Reader) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// Array responses (catalog listings) decode to nil here; those tests
	// assert on the raw body instead.
	var decoded map[string]any
	if rec.Body.Len() > 0 {
		var v any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
		decoded, _ = v.(map[string]any)
	}
	return rec, decoded
}

// startSession creates a session over HTTP and returns its ID.
func startSession(t *testing.T, h http.Handler, body map[string]any) string {
	t.Helper()
	rec, resp := do(t, h, http.MethodPost, "/sessions", jsonBody(t, body))
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestStartSession_201(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})

	rec, resp := do(t, h, http.MethodPost, "/sessions", jsonBody(t, map[string]any{
		"destinationId": "dest-goa",
		"travelers":     2,
		"flow":          "scheduled",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "scheduled", resp["flow"])
	assert.Equal(t, "window", resp["step"])
	assert.Equal(t, float64(0), resp["days"])
}

func TestStartSession_MissingDestination_422(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})

	rec, resp := do(t, h, http.MethodPost, "/sessions", jsonBody(t, map[string]any{
		"travelers": 2,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "validation_error", errObj["code"])
}

func TestGetSession_UnknownID_404(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})

	rec, _ := do(t, h, http.MethodGet, "/sessions/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_MalformedID_400(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})

	rec, _ := do(t, h, http.MethodGet, "/sessions/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetWindow_ResizesPlan(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})

	rec, resp := do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01",
		"endDate":   "2025-06-04",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), resp["days"])

	draft := resp["draft"].(map[string]any)
	days := draft["customPlan"].([]any)
	require.Len(t, days, 3)
	first := days[0].(map[string]any)
	assert.Equal(t, "2025-06-01", first["date"])
}

func TestAssignSlot_ToggleOverHTTP(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))

	assign := func() (*httptest.ResponseRecorder, map[string]any) {
		return do(t, h, http.MethodPost, "/sessions/"+id+"/slots", jsonBody(t, map[string]any{
			"day":  0,
			"slot": "morning",
			"activity": map[string]any{
				"id": "p1", "name": "Fort Walk", "price": 10,
			},
		}))
	}

	rec, resp := assign()
	require.Equal(t, http.StatusOK, rec.Code)
	cost := resp["cost"].(map[string]any)
	assert.Equal(t, float64(10), cost["total"])

	// Posting the same activity again clears the cell.
	rec, resp = assign()
	require.Equal(t, http.StatusOK, rec.Code)
	cost = resp["cost"].(map[string]any)
	assert.Equal(t, float64(0), cost["total"])
}

func TestAssignSlot_DayOutOfRange_422(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))

	rec, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/slots", jsonBody(t, map[string]any{
		"day": 7, "slot": "morning",
		"activity": map[string]any{"id": "p1", "price": 10},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdvance_StepErrorNamesMissingDays(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))

	// Window step passes, activities step blocks: both days are empty.
	rec, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := do(t, h, http.MethodPost, "/sessions/"+id+"/advance", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "activities", errObj["step"])
	assert.Equal(t, []any{float64(1), float64(2)}, errObj["missingDays"])
}

func TestCost_Endpoint(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/days/0/hotel", jsonBody(t, map[string]any{
		"hotel": map[string]any{"id": "h1", "name": "Beach Stay", "price_per_night": 100},
	}))
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/car", jsonBody(t, map[string]any{
		"needed": true,
		"car":    map[string]any{"id": "c1", "model": "Compact", "price_per_day": 50},
	}))

	rec, resp := do(t, h, http.MethodGet, "/sessions/"+id+"/cost", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(100), resp["hotels"])
	assert.Equal(t, float64(100), resp["car"], "two days at 50 per day")
	assert.Equal(t, float64(200), resp["total"])
}

func TestConfirm_PersistsAndDropsSession(t *testing.T) {
	var stored domain.Booking
	repo := &sessionRepo{
		create: func(_ context.Context, b domain.Booking) (domain.Booking, error) {
			stored = b
			stored.ID = uuid.New()
			return stored, nil
		},
	}
	h := newSessionRouter(repo)
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 2})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))
	for day := 0; day < 2; day++ {
		rec, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/slots", jsonBody(t, map[string]any{
			"day": day, "slot": "morning",
			"activity": map[string]any{"id": "p1", "name": "Fort Walk", "price": 10},
		}))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, resp := do(t, h, http.MethodPost, "/sessions/"+id+"/confirm", nil)

	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, stored.ID.String(), resp["id"])
	assert.Equal(t, "dest-goa", resp["destinationId"])
	assert.Equal(t, "confirmed", resp["status"])
	assert.Equal(t, float64(20), resp["totalCost"])

	rec, _ = do(t, h, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "session must be gone after confirm")
}

func TestConfirm_IncompletePlanKeepsSession(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})
	id := startSession(t, h, map[string]any{"destinationId": "dest-goa", "travelers": 1})
	_, _ = do(t, h, http.MethodPut, "/sessions/"+id+"/window", jsonBody(t, map[string]any{
		"startDate": "2025-06-01", "endDate": "2025-06-03",
	}))

	rec, resp := do(t, h, http.MethodPost, "/sessions/"+id+"/confirm", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "activities", errObj["step"])

	rec, _ = do(t, h, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "session survives a failed confirm")
}

func TestHealthz(t *testing.T) {
	h := newSessionRouter(&sessionRepo{})

	rec, resp := do(t, h, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])
}
