package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THIRUSELVAN-V/travellaV2/internal/catalog"
	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/handler"
)

// mockCatalogServicer is a test double for handler.CatalogServicer.
type mockCatalogServicer struct {
	destinations func(ctx context.Context) ([]domain.Destination, error)
	destination  func(ctx context.Context, id string) (domain.Destination, error)
	hotels       func(ctx context.Context) ([]domain.Hotel, error)
	cars         func(ctx context.Context) ([]domain.Car, error)
}

func (m *mockCatalogServicer) Destinations(ctx context.Context) ([]domain.Destination, error) {
	return m.destinations(ctx)
}
func (m *mockCatalogServicer) Destination(ctx context.Context, id string) (domain.Destination, error) {
	return m.destination(ctx, id)
}
func (m *mockCatalogServicer) Hotels(ctx context.Context) ([]domain.Hotel, error) {
	return m.hotels(ctx)
}
func (m *mockCatalogServicer) Cars(ctx context.Context) ([]domain.Car, error) {
	return m.cars(ctx)
}

var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

// mockPlacesServicer is a test double for handler.PlacesServicer.
type mockPlacesServicer struct {
	load func(ctx context.Context, destinationID string) ([]domain.Activity, error)
}

func (m *mockPlacesServicer) Load(ctx context.Context, destinationID string) ([]domain.Activity, error) {
	return m.load(ctx, destinationID)
}

var _ handler.PlacesServicer = (*mockPlacesServicer)(nil)

func newCatalogRouter(cat handler.CatalogServicer, places handler.PlacesServicer) http.Handler {
	srv := handler.NewServer(nil, nil, cat, places, discardLog())
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func TestListDestinations_200(t *testing.T) {
	h := newCatalogRouter(&mockCatalogServicer{
		destinations: func(_ context.Context) ([]domain.Destination, error) {
			return []domain.Destination{{ID: "d1", Name: "Goa"}}, nil
		},
	}, nil)

	rec, _ := do(t, h, http.MethodGet, "/destinations", nil)

	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"Goa"`)
}

func TestListDestinations_UpstreamDown_502(t *testing.T) {
	h := newCatalogRouter(&mockCatalogServicer{
		destinations: func(_ context.Context) ([]domain.Destination, error) {
			return nil, domain.ErrCatalogUnavailable
		},
	}, nil)

	rec, resp := do(t, h, http.MethodGet, "/destinations", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "catalog_unavailable", errObj["code"])
}

func TestGetDestination_404(t *testing.T) {
	h := newCatalogRouter(&mockCatalogServicer{
		destination: func(_ context.Context, id string) (domain.Destination, error) {
			return domain.Destination{}, domain.ErrNotFound
		},
	}, nil)

	rec, _ := do(t, h, http.MethodGet, "/destinations/ghost", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPlaces_RequiresDestination(t *testing.T) {
	h := newCatalogRouter(nil, &mockPlacesServicer{})

	rec, _ := do(t, h, http.MethodGet, "/places", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlaces_200(t *testing.T) {
	h := newCatalogRouter(nil, &mockPlacesServicer{
		load: func(_ context.Context, destinationID string) ([]domain.Activity, error) {
			assert.Equal(t, "d1", destinationID)
			return []domain.Activity{{ID: "p1", Name: "Fort Walk", Price: 10}}, nil
		},
	})

	rec, _ := do(t, h, http.MethodGet, "/places?destination=d1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Fort Walk"`)
}

func TestListPlaces_Superseded_409(t *testing.T) {
	h := newCatalogRouter(nil, &mockPlacesServicer{
		load: func(_ context.Context, _ string) ([]domain.Activity, error) {
			return nil, catalog.ErrStale
		},
	})

	rec, resp := do(t, h, http.MethodGet, "/places?destination=d1", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "superseded", errObj["code"])
}
