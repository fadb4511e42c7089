package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/THIRUSELVAN-V/travellaV2/internal/catalog"
)

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.catalog.Destinations(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, destinations)
}

// GetDestination handles GET /destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	destination, err := s.catalog.Destination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, destination)
}

// ListHotels handles GET /hotels.
func (s *Server) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := s.catalog.Hotels(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, hotels)
}

// ListCars handles GET /carrentals.
func (s *Server) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := s.catalog.Cars(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, cars)
}

// ListPlaces handles GET /places?destination={id}.
// When a newer request for the same destination lands while this one is
// still fetching, the stale response is dropped with 409 rather than
// overwriting fresher data on the client.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	destinationID := r.URL.Query().Get("destination")
	if destinationID == "" {
		s.respondBadRequest(w, r, "destination query parameter is required")
		return
	}

	places, err := s.places.Load(r.Context(), destinationID)
	if err != nil {
		if errors.Is(err, catalog.ErrStale) {
			s.respondJSON(w, r, http.StatusConflict, errorResponse{Error: errorDetail{
				Code:    "superseded",
				Message: "a newer request for this destination is in flight",
			}})
			return
		}
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, places)
}
