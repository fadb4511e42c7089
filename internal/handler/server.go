// Package handler implements the HTTP handlers for the Travella API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, session.go, booking.go, catalog.go) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/plan"
	"github.com/THIRUSELVAN-V/travellaV2/internal/service"
	"github.com/THIRUSELVAN-V/travellaV2/spec"
)

// PlannerServicer defines the planning-session operations the handler depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the session store or the database.
type PlannerServicer interface {
	StartSession(destinationID string, travelers int, flow plan.Flow) (service.Session, error)
	Get(id uuid.UUID) (service.Session, error)
	SetWindow(id uuid.UUID, start, end string) (service.Session, error)
	AssignSlot(id uuid.UUID, day int, slot plan.TimeSlot, activity domain.Activity) (service.Session, error)
	UnassignSlot(id uuid.UUID, day int, slot plan.TimeSlot) (service.Session, error)
	SetHotel(id uuid.UUID, day int, hotel *domain.Hotel) (service.Session, error)
	SetCar(id uuid.UUID, car *domain.Car) (service.Session, error)
	SetCarNeeded(id uuid.UUID, needed bool) (service.Session, error)
	SetHotelsRequired(id uuid.UUID, required bool) (service.Session, error)
	SetDayNote(id uuid.UUID, day int, note string) (service.Session, error)
	SetPayment(id uuid.UUID, method domain.PaymentMethod) (service.Session, error)
	Advance(id uuid.UUID) (service.Session, error)
	Back(id uuid.UUID) (service.Session, error)
	Cost(id uuid.UUID) (plan.Breakdown, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// BookingServicer defines the booking operations the handler depends on.
type BookingServicer interface {
	Create(ctx context.Context, draft domain.BookingDraft) (domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus, p domain.PaginationParams) ([]domain.Booking, int64, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// CatalogServicer defines the upstream catalog lookups the handler depends on.
type CatalogServicer interface {
	Destinations(ctx context.Context) ([]domain.Destination, error)
	Destination(ctx context.Context, id string) (domain.Destination, error)
	Hotels(ctx context.Context) ([]domain.Hotel, error)
	Cars(ctx context.Context) ([]domain.Car, error)
}

// PlacesServicer loads the attraction list for one destination. Responses
// for superseded requests surface catalog.ErrStale and are never sent.
type PlacesServicer interface {
	Load(ctx context.Context, destinationID string) ([]domain.Activity, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	planner  PlannerServicer
	bookings BookingServicer
	catalog  CatalogServicer
	places   PlacesServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, bookings BookingServicer, catalog CatalogServicer, places PlacesServicer, log *slog.Logger) *Server {
	return &Server{
		planner:  planner,
		bookings: bookings,
		catalog:  catalog,
		places:   places,
		log:      log,
	}
}

// Routes registers all API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Get("/destinations", s.ListDestinations)
	r.Get("/destinations/{id}", s.GetDestination)
	r.Get("/hotels", s.ListHotels)
	r.Get("/carrentals", s.ListCars)
	r.Get("/places", s.ListPlaces)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.StartSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Put("/window", s.SetWindow)
			r.Post("/slots", s.AssignSlot)
			r.Delete("/slots", s.UnassignSlot)
			r.Put("/days/{day}/hotel", s.SetHotel)
			r.Delete("/days/{day}/hotel", s.ClearHotel)
			r.Put("/days/{day}/note", s.SetDayNote)
			r.Put("/car", s.SetCar)
			r.Put("/payment", s.SetPayment)
			r.Post("/advance", s.Advance)
			r.Post("/back", s.Back)
			r.Get("/cost", s.GetCost)
			r.Post("/confirm", s.Confirm)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", s.CreateBooking)
		r.Get("/", s.ListBookings)
		r.Get("/{id}", s.GetBooking)
		r.Post("/{id}/cancel", s.CancelBooking)
	})
}

// GetOpenAPISpec serves the embedded OpenAPI document.
func (s *Server) GetOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
