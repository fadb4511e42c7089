package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// bookingResponse is the wire representation of a persisted booking.
// Dates are date-only values; timestamps carry the full instant.
type bookingResponse struct {
	ID            uuid.UUID            `json:"id"`
	DestinationID string               `json:"destinationId"`
	StartDate     openapi_types.Date   `json:"startDate"`
	EndDate       openapi_types.Date   `json:"endDate"`
	Guests        int                  `json:"guests"`
	CustomPlan    []domain.DayPlan     `json:"customPlan"`
	CarRental     *domain.CarRental    `json:"carRental,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod,omitempty"`
	TotalCost     float64              `json:"totalCost"`
	Status        domain.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// pagination echoes the effective paging values alongside the total count.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func bookingToResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		DestinationID: b.DestinationID,
		StartDate:     openapi_types.Date{Time: b.StartDate},
		EndDate:       openapi_types.Date{Time: b.EndDate},
		Guests:        b.Guests,
		CustomPlan:    b.CustomPlan,
		CarRental:     b.CarRental,
		PaymentMethod: b.PaymentMethod,
		TotalCost:     b.TotalCost,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// CreateBooking handles POST /bookings.
// Accepts a complete draft in the session wire format, for clients that
// assemble the plan themselves instead of using the session API.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var draft domain.BookingDraft
	if err := decodeJSON(r, &draft); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	created, err := s.bookings.Create(r.Context(), draft)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, bookingToResponse(created))
}

// ListBookings handles GET /bookings.
// Supports ?page=, ?limit=, and ?status= query parameters.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	status := domain.BookingStatus(r.URL.Query().Get("status"))

	bookings, total, err := s.bookings.List(r.Context(), status, params)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	data := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		data[i] = bookingToResponse(b)
	}
	s.respondJSON(w, r, http.StatusOK, struct {
		Data       []bookingResponse `json:"data"`
		Pagination pagination        `json:"pagination"`
	}{
		Data:       data,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondBadRequest(w, r, "invalid booking id")
		return
	}

	booking, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, bookingToResponse(booking))
}

// CancelBooking handles POST /bookings/{id}/cancel.
func (s *Server) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondBadRequest(w, r, "invalid booking id")
		return
	}

	booking, err := s.bookings.Cancel(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, bookingToResponse(booking))
}
