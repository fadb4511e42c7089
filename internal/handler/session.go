package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/plan"
	"github.com/THIRUSELVAN-V/travellaV2/internal/service"
)

// sessionResponse is the full session state returned by every session
// endpoint, so clients always render from the latest snapshot.
type sessionResponse struct {
	ID             string              `json:"id"`
	Flow           plan.Flow           `json:"flow"`
	Step           string              `json:"step"`
	Days           int                 `json:"days"`
	HotelsRequired bool                `json:"hotelsRequired"`
	CarNeeded      bool                `json:"carNeeded"`
	Cost           plan.Breakdown      `json:"cost"`
	Draft          domain.BookingDraft `json:"draft"`
}

func sessionToResponse(sess service.Session) sessionResponse {
	return sessionResponse{
		ID:             sess.ID.String(),
		Flow:           sess.Plan.Flow,
		Step:           sess.Plan.Step.String(),
		Days:           sess.Plan.Days(),
		HotelsRequired: sess.Plan.HotelsRequired,
		CarNeeded:      sess.Plan.CarNeeded,
		Cost:           sess.Plan.Cost(),
		Draft:          sess.Plan.Serialize(),
	}
}

// sessionID parses the {id} path parameter.
func sessionID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// dayParam parses the {day} path parameter as a zero-based day index.
func dayParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "day"))
}

// StartSession handles POST /sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DestinationID  string    `json:"destinationId"`
		Travelers      int       `json:"travelers"`
		Flow           plan.Flow `json:"flow"`
		HotelsRequired bool      `json:"hotelsRequired"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.StartSession(body.DestinationID, body.Travelers, body.Flow)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if body.HotelsRequired {
		if sess, err = s.planner.SetHotelsRequired(sess.ID, true); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	s.respondJSON(w, r, http.StatusCreated, sessionToResponse(sess))
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	sess, err := s.planner.Get(id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// SetWindow handles PUT /sessions/{id}/window.
// Setting a new window resets all day-keyed selections.
func (s *Server) SetWindow(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	var body struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.SetWindow(id, body.StartDate, body.EndDate)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// AssignSlot handles POST /sessions/{id}/slots.
// Posting the activity already occupying the cell clears it (toggle).
func (s *Server) AssignSlot(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	var body struct {
		Day      int             `json:"day"`
		Slot     plan.TimeSlot   `json:"slot"`
		Activity domain.Activity `json:"activity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.AssignSlot(id, body.Day, body.Slot, body.Activity)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// UnassignSlot handles DELETE /sessions/{id}/slots?day=&slot=.
func (s *Server) UnassignSlot(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		s.respondBadRequest(w, r, "day query parameter must be an integer")
		return
	}
	slot := plan.TimeSlot(r.URL.Query().Get("slot"))

	sess, err := s.planner.UnassignSlot(id, day, slot)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// SetHotel handles PUT /sessions/{id}/days/{day}/hotel.
func (s *Server) SetHotel(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}
	day, err := dayParam(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid day index")
		return
	}

	var body struct {
		Hotel *domain.Hotel `json:"hotel"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.SetHotel(id, day, body.Hotel)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// ClearHotel handles DELETE /sessions/{id}/days/{day}/hotel.
func (s *Server) ClearHotel(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}
	day, err := dayParam(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid day index")
		return
	}

	sess, err := s.planner.SetHotel(id, day, nil)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// SetCar handles PUT /sessions/{id}/car.
// The body carries both the "wants a car" flag and the selected car, so a
// single request can opt in and choose, or opt out entirely.
func (s *Server) SetCar(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	var body struct {
		Needed bool        `json:"needed"`
		Car    *domain.Car `json:"car"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	if _, err := s.planner.SetCarNeeded(id, body.Needed); err != nil {
		s.respondError(w, r, err)
		return
	}
	sess, err := s.planner.SetCar(id, body.Car)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// SetDayNote handles PUT /sessions/{id}/days/{day}/note.
func (s *Server) SetDayNote(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}
	day, err := dayParam(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid day index")
		return
	}

	var body struct {
		Note string `json:"note"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.SetDayNote(id, day, body.Note)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// SetPayment handles PUT /sessions/{id}/payment.
func (s *Server) SetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	var body struct {
		Method domain.PaymentMethod `json:"method"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondBadRequest(w, r, err.Error())
		return
	}

	sess, err := s.planner.SetPayment(id, body.Method)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// Advance handles POST /sessions/{id}/advance.
// Failing the current step's completion rules returns 422 with the step name
// and the offending days.
func (s *Server) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	sess, err := s.planner.Advance(id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// Back handles POST /sessions/{id}/back.
func (s *Server) Back(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	sess, err := s.planner.Back(id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sessionToResponse(sess))
}

// GetCost handles GET /sessions/{id}/cost.
func (s *Server) GetCost(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	breakdown, err := s.planner.Cost(id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, breakdown)
}

// Confirm handles POST /sessions/{id}/confirm.
// A successful confirm persists the booking and destroys the session; any
// failure leaves the session intact for another attempt.
func (s *Server) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.respondBadRequest(w, r, "invalid session id")
		return
	}

	booking, err := s.planner.Confirm(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, bookingToResponse(booking))
}
