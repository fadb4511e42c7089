// Package service contains the business logic for the Travella API.
// Services validate inputs, enforce business rules, and orchestrate the plan
// engine, the catalog client, and repo calls. No SQL and no HTTP lives here.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/plan"
	"github.com/THIRUSELVAN-V/travellaV2/internal/repo"
)

// Session is one in-progress planning session. The plan inside it is a value;
// every mutation stores a replacement snapshot under the same ID.
type Session struct {
	ID   uuid.UUID
	Plan plan.Plan
}

// PlannerService owns the planning session lifecycle: sessions live in an
// in-memory TTL store and are dropped either on confirmation or when the TTL
// expires, so abandoned plans never reach the database.
type PlannerService struct {
	mu       sync.Mutex // serializes read-modify-write cycles on sessions
	sessions *gocache.Cache
	bookings repo.BookingRepo
}

// NewPlannerService constructs a PlannerService. Sessions idle longer than
// ttl are evicted; every successful mutation resets the clock.
func NewPlannerService(bookings repo.BookingRepo, ttl time.Duration) *PlannerService {
	return &PlannerService{
		sessions: gocache.New(ttl, ttl),
		bookings: bookings,
	}
}

// StartSession creates a new planning session for a destination.
// Returns domain.ErrValidation if destinationID is empty or flow is unknown.
func (s *PlannerService) StartSession(destinationID string, travelers int, flow plan.Flow) (Session, error) {
	if destinationID == "" {
		return Session{}, fmt.Errorf("%w: destination_id is required", domain.ErrValidation)
	}
	if flow != "" && !plan.ValidFlow(flow) {
		return Session{}, fmt.Errorf("%w: unknown flow %q", domain.ErrValidation, flow)
	}

	sess := Session{
		ID:   uuid.New(),
		Plan: plan.New(destinationID, travelers, flow),
	}
	s.sessions.SetDefault(sess.ID.String(), sess.Plan)
	return sess, nil
}

// Get returns the current snapshot of a session.
// Returns domain.ErrNotFound for unknown or expired sessions.
func (s *PlannerService) Get(id uuid.UUID) (Session, error) {
	v, ok := s.sessions.Get(id.String())
	if !ok {
		return Session{}, fmt.Errorf("service.PlannerService.Get: %w", domain.ErrNotFound)
	}
	return Session{ID: id, Plan: v.(plan.Plan)}, nil
}

// update loads the session, applies fn to its plan, and stores the result.
// The plan is immutable, so a failed fn leaves the stored snapshot untouched.
func (s *PlannerService) update(id uuid.UUID, fn func(plan.Plan) (plan.Plan, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Get(id)
	if err != nil {
		return Session{}, err
	}
	next, err := fn(sess.Plan)
	if err != nil {
		return Session{}, err
	}
	s.sessions.SetDefault(id.String(), next)
	return Session{ID: id, Plan: next}, nil
}

// SetWindow sets the trip date range, resetting all day-keyed selections.
func (s *PlannerService) SetWindow(id uuid.UUID, start, end string) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetWindow(start, end), nil
	})
}

// AssignSlot assigns an activity to a day/slot cell, or clears the cell when
// the same activity is already assigned there.
func (s *PlannerService) AssignSlot(id uuid.UUID, day int, slot plan.TimeSlot, activity domain.Activity) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.AssignSlot(day, slot, activity)
	})
}

// UnassignSlot clears a day/slot cell unconditionally.
func (s *PlannerService) UnassignSlot(id uuid.UUID, day int, slot plan.TimeSlot) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.UnassignSlot(day, slot)
	})
}

// SetHotel selects the hotel for one night; a nil hotel clears the night.
func (s *PlannerService) SetHotel(id uuid.UUID, day int, hotel *domain.Hotel) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetHotel(day, hotel)
	})
}

// SetCar selects the trip-wide rental car; a nil car clears the selection.
func (s *PlannerService) SetCar(id uuid.UUID, car *domain.Car) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetCar(car)
	})
}

// SetCarNeeded records whether the trip wants a rental car at all.
func (s *PlannerService) SetCarNeeded(id uuid.UUID, needed bool) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetCarNeeded(needed), nil
	})
}

// SetHotelsRequired records whether every night must have a hotel selected.
func (s *PlannerService) SetHotelsRequired(id uuid.UUID, required bool) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetHotelsRequired(required), nil
	})
}

// SetDayNote sets the freeform note for one day; empty text clears it.
func (s *PlannerService) SetDayNote(id uuid.UUID, day int, note string) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetDayNote(day, note)
	})
}

// SetPayment records the chosen payment method.
func (s *PlannerService) SetPayment(id uuid.UUID, method domain.PaymentMethod) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.SetPayment(method)
	})
}

// Advance moves the session to the next planning step if the current step's
// completion rules pass. Returns a *plan.StepError (matching
// domain.ErrValidation) describing what is missing otherwise.
func (s *PlannerService) Advance(id uuid.UUID) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.Advance()
	})
}

// Back moves the session one step backward without any checks.
func (s *PlannerService) Back(id uuid.UUID) (Session, error) {
	return s.update(id, func(p plan.Plan) (plan.Plan, error) {
		return p.Back(), nil
	})
}

// Cost returns the current price breakdown of a session's plan.
func (s *PlannerService) Cost(id uuid.UUID) (plan.Breakdown, error) {
	sess, err := s.Get(id)
	if err != nil {
		return plan.Breakdown{}, err
	}
	return sess.Plan.Cost(), nil
}

// Confirm validates the whole plan, persists it as a booking, and drops the
// session. On any failure the session is kept so the client can fix the plan
// and retry.
func (s *PlannerService) Confirm(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	sess, err := s.Get(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := sess.Plan.ValidateConfirm(); err != nil {
		return domain.Booking{}, err
	}

	booking, err := bookingFromDraft(sess.Plan.Serialize())
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.Confirm: %w", err)
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.PlannerService.Confirm: %w", err)
	}

	s.sessions.Delete(id.String())
	return created, nil
}

// bookingFromDraft converts the wire-format draft into a persistable booking.
func bookingFromDraft(draft domain.BookingDraft) (domain.Booking, error) {
	start, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: start date %q", domain.ErrValidation, draft.StartDate)
	}
	end, err := time.Parse("2006-01-02", draft.EndDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: end date %q", domain.ErrValidation, draft.EndDate)
	}

	return domain.Booking{
		DestinationID: draft.DestinationID,
		StartDate:     start,
		EndDate:       end,
		Guests:        draft.Guests,
		CustomPlan:    draft.CustomPlan,
		CarRental:     draft.CarRental,
		PaymentMethod: draft.PaymentMethod,
		TotalCost:     draft.TotalCost,
		Status:        domain.StatusConfirmed,
	}, nil
}
