package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/repo"
)

// BookingService implements business logic for persisted bookings.
type BookingService struct {
	repo repo.BookingRepo
}

// NewBookingService constructs a BookingService backed by the provided repo.
func NewBookingService(r repo.BookingRepo) *BookingService {
	return &BookingService{repo: r}
}

// Create validates and persists a booking submitted directly as a draft,
// bypassing the session flow. Returns domain.ErrValidation for drafts that
// break the wire-format rules.
func (s *BookingService) Create(ctx context.Context, draft domain.BookingDraft) (domain.Booking, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Booking{}, err
	}
	booking, err := bookingFromDraft(draft)
	if err != nil {
		return domain.Booking{}, err
	}
	result, err := s.repo.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single booking by ID.
// Returns domain.ErrNotFound if no booking with that ID exists.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of bookings plus the total count, newest first.
// An empty status means no filter; unknown statuses are rejected.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) List(ctx context.Context, status domain.BookingStatus, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	if status != "" && !domain.ValidBookingStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	bookings, total, err := s.repo.ListPaged(ctx, status, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.List: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, total, nil
}

// Cancel marks a booking as cancelled. Cancelling an already-cancelled
// booking is a no-op that returns the current record; completed bookings
// cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	switch current.Status {
	case domain.StatusCancelled:
		return current, nil
	case domain.StatusCompleted:
		return domain.Booking{}, fmt.Errorf("%w: completed bookings cannot be cancelled", domain.ErrValidation)
	}

	result, err := s.repo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	return result, nil
}

// validateDraft enforces the wire-format rules for directly submitted drafts.
//   - destinationId must be non-empty
//   - guests must be at least 1
//   - the day entries must cover the trip window exactly, in order
//   - paymentMethod, if present, must be a known method
func validateDraft(draft domain.BookingDraft) error {
	if draft.DestinationID == "" {
		return fmt.Errorf("%w: destinationId is required", domain.ErrValidation)
	}
	if draft.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", domain.ErrValidation)
	}
	start, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate %q", domain.ErrValidation, draft.StartDate)
	}
	end, err := time.Parse("2006-01-02", draft.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate %q", domain.ErrValidation, draft.EndDate)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: endDate must be after startDate", domain.ErrValidation)
	}

	days := int(end.Sub(start).Hours() / 24)
	if len(draft.CustomPlan) != days {
		return fmt.Errorf("%w: customPlan has %d entries, window has %d days",
			domain.ErrValidation, len(draft.CustomPlan), days)
	}
	for i, day := range draft.CustomPlan {
		want := start.AddDate(0, 0, i).Format("2006-01-02")
		if day.Date != want {
			return fmt.Errorf("%w: customPlan[%d] has date %q, want %q",
				domain.ErrValidation, i, day.Date, want)
		}
	}

	if draft.PaymentMethod != "" && !domain.ValidPaymentMethod(draft.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, draft.PaymentMethod)
	}
	return nil
}
