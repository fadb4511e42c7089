// Package repo contains all database access logic for the Travella API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepo defines the persistence operations for Bookings.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type BookingRepo interface {
	// Create inserts a new booking and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetByID retrieves a single booking by its UUID primary key.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// ListPaged returns one page of bookings ordered by created_at
	// descending, optionally filtered by status (empty = all), plus the
	// total count for the filter.
	ListPaged(ctx context.Context, status domain.BookingStatus, p domain.PaginationParams) ([]domain.Booking, int64, error)

	// UpdateStatus sets the status of an existing booking and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
// The day-wise plan and car block are stored as JSONB: they are written and
// read as a unit and never queried field-by-field.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, destination_id, start_date, end_date, guests,
	custom_plan, car_rental, payment_method, total_cost, status, created_at, updated_at`

// Create inserts a new booking row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings
			(destination_id, start_date, end_date, guests, custom_plan,
			 car_rental, payment_method, total_cost, status)
		VALUES
			(@destination_id, @start_date, @end_date, @guests, @custom_plan,
			 @car_rental, @payment_method, @total_cost, @status)
		RETURNING ` + bookingColumns

	customPlan, err := json.Marshal(b.CustomPlan)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: marshal plan: %w", err)
	}
	var carRental []byte
	if b.CarRental != nil {
		carRental, err = json.Marshal(b.CarRental)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: marshal car: %w", err)
		}
	}

	status := b.Status
	if status == "" {
		status = domain.StatusConfirmed
	}

	args := pgx.NamedArgs{
		"destination_id": b.DestinationID,
		"start_date":     b.StartDate,
		"end_date":       b.EndDate,
		"guests":         b.Guests,
		"custom_plan":    customPlan,
		"car_rental":     carRental, // nil becomes NULL
		"payment_method": nullableString(string(b.PaymentMethod)),
		"total_cost":     b.TotalCost,
		"status":         string(status),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of bookings, newest first, plus the total count.
func (r *pgBookingRepo) ListPaged(ctx context.Context, status domain.BookingStatus, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE (@status = '' OR status = @status)
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"status": string(status),
		"limit":  p.Limit,
		"offset": p.Offset(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: rows: %w", err)
	}

	const countQ = `SELECT count(*) FROM bookings WHERE (@status = '' OR status = @status)`
	var total int64
	err = r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"status": string(status)}).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: count: %w", err)
	}

	return bookings, total, nil
}

// UpdateStatus sets the booking status and returns the updated record.
func (r *pgBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET status = @status, updated_at = now()
		WHERE id = @id
		RETURNING ` + bookingColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanBooking to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanBooking maps a single database row into a domain.Booking.
// It handles the UUID, date, and JSONB conversions.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b          domain.Booking
		id         pgtype.UUID
		startDate  pgtype.Date
		endDate    pgtype.Date
		customPlan []byte
		carRental  []byte
		payment    pgtype.Text
	)

	err := s.Scan(&id, &b.DestinationID, &startDate, &endDate, &b.Guests,
		&customPlan, &carRental, &payment, &b.TotalCost, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.StartDate = startDate.Time
	b.EndDate = endDate.Time
	if err := json.Unmarshal(customPlan, &b.CustomPlan); err != nil {
		return domain.Booking{}, fmt.Errorf("unmarshal custom_plan: %w", err)
	}
	if len(carRental) > 0 {
		var car domain.CarRental
		if err := json.Unmarshal(carRental, &car); err != nil {
			return domain.Booking{}, fmt.Errorf("unmarshal car_rental: %w", err)
		}
		b.CarRental = &car
	}
	if payment.Valid {
		b.PaymentMethod = domain.PaymentMethod(payment.String)
	}

	return b, nil
}

// nullableString maps "" to a NULL-able pointer for text columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
