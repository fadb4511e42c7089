package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// PaymentMethod is the payment option chosen during the freeform planning
// flow. Actual payment processing is out of scope; the method is recorded
// on the booking verbatim.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentPayPal     PaymentMethod = "paypal"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentPayPal:
		return true
	}
	return false
}

// DayPlace is one scheduled attraction inside a day entry of the booking
// wire format.
type DayPlace struct {
	PlaceID  string  `json:"placeId"`
	Name     string  `json:"name"`
	TimeSlot string  `json:"timeSlot"`
	Price    float64 `json:"price"`
}

// DayHotel is the hotel block of a day entry. A nil *DayHotel on DayPlan
// means no hotel was selected for that night.
type DayHotel struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	PerDay float64 `json:"perDay"`
}

// DayPlan is one day-keyed entry of the serialized trip plan.
// Date is the calendar date in "2006-01-02" form (trip start + day index).
type DayPlan struct {
	Date   string     `json:"date"`
	Hotel  *DayHotel  `json:"hotel"`
	Places []DayPlace `json:"places"`
	Note   string     `json:"note,omitempty"` // freeform flow day text
}

// CarRental is the trip-wide car block of the booking wire format.
type CarRental struct {
	CarID           string  `json:"carId"`
	Model           string  `json:"model"`
	ProviderContact string  `json:"providerContact,omitempty"`
	PerDay          float64 `json:"perDay"`
}

// BookingDraft is the wire format handed to the booking-creation endpoint.
// It is produced by plan.Serialize and has the same shape regardless of
// which planning flow populated the plan.
type BookingDraft struct {
	DestinationID string        `json:"destinationId"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Guests        int           `json:"guests"`
	CustomPlan    []DayPlan     `json:"customPlan"`
	CarRental     *CarRental    `json:"carRental,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	TotalCost     float64       `json:"totalCost"`
}

// Booking is a persisted booking record.
type Booking struct {
	ID            uuid.UUID
	DestinationID string
	StartDate     time.Time
	EndDate       time.Time
	Guests        int
	CustomPlan    []DayPlan
	CarRental     *CarRental
	PaymentMethod PaymentMethod
	TotalCost     float64
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
