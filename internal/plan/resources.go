package plan

import (
	"fmt"
	"strings"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// SetHotel selects hotel for one night. A nil hotel clears the day; a
// different hotel replaces whatever was selected before; no two hotels can
// occupy the same day.
func (p Plan) SetHotel(day int, hotel *domain.Hotel) (Plan, error) {
	if !p.validDay(day) {
		return p, fmt.Errorf("%w: day %d is outside the trip range", domain.ErrValidation, day+1)
	}
	hotels := p.cloneHotels()
	if hotel == nil {
		delete(hotels, day)
	} else {
		if hotel.ID == "" {
			return p, fmt.Errorf("%w: hotel id is required", domain.ErrValidation)
		}
		hotels[day] = *hotel
	}
	p.Hotels = hotels
	return p, nil
}

// HotelForDay returns the hotel selected for a night and whether one is set.
func (p Plan) HotelForDay(day int) (domain.Hotel, bool) {
	h, ok := p.Hotels[day]
	return h, ok
}

// SetCar selects the trip-wide rental car. A nil car clears the selection.
// Cars are deliberately trip-scoped rather than day-scoped: a rental covers
// a contiguous duration, unlike hotels which are chosen per night.
func (p Plan) SetCar(car *domain.Car) (Plan, error) {
	if car == nil {
		p.Car = nil
		return p, nil
	}
	if car.ID == "" {
		return p, fmt.Errorf("%w: car id is required", domain.ErrValidation)
	}
	c := *car
	p.Car = &c
	return p, nil
}

// SetCarNeeded records whether the traveller wants a car at all. The flag
// gates both the car step guard and the car's contribution to cost.
func (p Plan) SetCarNeeded(needed bool) Plan {
	p.CarNeeded = needed
	return p
}

// SetHotelsRequired toggles the per-night hotel requirement enforced by the
// hotels step guard.
func (p Plan) SetHotelsRequired(required bool) Plan {
	p.HotelsRequired = required
	return p
}

// SetDayNote records the freeform plan text for one day. Whitespace-only
// text clears the note.
func (p Plan) SetDayNote(day int, note string) (Plan, error) {
	if !p.validDay(day) {
		return p, fmt.Errorf("%w: day %d is outside the trip range", domain.ErrValidation, day+1)
	}
	notes := p.cloneNotes()
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		delete(notes, day)
	} else {
		notes[day] = trimmed
	}
	p.DayNotes = notes
	return p, nil
}

// SetPayment records the chosen payment method.
func (p Plan) SetPayment(method domain.PaymentMethod) (Plan, error) {
	if !domain.ValidPaymentMethod(method) {
		return p, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}
	p.Payment = method
	return p, nil
}
