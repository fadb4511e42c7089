package plan

import (
	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// Serialize converts the plan into the booking wire format: one entry per
// day with its date, optional hotel, and places in slot order, plus the
// trip-wide car block and the derived total. The transform is pure and
// produces the same shape for both planning flows.
//
// Serialize does not validate; callers that need a bookable plan run
// ValidateConfirm first.
func (p Plan) Serialize() domain.BookingDraft {
	days := p.Days()
	draft := domain.BookingDraft{
		DestinationID: p.Destination,
		Guests:        p.Travelers,
		CustomPlan:    make([]domain.DayPlan, 0, days),
		PaymentMethod: p.Payment,
		TotalCost:     p.Cost().Total,
	}
	if days == 0 {
		return draft
	}

	draft.StartDate = p.Window.Start.Format(dateLayout)
	draft.EndDate = p.Window.End.Format(dateLayout)

	for d := 0; d < days; d++ {
		entry := domain.DayPlan{
			Date:   p.Window.DayKey(d),
			Places: []domain.DayPlace{},
			Note:   p.DayNotes[d],
		}
		for _, slot := range TimeSlots {
			a, ok := p.Slots[SlotKey{Day: d, Slot: slot}]
			if !ok {
				continue
			}
			entry.Places = append(entry.Places, domain.DayPlace{
				PlaceID:  a.ID,
				Name:     a.Name,
				TimeSlot: string(slot),
				Price:    a.Price,
			})
		}
		if h, ok := p.Hotels[d]; ok {
			entry.Hotel = &domain.DayHotel{
				ID:     h.ID,
				Name:   h.Name,
				PerDay: h.PricePerNight,
			}
		}
		draft.CustomPlan = append(draft.CustomPlan, entry)
	}

	if p.CarNeeded && p.Car != nil {
		draft.CarRental = &domain.CarRental{
			CarID:           p.Car.ID,
			Model:           p.Car.Model,
			ProviderContact: p.Car.ProviderContact,
			PerDay:          p.Car.PricePerDay,
		}
	}

	return draft
}
