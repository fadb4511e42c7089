package plan

import (
	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// Flow tags which planning variant a session uses. The two variants share
// the same step ladder and serialization; they differ in what the step
// guards demand (see validate.go).
type Flow string

const (
	// FlowScheduled is the slot/activity flow: attractions per time slot,
	// hotels per night, an optional trip-wide car.
	FlowScheduled Flow = "scheduled"
	// FlowFreeform is the day-text flow: one freeform plan line per day
	// plus a payment method, no slot scheduling.
	FlowFreeform Flow = "freeform"
)

// ValidFlow reports whether f is a known planning flow.
func ValidFlow(f Flow) bool {
	return f == FlowScheduled || f == FlowFreeform
}

// Step is one stage of the planning flow. Transitions move strictly one
// step forward or backward; Advance is gated by the current step's guard.
type Step int

const (
	StepWindow Step = iota
	StepActivities
	StepHotels
	StepCar
	StepReview
)

// String returns the lowercase step name used on the wire.
func (s Step) String() string {
	switch s {
	case StepWindow:
		return "window"
	case StepActivities:
		return "activities"
	case StepHotels:
		return "hotels"
	case StepCar:
		return "car"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// SlotKey identifies one (day index, time slot) cell of the schedule.
// At most one activity occupies a key.
type SlotKey struct {
	Day  int
	Slot TimeSlot
}

// Plan is the in-memory aggregate of all selections for one planning
// session. It is a value type: mutation methods return a new Plan and leave
// the receiver untouched. A Plan is exclusively owned by its session; the
// session store serializes access, so no locking lives here.
type Plan struct {
	Destination string
	Window      TripWindow
	Travelers   int
	Flow        Flow
	Step        Step

	// HotelsRequired gates the hotels step guard: when true, every day
	// must have a hotel before the plan can advance past StepHotels.
	HotelsRequired bool

	Slots     map[SlotKey]domain.Activity
	Hotels    map[int]domain.Hotel
	Car       *domain.Car
	CarNeeded bool

	DayNotes map[int]string
	Payment  domain.PaymentMethod
}

// New creates an empty plan for the given destination.
// Travelers below 1 is clamped to 1.
func New(destinationID string, travelers int, flow Flow) Plan {
	if travelers < 1 {
		travelers = 1
	}
	if !ValidFlow(flow) {
		flow = FlowScheduled
	}
	return Plan{
		Destination: destinationID,
		Travelers:   travelers,
		Flow:        flow,
		Step:        StepWindow,
	}
}

// SetWindow resolves the date strings into a window and resets all
// day-indexed state, since existing day indices are meaningless against a
// different date range. Invalid dates yield the empty window (zero days).
func (p Plan) SetWindow(start, end string) Plan {
	p.Window = ResolveWindow(start, end)
	p.Slots = nil
	p.Hotels = nil
	p.DayNotes = nil
	p.Step = StepWindow
	return p
}

// Days is shorthand for the window's day count.
func (p Plan) Days() int {
	return p.Window.Days()
}

// validDay reports whether day is a populated-range index.
func (p Plan) validDay(day int) bool {
	return day >= 0 && day < p.Days()
}

// cloneSlots returns a copy of the slot map, allocating when nil.
func (p Plan) cloneSlots() map[SlotKey]domain.Activity {
	out := make(map[SlotKey]domain.Activity, len(p.Slots)+1)
	for k, v := range p.Slots {
		out[k] = v
	}
	return out
}

// cloneHotels returns a copy of the hotel map, allocating when nil.
func (p Plan) cloneHotels() map[int]domain.Hotel {
	out := make(map[int]domain.Hotel, len(p.Hotels)+1)
	for k, v := range p.Hotels {
		out[k] = v
	}
	return out
}

// cloneNotes returns a copy of the day-note map, allocating when nil.
func (p Plan) cloneNotes() map[int]string {
	out := make(map[int]string, len(p.DayNotes)+1)
	for k, v := range p.DayNotes {
		out[k] = v
	}
	return out
}
