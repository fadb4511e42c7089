// Package plan implements the trip plan builder: a pure, in-memory model of
// one planning session. Every mutation returns a new Plan value instead of
// modifying the receiver, so callers get cheap undo and deterministic tests.
// No I/O lives here: catalog data arrives as read-only copies and the
// serialized result is handed to the repo layer by the service.
package plan

import "time"

// dateLayout is the calendar date format used on every wire surface.
const dateLayout = "2006-01-02"

// TimeSlot is the unit of attraction scheduling within a day.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// TimeSlots lists all slots in display order. Serialization emits places
// in this order so output is stable regardless of assignment order.
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ValidTimeSlot reports whether s is one of the three known slots.
func ValidTimeSlot(s TimeSlot) bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// TripWindow is a resolved start/end date pair. The zero value is the empty
// window: zero days, no per-day structures. All day-indexed state in a Plan
// is keyed against the window's Days count.
type TripWindow struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow parses two calendar date strings into a TripWindow.
// Inputs are unconstrained: a missing or unparseable date, or end ≤ start,
// resolves to the empty window rather than an error. Downstream code treats
// the empty window as "no days yet", never as a failure.
func ResolveWindow(start, end string) TripWindow {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return TripWindow{}
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return TripWindow{}
	}
	if !e.After(s) {
		return TripWindow{}
	}
	return TripWindow{Start: s, End: e}
}

// Days returns the inclusive day count of the window: ceil(end−start) in
// days, clamped to ≥ 0. The zero window has zero days.
func (w TripWindow) Days() int {
	if w.Start.IsZero() || w.End.IsZero() {
		return 0
	}
	d := w.End.Sub(w.Start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 0 {
		return 0
	}
	return days
}

// DayDate returns the calendar date for a zero-based day index
// (start + i days). Callers must ensure 0 ≤ i < Days().
func (w TripWindow) DayDate(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// DayKey returns DayDate(i) formatted as "2006-01-02".
func (w TripWindow) DayKey(i int) string {
	return w.DayDate(i).Format(dateLayout)
}
