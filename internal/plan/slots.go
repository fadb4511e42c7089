package plan

import (
	"fmt"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// AssignSlot stores activity at (day, slot). If the key already holds the
// same activity (by ID) the assignment is cleared instead; the toggle is a
// deliberate rule, matching the add/remove button the selection UI shows.
// A different activity at the key is replaced outright.
func (p Plan) AssignSlot(day int, slot TimeSlot, activity domain.Activity) (Plan, error) {
	if !p.validDay(day) {
		return p, fmt.Errorf("%w: day %d is outside the trip range", domain.ErrValidation, day+1)
	}
	if !ValidTimeSlot(slot) {
		return p, fmt.Errorf("%w: unknown time slot %q", domain.ErrValidation, slot)
	}
	if activity.ID == "" {
		return p, fmt.Errorf("%w: activity id is required", domain.ErrValidation)
	}

	key := SlotKey{Day: day, Slot: slot}
	slots := p.cloneSlots()
	if current, ok := slots[key]; ok && current.ID == activity.ID {
		delete(slots, key)
	} else {
		slots[key] = activity
	}
	p.Slots = slots
	return p, nil
}

// UnassignSlot removes the entry at (day, slot) unconditionally.
// Clearing an already-empty key is not an error.
func (p Plan) UnassignSlot(day int, slot TimeSlot) (Plan, error) {
	if !p.validDay(day) {
		return p, fmt.Errorf("%w: day %d is outside the trip range", domain.ErrValidation, day+1)
	}
	if !ValidTimeSlot(slot) {
		return p, fmt.Errorf("%w: unknown time slot %q", domain.ErrValidation, slot)
	}
	if _, ok := p.Slots[SlotKey{Day: day, Slot: slot}]; !ok {
		return p, nil
	}
	slots := p.cloneSlots()
	delete(slots, SlotKey{Day: day, Slot: slot})
	p.Slots = slots
	return p, nil
}

// SlotActivity returns the activity at (day, slot) and whether one is set.
func (p Plan) SlotActivity(day int, slot TimeSlot) (domain.Activity, bool) {
	a, ok := p.Slots[SlotKey{Day: day, Slot: slot}]
	return a, ok
}

// IsAssigned reports whether the given activity currently occupies
// (day, slot). Drives add/remove labeling in clients.
func (p Plan) IsAssigned(day int, slot TimeSlot, activityID string) bool {
	a, ok := p.Slots[SlotKey{Day: day, Slot: slot}]
	return ok && a.ID == activityID
}

// CountForDay returns the number of occupied slots for one day across all
// time slots. Used for per-day progress badges and the activities guard.
func (p Plan) CountForDay(day int) int {
	n := 0
	for _, slot := range TimeSlots {
		if _, ok := p.Slots[SlotKey{Day: day, Slot: slot}]; ok {
			n++
		}
	}
	return n
}
