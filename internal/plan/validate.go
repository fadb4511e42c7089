package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// StepError reports a failed step guard. MissingDays holds the 1-based day
// numbers still blocking the step, so clients can point the user at exactly
// the days that need fixing. It satisfies errors.Is against
// domain.ErrValidation so handlers map it to HTTP 422.
type StepError struct {
	Step        Step
	Reason      string
	MissingDays []int
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Step, e.Reason)
	if len(e.MissingDays) > 0 {
		days := make([]string, len(e.MissingDays))
		for i, d := range e.MissingDays {
			days[i] = strconv.Itoa(d)
		}
		msg += " (day " + strings.Join(days, ", ") + ")"
	}
	return msg
}

// Is makes errors.Is(err, domain.ErrValidation) true for all step errors.
func (e *StepError) Is(target error) bool {
	return target == domain.ErrValidation
}

// CheckStep runs the guard for one step without changing the plan.
// A nil return means the step is satisfied and the plan may advance past it.
func (p Plan) CheckStep(step Step) error {
	switch step {
	case StepWindow:
		if p.Days() < 1 {
			return &StepError{
				Step:   StepWindow,
				Reason: "select a valid date range (end date after start date)",
			}
		}
	case StepActivities:
		if p.Flow == FlowFreeform {
			if missing := p.daysWithoutNote(); len(missing) > 0 {
				return &StepError{
					Step:        StepActivities,
					Reason:      "add a plan for every day",
					MissingDays: missing,
				}
			}
			return nil
		}
		if missing := p.daysWithoutActivity(); len(missing) > 0 {
			return &StepError{
				Step:        StepActivities,
				Reason:      "schedule at least one activity for every day",
				MissingDays: missing,
			}
		}
	case StepHotels:
		if p.Flow == FlowFreeform || !p.HotelsRequired {
			return nil
		}
		if missing := p.daysWithoutHotel(); len(missing) > 0 {
			return &StepError{
				Step:        StepHotels,
				Reason:      "choose a hotel for every night",
				MissingDays: missing,
			}
		}
	case StepCar:
		if p.Flow == FlowFreeform {
			return nil
		}
		if p.CarNeeded && p.Car == nil {
			return &StepError{
				Step:   StepCar,
				Reason: "select a rental car or mark the car as not needed",
			}
		}
	case StepReview:
		return nil
	}
	return nil
}

// Advance moves the plan one step forward after the current step's guard
// passes. A failed guard blocks the transition and leaves all selections
// untouched; the caller fixes the reported days and retries.
func (p Plan) Advance() (Plan, error) {
	if p.Step >= StepReview {
		return p, fmt.Errorf("%w: already at the review step", domain.ErrValidation)
	}
	if err := p.CheckStep(p.Step); err != nil {
		return p, err
	}
	p.Step++
	return p, nil
}

// Back moves the plan one step backward. Going back never requires a guard
// and is a no-op at the first step.
func (p Plan) Back() Plan {
	if p.Step > StepWindow {
		p.Step--
	}
	return p
}

// ValidateConfirm runs every guard in order, plus the flow-specific confirm
// rules, regardless of the current step. It is the gate before
// serialization and booking creation.
func (p Plan) ValidateConfirm() error {
	for _, step := range []Step{StepWindow, StepActivities, StepHotels, StepCar} {
		if err := p.CheckStep(step); err != nil {
			return err
		}
	}
	if p.Flow == FlowFreeform && p.Payment == "" {
		return &StepError{
			Step:   StepReview,
			Reason: "select a payment method",
		}
	}
	return nil
}

// daysWithoutActivity returns the 1-based day numbers with zero occupied
// slots, in ascending order.
func (p Plan) daysWithoutActivity() []int {
	var missing []int
	for d := 0; d < p.Days(); d++ {
		if p.CountForDay(d) == 0 {
			missing = append(missing, d+1)
		}
	}
	return missing
}

// daysWithoutHotel returns the 1-based day numbers with no hotel selected.
func (p Plan) daysWithoutHotel() []int {
	var missing []int
	for d := 0; d < p.Days(); d++ {
		if _, ok := p.Hotels[d]; !ok {
			missing = append(missing, d+1)
		}
	}
	return missing
}

// daysWithoutNote returns the 1-based day numbers with no plan text.
func (p Plan) daysWithoutNote() []int {
	var missing []int
	for d := 0; d < p.Days(); d++ {
		if strings.TrimSpace(p.DayNotes[d]) == "" {
			missing = append(missing, d+1)
		}
	}
	return missing
}
