package plan

// Breakdown is the per-category cost view of a plan. Total is always the
// sum of the three categories.
type Breakdown struct {
	Activities float64 `json:"activities"`
	Hotels     float64 `json:"hotels"`
	Car        float64 `json:"car"`
	Total      float64 `json:"total"`
}

// Cost derives the cost breakdown from the current selections. It is a pure
// derivation, never a stored field, so totals cannot drift from the
// selections that produced them. Missing prices count as zero; the car
// contributes price-per-day × day count only when it is both wanted and
// chosen.
func (p Plan) Cost() Breakdown {
	var b Breakdown
	for _, a := range p.Slots {
		b.Activities += a.Price
	}
	for _, h := range p.Hotels {
		b.Hotels += h.PricePerNight
	}
	if p.CarNeeded && p.Car != nil {
		b.Car = p.Car.PricePerDay * float64(p.Days())
	}
	b.Total = b.Activities + b.Hotels + b.Car
	return b
}
