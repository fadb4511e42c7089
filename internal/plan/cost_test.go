package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
	"github.com/THIRUSELVAN-V/travellaV2/internal/plan"
)

func carFixture(id string, perDay float64) domain.Car {
	return domain.Car{ID: id, Model: "Car " + id, PricePerDay: perDay}
}

// TestCost_ActivityAndHotels covers the worked scenario: two days, one $10
// activity on day 0, a $100/night hotel on both nights, no car ⇒ $210.
func TestCost_ActivityAndHotels(t *testing.T) {
	p := twoDayPlan(t)

	var err error
	p, err = p.AssignSlot(0, plan.SlotMorning, activityFixture("a1", 10))
	require.NoError(t, err)
	h := hotelFixture("h1", 100)
	p, err = p.SetHotel(0, &h)
	require.NoError(t, err)
	p, err = p.SetHotel(1, &h)
	require.NoError(t, err)

	b := p.Cost()
	assert.Equal(t, 10.0, b.Activities)
	assert.Equal(t, 200.0, b.Hotels)
	assert.Equal(t, 0.0, b.Car)
	assert.Equal(t, 210.0, b.Total)
}

// TestCost_WithCar extends the scenario with a needed $50/day car over the
// two-day trip ⇒ $310.
func TestCost_WithCar(t *testing.T) {
	p := twoDayPlan(t)

	var err error
	p, err = p.AssignSlot(0, plan.SlotMorning, activityFixture("a1", 10))
	require.NoError(t, err)
	h := hotelFixture("h1", 100)
	p, err = p.SetHotel(0, &h)
	require.NoError(t, err)
	p, err = p.SetHotel(1, &h)
	require.NoError(t, err)

	car := carFixture("c1", 50)
	p, err = p.SetCar(&car)
	require.NoError(t, err)
	p = p.SetCarNeeded(true)

	b := p.Cost()
	assert.Equal(t, 100.0, b.Car)
	assert.Equal(t, 310.0, b.Total)
}

func TestCost_CarIgnoredUnlessNeeded(t *testing.T) {
	p := twoDayPlan(t)

	car := carFixture("c1", 50)
	p, err := p.SetCar(&car)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Cost().Total, "car selected but not needed must not count")

	p = p.SetCarNeeded(true)
	assert.Equal(t, 100.0, p.Cost().Total)
}

func TestCost_CarNeededWithoutSelection(t *testing.T) {
	p := twoDayPlan(t)
	p = p.SetCarNeeded(true)

	assert.Equal(t, 0.0, p.Cost().Total)
}

func TestCost_MissingPricesDefaultToZero(t *testing.T) {
	p := twoDayPlan(t)

	p, err := p.AssignSlot(0, plan.SlotMorning, domain.Activity{ID: "free", Name: "City walk"})
	require.NoError(t, err)
	h := domain.Hotel{ID: "h0", Name: "Couch"}
	p, err = p.SetHotel(0, &h)
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Cost().Total)
}

// TestCost_OrderInvariant verifies the reducer property: any operation
// sequence ending in the same final selections yields the same total.
func TestCost_OrderInvariant(t *testing.T) {
	hotelA := hotelFixture("hA", 120)
	hotelB := hotelFixture("hB", 90)

	// Path 1: select A, clear, then select B for day 0.
	p1 := twoDayPlan(t)
	var err error
	p1, err = p1.SetHotel(0, &hotelA)
	require.NoError(t, err)
	p1, err = p1.SetHotel(0, nil)
	require.NoError(t, err)
	p1, err = p1.SetHotel(0, &hotelB)
	require.NoError(t, err)

	// Path 2: select B directly.
	p2 := twoDayPlan(t)
	p2, err = p2.SetHotel(0, &hotelB)
	require.NoError(t, err)

	assert.Equal(t, p2.Cost(), p1.Cost())
	assert.Equal(t, 90.0, p1.Cost().Total)
}

func TestCost_Idempotent(t *testing.T) {
	p := twoDayPlan(t)
	p, err := p.AssignSlot(0, plan.SlotMorning, activityFixture("a1", 42))
	require.NoError(t, err)

	first := p.Cost()
	second := p.Cost()
	assert.Equal(t, first, second)
}
