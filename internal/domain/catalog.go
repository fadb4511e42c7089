// Package domain contains the core data types for the Travella API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (plan, catalog, repo, service, handler).
package domain

// Destination is a bookable place fetched from the external catalog service.
// Catalog records are read-only reference data: the planner stores copies of
// them but never mutates them.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	BestSeason  string   `json:"best_season,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Activity is an attraction that can be scheduled into a time slot.
// Price may legitimately be zero (free attractions).
type Activity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TimeSlot      string  `json:"time_slot,omitempty"` // suggested slot from the catalog
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Category      string  `json:"category,omitempty"`
	Popular       bool    `json:"popular,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// Hotel is a per-night accommodation option.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities,omitempty"`
}

// Car is a rental vehicle. Unlike hotels, a car applies to the whole trip:
// it is rented for a contiguous duration, not per night.
type Car struct {
	ID              string  `json:"id"`
	Model           string  `json:"model"`
	Category        string  `json:"category,omitempty"`
	PricePerDay     float64 `json:"price_per_day"`
	ProviderContact string  `json:"provider_contact,omitempty"`
	Seats           int     `json:"seats,omitempty"`
}
