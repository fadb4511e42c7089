package catalog

import (
	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// The upstream catalog's record shapes drifted across service versions:
// ids arrive as "_id" or "id", prices as "price", "pricePerNight",
// "pricePerDay", or "perDay", names as "name", "model", or "place_name".
// Raw types below accept every observed alias and normalize before anything
// reaches the plan core, so field-name drift never leaks past this package.

type rawDestination struct {
	MongoID     string   `json:"_id"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	BestSeason  string   `json:"bestSeason"`
	Images      []string `json:"images"`
	Image       string   `json:"image"`
}

type rawHotel struct {
	MongoID       string   `json:"_id"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Location      string   `json:"location"`
	Rating        float64  `json:"rating"`
	Price         float64  `json:"price"`
	PricePerNight float64  `json:"pricePerNight"`
	PerDay        float64  `json:"perDay"`
	Amenities     []string `json:"amenities"`
}

type rawCar struct {
	MongoID         string  `json:"_id"`
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Model           string  `json:"model"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	PricePerDay     float64 `json:"pricePerDay"`
	PerDay          float64 `json:"perDay"`
	ProviderContact string  `json:"providerContact"`
	Seats           int     `json:"seats"`
}

type rawPlace struct {
	MongoID       string  `json:"_id"`
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PlaceName     string  `json:"place_name"`
	TimeSlot      string  `json:"time_slot"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours"`
	Rating        float64 `json:"rating"`
	Category      string  `json:"category"`
	Popular       bool    `json:"popular"`
	ImageURL      string  `json:"image_url"`
}

// firstString returns the first non-empty string.
func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstPrice returns the first positive price, defaulting to 0: a missing
// price is data, not an error.
func firstPrice(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func (r rawDestination) normalize() domain.Destination {
	images := r.Images
	if len(images) == 0 && r.Image != "" {
		images = []string{r.Image}
	}
	return domain.Destination{
		ID:          firstString(r.MongoID, r.ID),
		Name:        r.Name,
		City:        r.City,
		Country:     r.Country,
		Description: r.Description,
		Tags:        r.Tags,
		BestSeason:  r.BestSeason,
		Images:      images,
	}
}

func (r rawHotel) normalize() domain.Hotel {
	return domain.Hotel{
		ID:            firstString(r.MongoID, r.ID),
		Name:          r.Name,
		City:          firstString(r.City, r.Location),
		Country:       r.Country,
		Rating:        r.Rating,
		PricePerNight: firstPrice(r.PricePerNight, r.Price, r.PerDay),
		Amenities:     r.Amenities,
	}
}

func (r rawCar) normalize() domain.Car {
	return domain.Car{
		ID:              firstString(r.MongoID, r.ID),
		Model:           firstString(r.Model, r.Name),
		Category:        firstString(r.Category, r.Type),
		PricePerDay:     firstPrice(r.PricePerDay, r.Price, r.PerDay),
		ProviderContact: r.ProviderContact,
		Seats:           r.Seats,
	}
}

func (r rawPlace) normalize() domain.Activity {
	return domain.Activity{
		ID:            firstString(r.MongoID, r.ID),
		Name:          firstString(r.PlaceName, r.Name),
		TimeSlot:      r.TimeSlot,
		Price:         firstPrice(r.Price),
		DurationHours: r.DurationHours,
		Rating:        r.Rating,
		Category:      r.Category,
		Popular:       r.Popular,
		ImageURL:      r.ImageURL,
	}
}
