//go:build unit || e2e

package builder

import (
	"venue-booking/internal/domain/venue"
)

type VenueBuilder struct {
	venue.Params
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		Params: venue.Params{
			ID:          2,
			Name:        "Garden Pavilion",
			Location:    venue.LocationCityPark,
			Type:        venue.TypeGarden,
			Categories:  []venue.Category{venue.CategoryWedding, venue.CategoryBirthday, venue.CategoryGraduation},
			Capacity:    200,
			Price:       1500,
			Rating:      4.8,
			ReviewCount: 95,
			Description: "Outdoor venue surrounded by gardens.",
			Features:    []string{"WiFi", "Parking"},
		},
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.New(b.Params)
}

// MustBuild panics on invalid params; for fixtures only.
func (b *VenueBuilder) MustBuild() *venue.Venue {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}

// Fluent builder methods
func (b *VenueBuilder) WithID(id venue.ID) *VenueBuilder {
	b.ID = id
	return b
}

func (b *VenueBuilder) WithName(name string) *VenueBuilder {
	b.Name = name
	return b
}

func (b *VenueBuilder) WithType(t venue.Type) *VenueBuilder {
	b.Type = t
	return b
}

func (b *VenueBuilder) WithLocation(l venue.Location) *VenueBuilder {
	b.Location = l
	return b
}

func (b *VenueBuilder) WithCategories(cs ...venue.Category) *VenueBuilder {
	b.Categories = cs
	return b
}

func (b *VenueBuilder) WithCapacity(capacity int) *VenueBuilder {
	b.Capacity = capacity
	return b
}

func (b *VenueBuilder) WithPrice(price float64) *VenueBuilder {
	b.Price = price
	return b
}

func (b *VenueBuilder) WithRating(rating float64) *VenueBuilder {
	b.Rating = rating
	return b
}

// GrandBallroom and GardenPavilion form the two-venue catalog used across tests.
func GrandBallroom() *venue.Venue {
	return NewVenueBuilder().With(func(b *VenueBuilder) {
		b.WithID(1).WithName("Grand Ballroom").WithType(venue.TypeWedding).
			WithLocation(venue.LocationDowntown).
			WithCategories(venue.CategoryWedding, venue.CategoryGalaDinner, venue.CategoryCorporate).
			WithCapacity(500).WithPrice(2000).WithRating(4.5)
	}).MustBuild()
}

func GardenPavilion() *venue.Venue {
	return NewVenueBuilder().MustBuild()
}
