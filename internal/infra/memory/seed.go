package memory

import (
	"context"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/password"
)

// SeedVenues is the catalog served by the memory driver.
func SeedVenues() []venue.Params {
	return []venue.Params{
		{
			ID:          1,
			Name:        "Grand Ballroom",
			ImageURL:    "https://source.unsplash.com/random/800x600/?ballroom",
			Location:    venue.LocationDowntown,
			Type:        venue.TypeWedding,
			Categories:  []venue.Category{venue.CategoryWedding, venue.CategoryGalaDinner, venue.CategoryCorporate},
			Capacity:    500,
			Price:       2000,
			Rating:      4.5,
			ReviewCount: 128,
			Description: "A luxurious ballroom perfect for elegant weddings and corporate events. Features crystal chandeliers, marble floors, and state-of-the-art sound system.",
			Features:    []string{"WiFi", "Parking", "Restaurant", "Accessible", "Audio/Visual Equipment", "Catering Service"},
		},
		{
			ID:          2,
			Name:        "Garden Pavilion",
			ImageURL:    "https://source.unsplash.com/random/800x600/?garden",
			Location:    venue.LocationCityPark,
			Type:        venue.TypeGarden,
			Categories:  []venue.Category{venue.CategoryWedding, venue.CategoryBirthday, venue.CategoryGraduation},
			Capacity:    200,
			Price:       1500,
			Rating:      4.8,
			ReviewCount: 95,
			Description: "Beautiful outdoor venue surrounded by lush gardens and scenic views. Perfect for intimate gatherings and outdoor celebrations.",
			Features:    []string{"WiFi", "Parking", "Outdoor Space", "Garden Access", "Photography Areas"},
		},
		{
			ID:          3,
			Name:        "Modern Conference Hall",
			ImageURL:    "https://source.unsplash.com/random/800x600/?conference",
			Location:    venue.LocationBusinessDistrict,
			Type:        venue.TypeConference,
			Categories:  []venue.Category{venue.CategoryConference, venue.CategoryCorporate, venue.CategoryWorkshop, venue.CategoryProductLaunch},
			Capacity:    300,
			Price:       1800,
			Rating:      4.3,
			ReviewCount: 156,
			Description: "State-of-the-art conference facility with modern amenities, perfect for business meetings, conferences, and professional events.",
			Features:    []string{"WiFi", "Parking", "Audio/Visual Equipment", "Projector", "Whiteboards", "Coffee Service"},
		},
		{
			ID:          4,
			Name:        "Riverside Restaurant",
			ImageURL:    "https://source.unsplash.com/random/800x600/?restaurant",
			Location:    "Riverside",
			Type:        venue.TypeRestaurant,
			Categories:  []venue.Category{venue.CategoryWedding, venue.CategoryBirthday, venue.CategoryCorporate, venue.CategoryGalaDinner},
			Capacity:    150,
			Price:       1200,
			Rating:      4.6,
			ReviewCount: 89,
			Description: "Elegant restaurant with stunning river views. Perfect for intimate gatherings and special occasions.",
			Features:    []string{"WiFi", "Parking", "Restaurant", "Riverside Views", "Private Dining"},
		},
		{
			ID:          5,
			Name:        "Community Hall",
			ImageURL:    "https://source.unsplash.com/random/800x600/?community-hall",
			Location:    venue.LocationSuburbs,
			Type:        venue.TypeCommunity,
			Categories:  []venue.Category{venue.CategoryBirthday, venue.CategoryGraduation, venue.CategoryWorkshop, "Community Event"},
			Capacity:    100,
			Price:       800,
			Rating:      4.2,
			ReviewCount: 67,
			Description: "Versatile community space suitable for various events. Affordable and accessible for local gatherings.",
			Features:    []string{"WiFi", "Parking", "Kitchen", "Accessible", "Flexible Layout"},
		},
		{
			ID:          6,
			Name:        "Exhibition Center",
			ImageURL:    "https://source.unsplash.com/random/800x600/?exhibition",
			Location:    venue.LocationBusinessDistrict,
			Type:        venue.TypeExhibition,
			Categories:  []venue.Category{venue.CategoryExhibition, venue.CategoryProductLaunch, venue.CategoryConference, "Trade Show"},
			Capacity:    1000,
			Price:       3000,
			Rating:      4.7,
			ReviewCount: 203,
			Description: "Large exhibition space with high ceilings and flexible layout. Ideal for trade shows, exhibitions, and large-scale events.",
			Features:    []string{"WiFi", "Parking", "Loading Docks", "Audio/Visual Equipment", "Exhibition Booths"},
		},
	}
}

// SeedUser is the demo account available on a fresh memory store.
type SeedUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func SeedUsers() []SeedUser {
	return []SeedUser{
		{Email: "test@example.com", Password: "password123", FirstName: "Test", LastName: "User"},
	}
}

type accountCreator interface {
	Create(ctx context.Context, u *user.User) error
}

// SeedAccounts creates each seed account in users. Accounts whose email is
// already registered are left alone.
func SeedAccounts(ctx context.Context, users accountCreator, seed []SeedUser, now time.Time) error {
	for _, su := range seed {
		email, err := user.NewEmail(su.Email)
		if err != nil {
			return errs.Wrapf(err, "seed user %s", su.Email)
		}
		// hashed directly so the demo password skips the strength rule
		hash, err := password.HashPassword(su.Password)
		if err != nil {
			return errs.Wrapf(err, "seed user %s", su.Email)
		}
		u, err := user.NewUser(email, hash, user.Profile{FirstName: su.FirstName, LastName: su.LastName}, now)
		if err != nil {
			return errs.Wrapf(err, "seed user %s", su.Email)
		}
		if err := users.Create(ctx, u); err != nil && !infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Wrapf(err, "seed user %s", su.Email)
		}
	}
	return nil
}
