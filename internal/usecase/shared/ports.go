package shared

import (
	"context"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// VenueCatalog is the read-only source of venues.
type VenueCatalog interface {
	ListVenues(ctx context.Context) ([]*venue.Venue, error)
	GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error)
}

// BookingGateway acts on bookings on behalf of an authenticated caller.
// SubmitBooking does not deduplicate.
type BookingGateway interface {
	SubmitBooking(ctx context.Context, s auth.Session, d booking.Draft) (booking.Confirmation, error)
	ListBookings(ctx context.Context, s auth.Session) ([]booking.Booking, error)
	GetBooking(ctx context.Context, s auth.Session, id string) (booking.Booking, error)
	CancelBooking(ctx context.Context, s auth.Session, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
