package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"

	"github.com/google/uuid"
)

// VenueCatalog reads venues from the upstream API anonymously.
type VenueCatalog struct {
	client *Client
}

func NewVenueCatalog(client *Client) *VenueCatalog {
	return &VenueCatalog{client: client}
}

func (c *VenueCatalog) ListVenues(ctx context.Context) ([]*venue.Venue, error) {
	var dtos []venueDTO
	if err := c.client.do(ctx, auth.Session{}, http.MethodGet, "/api/venues", nil, &dtos); err != nil {
		return nil, err
	}

	venues := make([]*venue.Venue, 0, len(dtos))
	for _, d := range dtos {
		v, err := d.toDomain()
		if err != nil {
			// skip catalog entries that break venue invariants
			c.client.logger.Warn("dropping invalid upstream venue", "venue_id", d.ID, "error", err.Error())
			continue
		}
		venues = append(venues, v)
	}
	return venues, nil
}

func (c *VenueCatalog) GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error) {
	var d venueDTO
	if err := c.client.do(ctx, auth.Session{}, http.MethodGet, fmt.Sprintf("/api/venues/%d", id), nil, &d); err != nil {
		return nil, err
	}
	v, err := d.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(c.client.logger, infra.KindUpstream, "invalid upstream venue", err)
	}
	return v, nil
}

// BookingGateway forwards booking calls with the caller's bearer token.
type BookingGateway struct {
	client *Client
}

func NewBookingGateway(client *Client) *BookingGateway {
	return &BookingGateway{client: client}
}

func (g *BookingGateway) SubmitBooking(ctx context.Context, s auth.Session, d booking.Draft) (booking.Confirmation, error) {
	var created bookingCreatedDTO
	if err := g.client.do(ctx, s, http.MethodPost, "/api/bookings", newBookingRequest(d), &created); err != nil {
		return booking.Confirmation{}, err
	}
	return booking.Confirmation{BookingID: created.ID}, nil
}

func (g *BookingGateway) ListBookings(ctx context.Context, s auth.Session) ([]booking.Booking, error) {
	var dtos []bookingDTO
	if err := g.client.do(ctx, s, http.MethodGet, "/api/bookings", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]booking.Booking, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, g.owned(s, d))
	}
	return out, nil
}

func (g *BookingGateway) GetBooking(ctx context.Context, s auth.Session, id string) (booking.Booking, error) {
	var d bookingDTO
	if err := g.client.do(ctx, s, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, &d); err != nil {
		return booking.Booking{}, err
	}
	return g.owned(s, d), nil
}

func (g *BookingGateway) CancelBooking(ctx context.Context, s auth.Session, id string) error {
	return g.client.do(ctx, s, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), nil, nil)
}

// owned attributes a booking without an owner to the caller, since the
// upstream only returns the caller's own bookings.
func (g *BookingGateway) owned(s auth.Session, d bookingDTO) booking.Booking {
	b := d.toDomain()
	if b.UserID == uuid.Nil {
		b.UserID = s.UserID()
	}
	return b
}
