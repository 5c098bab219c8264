package queries

import (
	"context"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type BookingQueries interface {
	// ListByStatus returns the caller's bookings, narrowed to one status when status is non-nil.
	ListByStatus(ctx context.Context, s auth.Session, status *booking.Status) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	gateway shared.BookingGateway
	clock   clock.Clock
	cfg     config.BookingConfig
}

func NewBookingQueries(gateway shared.BookingGateway, clk clock.Clock, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{
		gateway: gateway,
		clock:   clk,
		cfg:     cfg.Booking,
	}
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, s auth.Session, status *booking.Status) ([]*BookingView, error) {
	bookings, err := q.gateway.ListBookings(ctx, s)
	if err != nil {
		return nil, shared.ClassifyRepoErr(err, "list bookings")
	}

	today := booking.DateOf(q.clock.Now(), q.cfg.Location())
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		if status != nil && b.Status(today) != *status {
			continue
		}
		views = append(views, ToBookingView(b, today))
	}
	return views, nil
}
