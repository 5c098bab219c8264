package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking belongs to another user")
	ErrBookingFinished  = errs.New("booking cannot be cancelled")
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

type BookingCommands interface {
	Cancel(ctx context.Context, s auth.Session, bookingID string) error
}

type bookingCommandsImpl struct {
	gateway shared.BookingGateway
	clock   clock.Clock
	cfg     config.BookingConfig
	logger  *slog.Logger
}

func NewBookingCommands(gateway shared.BookingGateway, clk clock.Clock, cfg config.Config, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		gateway: gateway,
		clock:   clk,
		cfg:     cfg.Booking,
		logger:  logger,
	}
}

// Cancel removes one of the caller's own bookings unless it has already ended.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, s auth.Session, bookingID string) error {
	b, err := c.gateway.GetBooking(ctx, s, bookingID)
	if err != nil {
		err = shared.ClassifyRepoErr(err, "get booking")
		if errs.Is(err, errs.ErrNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return err
	}

	if b.UserID != s.UserID() {
		return errs.MarkAll(ErrBookingForbidden, errs.ErrForbidden)
	}

	today := booking.DateOf(c.clock.Now(), c.cfg.Location())
	if err := b.CanCancel(today); err != nil {
		return errs.MarkAll(errs.Wrap(err, ErrBookingFinished.Error()), ErrBookingFinished, errs.ErrConflict)
	}

	if err := c.gateway.CancelBooking(ctx, s, bookingID); err != nil {
		return shared.ClassifyRepoErr(err, "cancel booking")
	}

	c.logger.Info("booking cancelled", "booking_id", bookingID, "user_id", s.UserID())
	return nil
}
