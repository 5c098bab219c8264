package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// BookingStore keeps submitted bookings in insertion order.
type BookingStore struct {
	logger  *slog.Logger
	clock   clock.Clock
	latency time.Duration

	mu       sync.RWMutex
	order    []string
	bookings map[string]booking.Booking
}

func NewBookingStore(logger *slog.Logger, clk clock.Clock, latency time.Duration) *BookingStore {
	return &BookingStore{
		logger:   logger,
		clock:    clk,
		latency:  latency,
		bookings: make(map[string]booking.Booking),
	}
}

func (s *BookingStore) SubmitBooking(ctx context.Context, sess auth.Session, d booking.Draft) (booking.Confirmation, error) {
	if sess.IsZero() {
		return booking.Confirmation{}, infra.WrapRepoErr(s.logger, infra.KindUnauthorized, "booking requires a signed-in user", nil)
	}
	if err := wait(ctx, s.latency); err != nil {
		return booking.Confirmation{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "submit booking interrupted", err)
	}

	b := booking.FromDraft(uuid.NewString(), sess.UserID(), d, s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
	s.order = append(s.order, b.ID)
	return booking.Confirmation{BookingID: b.ID}, nil
}

func (s *BookingStore) ListBookings(ctx context.Context, sess auth.Session) ([]booking.Booking, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "list bookings interrupted", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]booking.Booking, 0)
	for _, id := range s.order {
		if b := s.bookings[id]; b.UserID == sess.UserID() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingStore) GetBooking(ctx context.Context, _ auth.Session, id string) (booking.Booking, error) {
	if err := wait(ctx, s.latency); err != nil {
		return booking.Booking{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "get booking interrupted", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return booking.Booking{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (s *BookingStore) CancelBooking(ctx context.Context, _ auth.Session, id string) error {
	if err := wait(ctx, s.latency); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "cancel booking interrupted", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	delete(s.bookings, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Insert stores a booking as-is.
func (s *BookingStore) Insert(b booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID]; !ok {
		s.order = append(s.order, b.ID)
	}
	s.bookings[b.ID] = b
}
