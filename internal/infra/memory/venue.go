package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
)

// VenueStore is an in-process venue catalog that answers after a fixed latency.
type VenueStore struct {
	logger  *slog.Logger
	latency time.Duration

	mu     sync.RWMutex
	venues []*venue.Venue
}

func NewVenueStore(logger *slog.Logger, latency time.Duration, seed []venue.Params) (*VenueStore, error) {
	venues := make([]*venue.Venue, 0, len(seed))
	for _, p := range seed {
		v, err := venue.New(p)
		if err != nil {
			return nil, errs.Wrapf(err, "seed venue %d", p.ID)
		}
		venues = append(venues, v)
	}
	return &VenueStore{logger: logger, latency: latency, venues: venues}, nil
}

func (s *VenueStore) ListVenues(ctx context.Context) ([]*venue.Venue, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "list venues interrupted", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*venue.Venue, len(s.venues))
	copy(out, s.venues)
	return out, nil
}

func (s *VenueStore) GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "get venue interrupted", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.venues {
		if v.ID() == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "venue not found", nil)
}

// Put inserts or replaces a venue, keeping catalog order.
func (s *VenueStore) Put(v *venue.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.venues {
		if existing.ID() == v.ID() {
			s.venues[i] = v
			return
		}
	}
	s.venues = append(s.venues, v)
}

func (s *VenueStore) Remove(id venue.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.venues {
		if v.ID() == id {
			s.venues = append(s.venues[:i], s.venues[i+1:]...)
			return
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
