package booking

import (
	"context"

	"venue-booking/internal/domain/venue"
)

// VenueLookup resolves a catalog entry by id. A miss is reported with errs.ErrNotFound.
type VenueLookup interface {
	GetVenue(ctx context.Context, id venue.ID) (*venue.Venue, error)
}

// Submitter hands a confirmed draft to the backend. It does not deduplicate.
type Submitter interface {
	Submit(ctx context.Context, d Draft) (Confirmation, error)
}

type SubmitterFunc func(ctx context.Context, d Draft) (Confirmation, error)

func (f SubmitterFunc) Submit(ctx context.Context, d Draft) (Confirmation, error) {
	return f(ctx, d)
}
