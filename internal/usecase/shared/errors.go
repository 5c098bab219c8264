package shared

import (
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
)

// ClassifyRepoErr marks a storage error with the error class handlers map
// to a status. Missing rows become NotFound; anything else is a load
// failure, which is retryable.
func ClassifyRepoErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrConflict)
	case infra.IsKind(err, infra.KindUnauthorized):
		return errs.Mark(errs.Wrap(err, msg), errs.ErrForbidden)
	default:
		return errs.Mark(errs.Wrap(err, msg), errs.ErrLoad)
	}
}
