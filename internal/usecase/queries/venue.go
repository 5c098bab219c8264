package queries

import (
	"context"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrVenueNotFound   = errs.New("venue not found")
	ErrInvalidCriteria = errs.New("invalid filter criteria")
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

type VenueQueries interface {
	Search(ctx context.Context, criteria venue.Criteria) ([]*VenueView, error)
	GetByID(ctx context.Context, id venue.ID) (*VenueView, error)
	Facets() FacetsView
}

type venueQueriesImpl struct {
	catalog shared.VenueCatalog
}

func NewVenueQueries(catalog shared.VenueCatalog) VenueQueries {
	return &venueQueriesImpl{catalog: catalog}
}

// Search loads the catalog and keeps the venues matching every criterion,
// in catalog order.
func (q *venueQueriesImpl) Search(ctx context.Context, criteria venue.Criteria) ([]*VenueView, error) {
	if err := criteria.Validate(); err != nil {
		return nil, errs.MarkAll(errs.Wrap(err, ErrInvalidCriteria.Error()), ErrInvalidCriteria, errs.ErrValidation)
	}

	catalog, err := q.catalog.ListVenues(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load venue catalog"), errs.ErrLoad)
	}

	matched := venue.Filter(catalog, criteria)
	views := make([]*VenueView, 0, len(matched))
	for _, v := range matched {
		views = append(views, ToVenueView(v))
	}
	return views, nil
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id venue.ID) (*VenueView, error) {
	v, err := q.catalog.GetVenue(ctx, id)
	if err != nil {
		err = shared.ClassifyRepoErr(err, "get venue")
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.MarkAll(err, ErrVenueNotFound)
		}
		return nil, err
	}
	return ToVenueView(v), nil
}

func (q *venueQueriesImpl) Facets() FacetsView {
	f := venue.KnownFacets()
	view := FacetsView{
		Types:         make([]string, 0, len(f.Types)),
		Categories:    make([]string, 0, len(f.Categories)),
		Locations:     make([]string, 0, len(f.Locations)),
		PriceRange:    RangeView{Min: f.PriceRange.Min, Max: f.PriceRange.Max},
		CapacityRange: RangeView{Min: f.CapacityRange.Min, Max: f.CapacityRange.Max},
	}
	for _, t := range f.Types {
		view.Types = append(view.Types, string(t))
	}
	for _, c := range f.Categories {
		view.Categories = append(view.Categories, string(c))
	}
	for _, l := range f.Locations {
		view.Locations = append(view.Locations, string(l))
	}
	return view
}
