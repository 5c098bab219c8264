package response

import (
	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VenueResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Categories  []string `json:"categories"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"image_url"`
}

type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
	Count  int             `json:"count"`
}

type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FacetsResponse struct {
	Types         []string      `json:"types"`
	Categories    []string      `json:"categories"`
	Locations     []string      `json:"locations"`
	PriceRange    RangeResponse `json:"price_range"`
	CapacityRange RangeResponse `json:"capacity_range"`
}

func FromVenueView(v *queries.VenueView) VenueResponse {
	var r VenueResponse
	_ = copier.CopyWithOption(&r, v, copier.Option{DeepCopy: true})
	return r
}

func FromVenueViews(views []*queries.VenueView) VenueListResponse {
	venues := make([]VenueResponse, 0, len(views))
	for _, v := range views {
		venues = append(venues, FromVenueView(v))
	}
	return VenueListResponse{Venues: venues, Count: len(venues)}
}

func FromFacetsView(f queries.FacetsView) FacetsResponse {
	var r FacetsResponse
	_ = copier.CopyWithOption(&r, &f, copier.Option{DeepCopy: true})
	return r
}
