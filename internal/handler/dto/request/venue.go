package request

import (
	"strings"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/patch"
)

// VenueSearchQuery is bound from the query string; absent values fall back
// to the "no constraint" defaults.
type VenueSearchQuery struct {
	Search      string   `form:"search" binding:"max=200"`
	Type        string   `form:"type"`
	Category    string   `form:"category"`
	Location    string   `form:"location"`
	PriceMin    *float64 `form:"price_min" binding:"omitempty,min=0"`
	PriceMax    *float64 `form:"price_max" binding:"omitempty,min=0"`
	CapacityMin *float64 `form:"capacity_min" binding:"omitempty,min=0"`
	CapacityMax *float64 `form:"capacity_max" binding:"omitempty,min=0"`
}

func (q VenueSearchQuery) ToDomain() venue.Criteria {
	c := venue.DefaultCriteria()
	c.SearchTerm = q.Search
	c.Type = venue.Type(choice(q.Type))
	c.Category = venue.Category(choice(q.Category))
	c.Location = venue.Location(choice(q.Location))
	c.PriceRange = venue.Range{
		Min: patch.Coalesce(q.PriceMin, c.PriceRange.Min),
		Max: patch.Coalesce(q.PriceMax, c.PriceRange.Max),
	}
	c.CapacityRange = venue.Range{
		Min: patch.Coalesce(q.CapacityMin, c.CapacityRange.Min),
		Max: patch.Coalesce(q.CapacityMax, c.CapacityRange.Max),
	}
	return c
}

// choice maps an absent value or any casing of the sentinel to venue.All.
func choice(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, venue.All) {
		return venue.All
	}
	return v
}
