package venue

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRange    = errors.New("range minimum must not exceed maximum")
	ErrUnknownCategory = errors.New("category is not a selectable filter value")
)

const (
	DefaultPriceMax    = 5000
	DefaultCapacityMax = 1000
)

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Validate() error {
	if r.Min > r.Max {
		return ErrInvalidRange
	}
	return nil
}

// Criteria is the set of simultaneous constraints applied to a catalog.
type Criteria struct {
	SearchTerm    string
	Type          Type
	Category      Category
	Location      Location
	PriceRange    Range
	CapacityRange Range
}

func DefaultCriteria() Criteria {
	return Criteria{
		Type:          All,
		Category:      All,
		Location:      All,
		PriceRange:    Range{Min: 0, Max: DefaultPriceMax},
		CapacityRange: Range{Min: 0, Max: DefaultCapacityMax},
	}
}

// Validate rejects inverted ranges and categories outside the known set.
// Venues may still carry unknown tags; they just cannot be filtered on.
func (c Criteria) Validate() error {
	if c.Category != All && !c.Category.IsKnown() {
		return ErrUnknownCategory
	}
	if err := c.PriceRange.Validate(); err != nil {
		return err
	}
	return c.CapacityRange.Validate()
}

// Matches reports whether v satisfies every predicate of c.
func (c Criteria) Matches(v *Venue) bool {
	return c.matchesSearch(v) &&
		(c.Type == All || v.Type() == c.Type) &&
		(c.Category == All || v.HasCategory(c.Category)) &&
		(c.Location == All || v.Location() == c.Location) &&
		c.PriceRange.Contains(v.Price().Amount()) &&
		c.CapacityRange.Contains(float64(v.Capacity()))
}

func (c Criteria) matchesSearch(v *Venue) bool {
	if c.SearchTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name()), strings.ToLower(c.SearchTerm))
}

// Filter returns the venues of catalog matching c, in catalog order.
// The result is never nil and shares no backing array with catalog.
func Filter(catalog []*Venue, c Criteria) []*Venue {
	out := make([]*Venue, 0, len(catalog))
	for _, v := range catalog {
		if v != nil && c.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
