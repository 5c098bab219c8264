package venue

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID       = errors.New("venue id must be positive")
	ErrEmptyName       = errors.New("venue name is required")
	ErrInvalidCapacity = errors.New("venue capacity must be positive")
	ErrInvalidPrice    = errors.New("venue price must not be negative")
	ErrInvalidRating   = errors.New("venue rating must be between 0 and 5")
)

type ID int64

// Venue is a read-only catalog entry.
type Venue struct {
	id          ID
	name        string
	location    Location
	venueType   Type
	categories  []Category
	capacity    int
	price       Money
	rating      float64
	reviewCount int
	description string
	features    []string
	imageURL    string
}

// Params carries the raw catalog fields a Venue is built from.
type Params struct {
	ID          ID
	Name        string
	Location    Location
	Type        Type
	Categories  []Category
	Capacity    int
	Price       float64
	Rating      float64
	ReviewCount int
	Description string
	Features    []string
	ImageURL    string
}

func New(p Params) (*Venue, error) {
	if p.ID <= 0 {
		return nil, ErrInvalidID
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if p.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	price, err := NewMoney(p.Price)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Venue{
		id:          p.ID,
		name:        name,
		location:    p.Location,
		venueType:   p.Type,
		categories:  append([]Category(nil), p.Categories...),
		capacity:    p.Capacity,
		price:       price,
		rating:      p.Rating,
		reviewCount: p.ReviewCount,
		description: p.Description,
		features:    append([]string(nil), p.Features...),
		imageURL:    p.ImageURL,
	}, nil
}

func (v *Venue) ID() ID               { return v.id }
func (v *Venue) Name() string         { return v.name }
func (v *Venue) Location() Location   { return v.location }
func (v *Venue) Type() Type           { return v.venueType }
func (v *Venue) Capacity() int        { return v.capacity }
func (v *Venue) Price() Money         { return v.price }
func (v *Venue) Rating() float64      { return v.rating }
func (v *Venue) ReviewCount() int     { return v.reviewCount }
func (v *Venue) Description() string  { return v.description }
func (v *Venue) ImageURL() string     { return v.imageURL }
func (v *Venue) Categories() []Category {
	return append([]Category(nil), v.categories...)
}
func (v *Venue) Features() []string {
	return append([]string(nil), v.features...)
}

func (v *Venue) HasCategory(c Category) bool {
	for _, own := range v.categories {
		if own == c {
			return true
		}
	}
	return false
}

// Params returns the fields v was built from.
func (v *Venue) Params() Params {
	return Params{
		ID:          v.id,
		Name:        v.name,
		Location:    v.location,
		Type:        v.venueType,
		Categories:  v.Categories(),
		Capacity:    v.capacity,
		Price:       v.price.Amount(),
		Rating:      v.rating,
		ReviewCount: v.reviewCount,
		Description: v.description,
		Features:    v.Features(),
		ImageURL:    v.imageURL,
	}
}
