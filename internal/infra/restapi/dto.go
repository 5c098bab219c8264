package restapi

import (
	"math"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// Wire shapes of the upstream API, camelCase as the API serves them.

type venueDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Categories  []string `json:"categories"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

func (d venueDTO) toDomain() (*venue.Venue, error) {
	categories := make([]venue.Category, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, venue.Category(c))
	}
	return venue.New(venue.Params{
		ID:          venue.ID(d.ID),
		Name:        d.Name,
		Location:    venue.Location(d.Location),
		Type:        venue.Type(d.Type),
		Categories:  categories,
		Capacity:    d.Capacity,
		Price:       d.Price,
		Rating:      d.Rating,
		ReviewCount: d.ReviewCount,
		Description: d.Description,
		Features:    d.Features,
		ImageURL:    d.Image,
	})
}

type bookingRequestDTO struct {
	VenueID             int64        `json:"venueId"`
	StartDate           booking.Date `json:"startDate"`
	EndDate             booking.Date `json:"endDate"`
	Attendees           int          `json:"attendees"`
	EventType           string       `json:"eventType"`
	Purpose             string       `json:"purpose"`
	ContactName         string       `json:"contactName"`
	ContactPhone        string       `json:"contactPhone"`
	ContactEmail        string       `json:"contactEmail"`
	SpecialRequirements string       `json:"specialRequirements,omitempty"`
	TotalPrice          float64      `json:"totalPrice"`
}

func newBookingRequest(d booking.Draft) bookingRequestDTO {
	return bookingRequestDTO{
		VenueID:             int64(d.VenueID()),
		StartDate:           d.Dates().Start(),
		EndDate:             d.Dates().End(),
		Attendees:           d.Attendees(),
		EventType:           string(d.EventType()),
		Purpose:             d.Purpose(),
		ContactName:         d.Contact().Name,
		ContactPhone:        d.Contact().Phone,
		ContactEmail:        d.Contact().Email,
		SpecialRequirements: d.SpecialRequirements(),
		TotalPrice:          d.TotalPrice().Amount(),
	}
}

type bookingCreatedDTO struct {
	ID string `json:"id"`
}

type bookingDTO struct {
	ID                  string       `json:"id"`
	UserID              uuid.UUID    `json:"userId"`
	VenueID             int64        `json:"venueId"`
	VenueName           string       `json:"venueName"`
	StartDate           booking.Date `json:"startDate"`
	EndDate             booking.Date `json:"endDate"`
	Attendees           int          `json:"attendees"`
	EventType           string       `json:"eventType"`
	Purpose             string       `json:"purpose"`
	ContactName         string       `json:"contactName"`
	ContactPhone        string       `json:"contactPhone"`
	ContactEmail        string       `json:"contactEmail"`
	SpecialRequirements string       `json:"specialRequirements"`
	TotalPrice          float64      `json:"totalPrice"`
	CreatedAt           time.Time    `json:"createdAt"`
}

func (d bookingDTO) toDomain() booking.Booking {
	return booking.Booking{
		ID:                  d.ID,
		UserID:              d.UserID,
		VenueID:             venue.ID(d.VenueID),
		VenueName:           d.VenueName,
		StartDate:           d.StartDate,
		EndDate:             d.EndDate,
		Attendees:           d.Attendees,
		EventType:           d.EventType,
		Purpose:             d.Purpose,
		ContactName:         d.ContactName,
		ContactPhone:        d.ContactPhone,
		ContactEmail:        d.ContactEmail,
		SpecialRequirements: d.SpecialRequirements,
		TotalPriceCents:     int64(math.Round(d.TotalPrice * 100)),
		CreatedAt:           d.CreatedAt,
	}
}
