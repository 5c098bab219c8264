package booking

import (
	"errors"
	"time"

	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

var ErrBookingCompleted = errors.New("completed bookings cannot be cancelled")

// Contact is who the venue reaches about a booking.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Draft is the immutable request handed to the submission port.
type Draft struct {
	venueID             venue.ID
	venueName           string
	dates               DateRange
	attendees           int
	eventType           venue.Category
	purpose             string
	contact             Contact
	specialRequirements string
	totalPrice          venue.Money
}

func (d Draft) VenueID() venue.ID           { return d.venueID }
func (d Draft) VenueName() string           { return d.venueName }
func (d Draft) Dates() DateRange            { return d.dates }
func (d Draft) Attendees() int              { return d.attendees }
func (d Draft) EventType() venue.Category   { return d.eventType }
func (d Draft) Purpose() string             { return d.purpose }
func (d Draft) Contact() Contact            { return d.contact }
func (d Draft) SpecialRequirements() string { return d.specialRequirements }
func (d Draft) TotalPrice() venue.Money     { return d.totalPrice }

// Confirmation is what the submission port returns on success.
type Confirmation struct {
	BookingID string
}

// Booking is a submitted booking as listed back to its owner.
type Booking struct {
	ID                  string
	UserID              uuid.UUID
	VenueID             venue.ID
	VenueName           string
	StartDate           Date
	EndDate             Date
	Attendees           int
	EventType           string
	Purpose             string
	ContactName         string
	ContactPhone        string
	ContactEmail        string
	SpecialRequirements string
	TotalPriceCents     int64
	CreatedAt           time.Time
}

// FromDraft builds the stored form of a confirmed draft.
func FromDraft(id string, userID uuid.UUID, d Draft, createdAt time.Time) Booking {
	return Booking{
		ID:                  id,
		UserID:              userID,
		VenueID:             d.VenueID(),
		VenueName:           d.VenueName(),
		StartDate:           d.Dates().Start(),
		EndDate:             d.Dates().End(),
		Attendees:           d.Attendees(),
		EventType:           string(d.EventType()),
		Purpose:             d.Purpose(),
		ContactName:         d.Contact().Name,
		ContactPhone:        d.Contact().Phone,
		ContactEmail:        d.Contact().Email,
		SpecialRequirements: d.SpecialRequirements(),
		TotalPriceCents:     d.TotalPrice().Cents(),
		CreatedAt:           createdAt,
	}
}

// Status falls back to Upcoming for stored rows with unusable dates.
func (b Booking) Status(today Date) Status {
	dates, err := NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return StatusUpcoming
	}
	return StatusOn(dates, today)
}

// CanCancel rejects cancellation once the booking has finished.
func (b Booking) CanCancel(today Date) error {
	if b.Status(today) == StatusCompleted {
		return ErrBookingCompleted
	}
	return nil
}
