//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// Today is the fixed "current" date the booking fixtures are valid against.
var Today = time.Date(2024, time.May, 20, 10, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	booking.Fields
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Fields: booking.Fields{
			StartDate:           booking.NewDate(2024, time.June, 1),
			EndDate:             booking.NewDate(2024, time.June, 3),
			Attendees:           150,
			EventType:           venue.CategoryWedding,
			Purpose:             "Wedding reception",
			ContactName:         "Jane Doe",
			ContactPhone:        "+1 555 0100",
			ContactEmail:        "jane@example.com",
			SpecialRequirements: "Vegetarian menu",
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildFields() booking.Fields {
	return b.Fields
}

// EventDetailsPatch sets only the first step's fields.
func (b *BookingBuilder) EventDetailsPatch() booking.Patch {
	f := b.Fields
	return booking.Patch{
		StartDate: &f.StartDate,
		EndDate:   &f.EndDate,
		Attendees: &f.Attendees,
		EventType: &f.EventType,
		Purpose:   &f.Purpose,
	}
}

// ContactPatch sets only the second step's fields.
func (b *BookingBuilder) ContactPatch() booking.Patch {
	f := b.Fields
	return booking.Patch{
		ContactName:         &f.ContactName,
		ContactPhone:        &f.ContactPhone,
		ContactEmail:        &f.ContactEmail,
		SpecialRequirements: &f.SpecialRequirements,
	}
}

func (b *BookingBuilder) BuildDraft(v *venue.Venue) (booking.Draft, error) {
	return booking.BuildDraft(v, b.Fields, booking.DateOf(Today, time.UTC))
}

func (b *BookingBuilder) BuildRecord(v *venue.Venue, userID uuid.UUID) booking.Booking {
	d, err := b.BuildDraft(v)
	if err != nil {
		panic(err)
	}
	return booking.FromDraft(uuid.NewString(), userID, d, Today)
}

// Fluent builder methods
func (b *BookingBuilder) WithDates(start, end booking.Date) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithAttendees(n int) *BookingBuilder {
	b.Attendees = n
	return b
}

func (b *BookingBuilder) WithEventType(c venue.Category) *BookingBuilder {
	b.EventType = c
	return b
}

func (b *BookingBuilder) WithPurpose(p string) *BookingBuilder {
	b.Purpose = p
	return b
}

func (b *BookingBuilder) WithContactEmail(email string) *BookingBuilder {
	b.ContactEmail = email
	return b
}

func (b *BookingBuilder) WithContactName(name string) *BookingBuilder {
	b.ContactName = name
	return b
}
