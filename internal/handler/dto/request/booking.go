package request

import (
	"strings"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
)

// UpdateBookingSessionRequest is a partial update of the wizard fields.
// Omitted members are left as they are; an empty date clears it.
type UpdateBookingSessionRequest struct {
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	Attendees           *int    `json:"attendees" binding:"omitempty,min=0"`
	EventType           *string `json:"event_type"`
	Purpose             *string `json:"purpose"`
	ContactName         *string `json:"contact_name"`
	ContactPhone        *string `json:"contact_phone"`
	ContactEmail        *string `json:"contact_email"`
	SpecialRequirements *string `json:"special_requirements"`
}

func (r *UpdateBookingSessionRequest) ToDomain() (booking.Patch, error) {
	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return booking.Patch{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return booking.Patch{}, err
	}

	p := booking.Patch{
		StartDate:           start,
		EndDate:             end,
		Attendees:           r.Attendees,
		Purpose:             r.Purpose,
		ContactName:         r.ContactName,
		ContactPhone:        r.ContactPhone,
		ContactEmail:        r.ContactEmail,
		SpecialRequirements: r.SpecialRequirements,
	}
	if r.EventType != nil {
		c := venue.Category(strings.TrimSpace(*r.EventType))
		p.EventType = &c
	}
	return p, nil
}

func parseOptionalDate(s *string) (*booking.Date, error) {
	if s == nil {
		return nil, nil
	}
	if strings.TrimSpace(*s) == "" {
		return &booking.Date{}, nil
	}
	d, err := booking.ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type ListBookingsQuery struct {
	Status string `form:"status"`
}

// ToDomain returns nil when no status tab is selected.
func (q ListBookingsQuery) ToDomain() (*booking.Status, error) {
	if strings.TrimSpace(q.Status) == "" {
		return nil, nil
	}
	s, err := booking.ParseStatus(q.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
