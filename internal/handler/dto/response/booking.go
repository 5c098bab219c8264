package response

import (
	"time"

	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  string    `json:"id"`
	VenueID             int64     `json:"venue_id"`
	VenueName           string    `json:"venue_name"`
	StartDate           string    `json:"start_date"`
	EndDate             string    `json:"end_date"`
	DurationDays        int       `json:"duration_days"`
	Attendees           int       `json:"attendees"`
	EventType           string    `json:"event_type"`
	Purpose             string    `json:"purpose"`
	ContactName         string    `json:"contact_name"`
	ContactPhone        string    `json:"contact_phone"`
	ContactEmail        string    `json:"contact_email"`
	SpecialRequirements string    `json:"special_requirements,omitempty"`
	TotalPrice          float64   `json:"total_price"`
	Status              string    `json:"status"`
	CanCancel           bool      `json:"can_cancel"`
	CreatedAt           time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

func FromBookingViews(views []*queries.BookingView) BookingListResponse {
	bookings := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		var r BookingResponse
		_ = copier.Copy(&r, v)
		bookings = append(bookings, r)
	}
	return BookingListResponse{Bookings: bookings, Count: len(bookings)}
}
