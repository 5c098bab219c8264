package queries

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// VenueView represents read-optimized venue data
type VenueView struct {
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

type RangeView struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacetsView lists the values a client can offer as filters
type FacetsView struct {
	Types         []string  `json:"types"`
	Categories    []string  `json:"categories"`
	Locations     []string  `json:"locations"`
	PriceRange    RangeView `json:"price_range"`
	CapacityRange RangeView `json:"capacity_range"`
}

// BookingView is a submitted booking with its status as of today
type BookingView struct {
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
	SpecialRequirements string    `json:"special_requirements"`
	TotalPrice          float64   `json:"total_price"`
	Status              string    `json:"status"`
	CanCancel           bool      `json:"can_cancel"`
	CreatedAt           time.Time `json:"created_at"`
}

type NotificationsView struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

// UserView is the account as shown on the settings page
type UserView struct {
	ID            uuid.UUID         `json:"id"`
	Email         string            `json:"email"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Phone         string            `json:"phone"`
	Location      string            `json:"location"`
	Bio           string            `json:"bio"`
	Notifications NotificationsView `json:"notifications"`
	CreatedAt     time.Time         `json:"created_at"`
}

func ToVenueView(v *venue.Venue) *VenueView {
	categories := make([]string, 0, len(v.Categories()))
	for _, c := range v.Categories() {
		categories = append(categories, string(c))
	}
	return &VenueView{
		ID:          int64(v.ID()),
		Name:        v.Name(),
		Location:    string(v.Location()),
		Type:        string(v.Type()),
		Categories:  categories,
		Capacity:    v.Capacity(),
		Price:       v.Price().Amount(),
		Rating:      v.Rating(),
		ReviewCount: v.ReviewCount(),
		Description: v.Description(),
		Features:    v.Features(),
		ImageURL:    v.ImageURL(),
	}
}

func ToBookingView(b booking.Booking, today booking.Date) *BookingView {
	view := &BookingView{
		ID:                  b.ID,
		VenueID:             int64(b.VenueID),
		VenueName:           b.VenueName,
		StartDate:           b.StartDate.String(),
		EndDate:             b.EndDate.String(),
		Attendees:           b.Attendees,
		EventType:           b.EventType,
		Purpose:             b.Purpose,
		ContactName:         b.ContactName,
		ContactPhone:        b.ContactPhone,
		ContactEmail:        b.ContactEmail,
		SpecialRequirements: b.SpecialRequirements,
		TotalPrice:          float64(b.TotalPriceCents) / 100,
		Status:              string(b.Status(today)),
		CanCancel:           b.CanCancel(today) == nil,
		CreatedAt:           b.CreatedAt,
	}
	if dates, err := booking.NewDateRange(b.StartDate, b.EndDate); err == nil {
		view.DurationDays = dates.DurationDays()
	}
	return view
}

func ToUserView(u *user.User) *UserView {
	p := u.Profile()
	n := u.Notifications()
	return &UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Location:  p.Location,
		Bio:       p.Bio,
		Notifications: NotificationsView{
			Email:     n.Email,
			SMS:       n.SMS,
			Marketing: n.Marketing,
		},
		CreatedAt: u.CreatedAt(),
	}
}
