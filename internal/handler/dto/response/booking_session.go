package response

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StepResponse struct {
	Index  int      `json:"index"`
	Title  string   `json:"title"`
	Fields []string `json:"fields"`
}

type SessionFieldsResponse struct {
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	Attendees           int    `json:"attendees"`
	EventType           string `json:"event_type"`
	Purpose             string `json:"purpose"`
	ContactName         string `json:"contact_name"`
	ContactPhone        string `json:"contact_phone"`
	ContactEmail        string `json:"contact_email"`
	SpecialRequirements string `json:"special_requirements"`
}

type ReceiptResponse struct {
	BookingID     string    `json:"booking_id"`
	VenueName     string    `json:"venue_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Attendees     int       `json:"attendees"`
	TotalPrice    float64   `json:"total_price"`
	SubmittedAt   time.Time `json:"submitted_at"`
	DisplayForSec float64   `json:"display_for_seconds"`
}

type BookingSessionResponse struct {
	ID           uuid.UUID             `json:"id"`
	Venue        *VenueResponse        `json:"venue,omitempty"`
	Step         StepResponse          `json:"step"`
	Steps        []StepResponse        `json:"steps"`
	Outcome      string                `json:"outcome"`
	Fields       SessionFieldsResponse `json:"fields"`
	TotalPrice   float64               `json:"total_price"`
	DurationDays int                   `json:"duration_days"`
	LastError    string                `json:"last_error,omitempty"`
	Receipt      *ReceiptResponse      `json:"receipt,omitempty"`
	Closed       bool                  `json:"closed"`
}

var allSteps = []booking.Step{booking.StepEventDetails, booking.StepContactInfo, booking.StepReview}

func newStepResponse(s booking.Step) StepResponse {
	specs := booking.FieldsFor(s)
	fields := make([]string, 0, len(specs))
	for _, f := range specs {
		fields = append(fields, string(f.Name))
	}
	return StepResponse{Index: int(s), Title: s.String(), Fields: fields}
}

func dateString(d booking.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func FromSessionView(v *commands.SessionView) BookingSessionResponse {
	st := v.State
	steps := make([]StepResponse, 0, len(allSteps))
	for _, s := range allSteps {
		steps = append(steps, newStepResponse(s))
	}

	r := BookingSessionResponse{
		ID:      v.ID,
		Step:    newStepResponse(st.Step),
		Steps:   steps,
		Outcome: string(st.Outcome),
		Fields: SessionFieldsResponse{
			StartDate:           dateString(st.Fields.StartDate),
			EndDate:             dateString(st.Fields.EndDate),
			Attendees:           st.Fields.Attendees,
			EventType:           string(st.Fields.EventType),
			Purpose:             st.Fields.Purpose,
			ContactName:         st.Fields.ContactName,
			ContactPhone:        st.Fields.ContactPhone,
			ContactEmail:        st.Fields.ContactEmail,
			SpecialRequirements: st.Fields.SpecialRequirements,
		},
		TotalPrice:   st.TotalPrice.Amount(),
		DurationDays: st.DurationDays,
		Closed:       st.Closed,
	}
	if st.Venue != nil {
		venue := FromVenueView(queries.ToVenueView(st.Venue))
		r.Venue = &venue
	}
	if st.LastError != nil {
		r.LastError = st.LastError.Error()
	}
	if st.Receipt != nil {
		receipt := FromReceipt(*st.Receipt)
		r.Receipt = &receipt
	}
	return r
}

func FromReceipt(rc booking.Receipt) ReceiptResponse {
	d := rc.Draft
	return ReceiptResponse{
		BookingID:     rc.BookingID,
		VenueName:     d.VenueName(),
		StartDate:     d.Dates().Start().String(),
		EndDate:       d.Dates().End().String(),
		Attendees:     d.Attendees(),
		TotalPrice:    d.TotalPrice().Amount(),
		SubmittedAt:   rc.SubmittedAt,
		DisplayForSec: rc.DisplayFor.Seconds(),
	}
}

type ConfirmResponse struct {
	Session BookingSessionResponse `json:"session"`
	Receipt ReceiptResponse        `json:"receipt"`
}

func FromConfirmResult(res *commands.ConfirmResult) ConfirmResponse {
	return ConfirmResponse{
		Session: FromSessionView(&res.Session),
		Receipt: FromReceipt(res.Receipt),
	}
}
