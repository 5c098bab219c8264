package booking

import (
	"fmt"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/patch"
)

type Step int

const (
	StepEventDetails Step = iota
	StepContactInfo
	StepReview
)

var stepTitles = [...]string{"Event Details", "Contact Information", "Review & Confirm"}

func (s Step) String() string {
	if s < StepEventDetails || s > StepReview {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepTitles[s]
}

func (s Step) IsFirst() bool { return s == StepEventDetails }
func (s Step) IsLast() bool  { return s == StepReview }

type Field string

const (
	FieldStartDate           Field = "startDate"
	FieldEndDate             Field = "endDate"
	FieldAttendees           Field = "attendees"
	FieldEventType           Field = "eventType"
	FieldPurpose             Field = "purpose"
	FieldContactName         Field = "contactName"
	FieldContactPhone        Field = "contactPhone"
	FieldContactEmail        Field = "contactEmail"
	FieldSpecialRequirements Field = "specialRequirements"
)

type Kind string

const (
	KindDate    Kind = "date"
	KindInteger Kind = "integer"
	KindChoice  Kind = "choice"
	KindText    Kind = "text"
	KindEmail   Kind = "email"
)

// FieldSpec declares one wizard input and the rule it is checked against.
type FieldSpec struct {
	Name     Field
	Step     Step
	Kind     Kind
	Required bool
	// Rule is a go-playground/validator tag applied to the raw value.
	Rule string
	// check adds rules that depend on the venue, today or other fields.
	check func(rc ruleContext) string
}

// Schema is the full list of wizard inputs in display order.
var Schema = []FieldSpec{
	{Name: FieldStartDate, Step: StepEventDetails, Kind: KindDate, Required: true, check: checkStartDate},
	{Name: FieldEndDate, Step: StepEventDetails, Kind: KindDate, Required: true, check: checkEndDate},
	{Name: FieldAttendees, Step: StepEventDetails, Kind: KindInteger, Required: true, Rule: "min=1", check: checkAttendees},
	{Name: FieldEventType, Step: StepEventDetails, Kind: KindChoice, Required: true, check: checkEventType},
	{Name: FieldPurpose, Step: StepEventDetails, Kind: KindText, Required: true, Rule: "max=2000"},
	{Name: FieldContactName, Step: StepContactInfo, Kind: KindText, Required: true, Rule: "max=200"},
	{Name: FieldContactPhone, Step: StepContactInfo, Kind: KindText, Required: true, Rule: "max=50"},
	{Name: FieldContactEmail, Step: StepContactInfo, Kind: KindEmail, Required: true, Rule: "contact_email"},
	{Name: FieldSpecialRequirements, Step: StepContactInfo, Kind: KindText, Rule: "max=2000"},
}

// FieldsFor returns the schema entries collected on step s.
func FieldsFor(s Step) []FieldSpec {
	out := make([]FieldSpec, 0, len(Schema))
	for _, f := range Schema {
		if f.Step == s {
			out = append(out, f)
		}
	}
	return out
}

var requiredMessages = map[Field]string{
	FieldStartDate:    "Start date is required",
	FieldEndDate:      "End date is required",
	FieldAttendees:    "Number of attendees is required",
	FieldEventType:    "Event type is required",
	FieldPurpose:      "Purpose is required",
	FieldContactName:  "Contact name is required",
	FieldContactPhone: "Contact phone is required",
	FieldContactEmail: "Contact email is required",
}

var ruleMessages = map[Field]string{
	FieldAttendees:           "Minimum 1 attendee",
	FieldPurpose:             "Purpose is too long",
	FieldContactName:         "Contact name is too long",
	FieldContactPhone:        "Contact phone is too long",
	FieldContactEmail:        "Invalid email address",
	FieldSpecialRequirements: "Special requirements are too long",
}

// Fields holds the values entered so far. Zero values mean "not entered".
type Fields struct {
	StartDate           Date
	EndDate             Date
	Attendees           int
	EventType           venue.Category
	Purpose             string
	ContactName         string
	ContactPhone        string
	ContactEmail        string
	SpecialRequirements string
}

// Patch carries a partial update; nil members are left untouched.
type Patch struct {
	StartDate           *Date
	EndDate             *Date
	Attendees           *int
	EventType           *venue.Category
	Purpose             *string
	ContactName         *string
	ContactPhone        *string
	ContactEmail        *string
	SpecialRequirements *string
}

func (f *Fields) Apply(p Patch) {
	patch.Apply(&f.StartDate, p.StartDate)
	patch.Apply(&f.EndDate, p.EndDate)
	patch.Apply(&f.Attendees, p.Attendees)
	patch.Apply(&f.EventType, p.EventType)
	patch.Apply(&f.Purpose, p.Purpose)
	patch.Apply(&f.ContactName, p.ContactName)
	patch.Apply(&f.ContactPhone, p.ContactPhone)
	patch.Apply(&f.ContactEmail, p.ContactEmail)
	patch.Apply(&f.SpecialRequirements, p.SpecialRequirements)
}

func (f *Fields) value(name Field) any {
	switch name {
	case FieldStartDate:
		return f.StartDate
	case FieldEndDate:
		return f.EndDate
	case FieldAttendees:
		return f.Attendees
	case FieldEventType:
		return string(f.EventType)
	case FieldPurpose:
		return f.Purpose
	case FieldContactName:
		return f.ContactName
	case FieldContactPhone:
		return f.ContactPhone
	case FieldContactEmail:
		return f.ContactEmail
	case FieldSpecialRequirements:
		return f.SpecialRequirements
	default:
		return nil
	}
}
