package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

// IsEmail reports whether s is acceptable as a contact email.
func IsEmail(s string) bool {
	return validate.Var(s, "contact_email") == nil
}

// FieldErrors maps a field to its user-facing message.
type FieldErrors map[Field]string

// ValidationError blocks a step transition until the listed fields are corrected.
type ValidationError struct {
	Step   Step
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: invalid fields: %s", e.Step, strings.Join(keys, ", "))
}

type ruleContext struct {
	fields *Fields
	venue  *venue.Venue
	today  Date
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case Date:
		return x.IsZero()
	case int:
		return x == 0
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return v == nil
	}
}

func checkField(spec FieldSpec, rc ruleContext) string {
	raw := rc.fields.value(spec.Name)
	if isEmpty(raw) {
		if spec.Required {
			return requiredMessages[spec.Name]
		}
		return ""
	}
	if spec.Rule != "" {
		if err := validate.Var(raw, spec.Rule); err != nil {
			return ruleMessages[spec.Name]
		}
	}
	if spec.check != nil {
		return spec.check(rc)
	}
	return ""
}

func checkStartDate(rc ruleContext) string {
	if rc.fields.StartDate.Before(rc.today) {
		return "Start date cannot be in the past"
	}
	return ""
}

func checkEndDate(rc ruleContext) string {
	if !rc.fields.StartDate.IsZero() && rc.fields.EndDate.Before(rc.fields.StartDate) {
		return "End date must be on or after the start date"
	}
	return ""
}

func checkAttendees(rc ruleContext) string {
	if rc.venue != nil && rc.fields.Attendees > rc.venue.Capacity() {
		return fmt.Sprintf("Maximum %d attendees", rc.venue.Capacity())
	}
	return ""
}

func checkEventType(rc ruleContext) string {
	if rc.venue != nil && !rc.venue.HasCategory(rc.fields.EventType) {
		return "Event type is not offered by this venue"
	}
	return ""
}

// ValidateStep checks every schema field collected on step s.
// The returned error is a *ValidationError marked with errs.ErrValidation.
func ValidateStep(s Step, f Fields, v *venue.Venue, today Date) error {
	rc := ruleContext{fields: &f, venue: v, today: today}
	found := FieldErrors{}
	for _, spec := range FieldsFor(s) {
		if msg := checkField(spec, rc); msg != "" {
			found[spec.Name] = msg
		}
	}
	if len(found) == 0 {
		return nil
	}
	return errs.Mark(&ValidationError{Step: s, Fields: found}, errs.ErrValidation)
}

// ValidateBefore checks all steps preceding s, stopping at the first invalid one.
func ValidateBefore(s Step, f Fields, v *venue.Venue, today Date) error {
	for step := StepEventDetails; step < s; step++ {
		if err := ValidateStep(step, f, v, today); err != nil {
			return err
		}
	}
	return nil
}

// BuildDraft validates every input step and freezes the result.
func BuildDraft(v *venue.Venue, f Fields, today Date) (Draft, error) {
	if v == nil {
		return Draft{}, errs.Mark(errs.New("venue is required"), errs.ErrValidation)
	}
	if err := ValidateBefore(StepReview, f, v, today); err != nil {
		return Draft{}, err
	}
	dates, err := NewDateRange(f.StartDate, f.EndDate)
	if err != nil {
		return Draft{}, errs.Mark(err, errs.ErrValidation)
	}

	return Draft{
		venueID:   v.ID(),
		venueName: v.Name(),
		dates:     dates,
		attendees: f.Attendees,
		eventType: f.EventType,
		purpose:   strings.TrimSpace(f.Purpose),
		contact: Contact{
			Name:  strings.TrimSpace(f.ContactName),
			Phone: strings.TrimSpace(f.ContactPhone),
			Email: strings.TrimSpace(f.ContactEmail),
		},
		specialRequirements: strings.TrimSpace(f.SpecialRequirements),
		totalPrice:          TotalPrice(v, f.StartDate, f.EndDate),
	}, nil
}

// TotalPrice is price per day times inclusive duration, or zero when the
// venue or either date is missing or the dates are inverted.
func TotalPrice(v *venue.Venue, start, end Date) venue.Money {
	if v == nil {
		return venue.Money{}
	}
	dates, err := NewDateRange(start, end)
	if err != nil {
		return venue.Money{}
	}
	return v.Price().Times(dates.DurationDays())
}
