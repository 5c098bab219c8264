package booking

import (
	"encoding/json"
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Date is a zone-less calendar date, stored as midnight UTC.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar date of instant t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Time() time.Time        { return d.t }
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) String() string         { return d.t.Format(DateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DaysUntil is the number of whole days from d to other, negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	return d.UnmarshalText([]byte(s))
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	start Date
	end   Date
}

var (
	ErrMissingDates  = errors.New("start and end dates are required")
	ErrEndBeforeFrom = errors.New("end date must not be before start date")
)

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDates
	}
	if end.Before(start) {
		return DateRange{}, ErrEndBeforeFrom
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

// DurationDays counts both endpoints, so a single-day booking lasts 1 day.
func (r DateRange) DurationDays() int {
	return r.start.DaysUntil(r.end) + 1
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}
