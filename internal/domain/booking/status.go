package booking

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("status must be one of upcoming, active, completed")

// Status is derived from the booking dates and today's date, never stored.
type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upcoming":
		return StatusUpcoming, nil
	case "active":
		return StatusActive, nil
	case "completed":
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// StatusOn classifies dates relative to today. Both endpoints count as Active.
func StatusOn(dates DateRange, today Date) Status {
	switch {
	case today.Before(dates.Start()):
		return StatusUpcoming
	case today.After(dates.End()):
		return StatusCompleted
	default:
		return StatusActive
	}
}
