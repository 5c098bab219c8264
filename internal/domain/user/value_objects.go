package user

import (
	"errors"
	"regexp"
	"strings"

	"venue-booking/internal/pkg/password"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters with upper and lower case letters, a number and a symbol")
	ErrInvalidProfile  = errors.New("invalid profile")
)

var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}$`)

// Email is stored lower-cased so lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password is a plaintext password that passed the strength rules.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if !password.IsStrong(s) {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Profile is the editable personal information shown on the settings page.
type Profile struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"max=100"`
	Phone     string `validate:"max=50"`
	Location  string `validate:"max=200"`
	Bio       string `validate:"max=2000"`
}

func (p Profile) normalized() Profile {
	return Profile{
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Phone:     strings.TrimSpace(p.Phone),
		Location:  strings.TrimSpace(p.Location),
		Bio:       strings.TrimSpace(p.Bio),
	}
}

// Notifications are the user's opt-ins per channel.
type Notifications struct {
	Email     bool
	SMS       bool
	Marketing bool
}

func DefaultNotifications() Notifications {
	return Notifications{Email: true}
}
