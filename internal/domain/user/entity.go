package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// User is an account holder who books venues.
type User struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	profile       Profile
	notifications Notifications
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, passwordHash string, profile Profile, now time.Time) (*User, error) {
	profile = profile.normalized()
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	return &User{
		id:            uuid.New(),
		email:         email,
		passwordHash:  passwordHash,
		profile:       profile,
		notifications: DefaultNotifications(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a stored user without re-validating it.
func Reconstruct(id uuid.UUID, email Email, passwordHash string, profile Profile, notifications Notifications, createdAt, updatedAt time.Time) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		profile:       profile,
		notifications: notifications,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func validateProfile(p Profile) error {
	if err := validate.Struct(p); err != nil {
		return ErrInvalidProfile
	}
	return nil
}

func (u *User) ID() uuid.UUID                { return u.id }
func (u *User) Email() Email                 { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Profile() Profile             { return u.profile }
func (u *User) Notifications() Notifications { return u.notifications }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) UpdateProfile(email Email, p Profile, now time.Time) error {
	p = p.normalized()
	if err := validateProfile(p); err != nil {
		return err
	}
	u.email = email
	u.profile = p
	u.updatedAt = now
	return nil
}

func (u *User) SetPasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
}

func (u *User) SetNotifications(n Notifications, now time.Time) {
	u.notifications = n
	u.updatedAt = now
}
