package auth

import (
	"errors"

	"venue-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Session is the authenticated caller. It is passed explicitly to every
// collaborator that acts on the user's behalf; the token is opaque here.
type Session struct {
	userID uuid.UUID
	email  string
	token  string
}

func NewSession(userID uuid.UUID, email, token string) Session {
	return Session{userID: userID, email: email, token: token}
}

func (s Session) UserID() uuid.UUID { return s.userID }
func (s Session) Email() string     { return s.email }
func (s Session) Token() string     { return s.token }
func (s Session) IsZero() bool      { return s.userID == uuid.Nil }

// Authorization renders the bearer header value, empty without a token.
func (s Session) Authorization() string {
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}
