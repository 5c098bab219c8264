//go:build unit || e2e

package builder

import (
	reqdto "venue-booking/internal/handler/dto/request"
)

// StrongPassword satisfies the registration strength rule.
const StrongPassword = "Str0ng!Pass"

type AuthBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

// AsNewAccount switches to a fresh email with a password strong enough to register.
func (a *AuthBuilder) AsNewAccount(email string) *AuthBuilder {
	a.Email = email
	a.Password = StrongPassword
	return a
}
