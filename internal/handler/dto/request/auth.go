package request

import (
	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

func (r *RegisterRequest) ToDomain() (user.Email, user.Password, user.Profile, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, user.Profile{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, user.Profile{}, err
	}
	return email, pw, user.Profile{FirstName: r.FirstName, LastName: r.LastName}, nil
}
