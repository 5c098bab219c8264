package request

import (
	"venue-booking/internal/domain/user"
)

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"max=50"`
	Location  string `json:"location" binding:"max=200"`
	Bio       string `json:"bio" binding:"max=2000"`
}

func (r *UpdateProfileRequest) ToDomain() (user.Email, user.Profile, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Profile{}, err
	}
	return email, user.Profile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Location:  r.Location,
		Bio:       r.Bio,
	}, nil
}

type UpdateNotificationsRequest struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

func (r *UpdateNotificationsRequest) ToDomain() user.Notifications {
	return user.Notifications{Email: r.Email, SMS: r.SMS, Marketing: r.Marketing}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
