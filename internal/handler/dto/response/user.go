package response

import (
	"time"

	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationsResponse struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

type UserResponse struct {
	ID            uuid.UUID             `json:"id"`
	Email         string                `json:"email"`
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Phone         string                `json:"phone"`
	Location      string                `json:"location"`
	Bio           string                `json:"bio"`
	Notifications NotificationsResponse `json:"notifications"`
	CreatedAt     time.Time             `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var r UserResponse
	_ = copier.CopyWithOption(&r, v, copier.Option{DeepCopy: true})
	return r
}

func FromLoginResult(res *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: res.AccessToken,
		ExpiresIn:   int(res.ExpiresIn.Seconds()),
		User:        FromUserView(res.User),
	}
}
