//go:build unit || e2e

package builder

import (
	"venue-booking/internal/domain/user"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Profile      user.Profile
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Profile: user.Profile{
			FirstName: "Test",
			LastName:  "User",
			Phone:     "+1 555 0100",
			Location:  "Downtown",
		},
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, u.Profile, Today)
}

func (u *UserBuilder) MustBuild() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFirstName(name string) *UserBuilder {
	u.Profile.FirstName = name
	return u
}

func (u *UserBuilder) WithBio(bio string) *UserBuilder {
	u.Profile.Bio = bio
	return u
}
