package usecase

import (
	"venue-booking/internal/domain/auth"
	"venue-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Session{}, err
	}

	return auth.NewSession(claims.UserID, claims.Email, tokenString), nil
}
