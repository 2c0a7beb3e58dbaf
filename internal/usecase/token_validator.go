package usecase

import (
	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator authenticates customer tokens issued by the hosted auth
// provider and yields the customer id for the request context.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.CustomerID, nil
}
