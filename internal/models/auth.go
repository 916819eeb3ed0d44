package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by organizer API tokens issued by the ticketing host.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Organizer string    `json:"organizer,omitempty"`
	jwt.RegisteredClaims
}
