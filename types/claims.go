package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID       uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsDomainUser bool   `json:"isDomainUser,omitempty"`
	jwt.RegisteredClaims
}
