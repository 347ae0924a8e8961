package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWT claims structure, issued by the account service
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
