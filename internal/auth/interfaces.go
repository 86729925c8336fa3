package auth

import (
	"errors"
	"time"
)

// TokenTTL is the lifetime of an issued token and of the cookie carrying it.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// TokenService defines the interface for token creation and validation.
// Implementations include JWTService (HS256) and PasetoService (PASETO v4.local).
//
// Tokens are self-contained: nothing is stored server side, so a token stays
// valid until it expires.
type TokenService interface {
	CreateToken(userID int64, email string) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// NewTokenService builds the TokenService named by format ("jwt" or "paseto").
func NewTokenService(format string, secret []byte) (TokenService, error) {
	switch format {
	case "", "jwt":
		return NewJWTService(secret)
	case "paseto":
		return NewPasetoService(secret)
	default:
		return nil, errors.New("unknown token format: " + format)
	}
}
