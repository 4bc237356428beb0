// Package service: auth.go issues and parses the JWT session cookie used to
// tag API clients with a stable visitor ID.
package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/auth_mocks.go -package=mocks

// AuthIface defines the interface for JWT authentication used in middleware.
type AuthIface interface {
	BuildJWTString() (string, string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}

// Claims embeds the registered JWT claims plus the visitor ID.
type Claims struct {
	jwt.RegisteredClaims
	VisitorID string `json:"visitor_id"`
}

// TokenExp defines the expiration time of the JWT token (1 year).
const TokenExp = time.Hour * 24 * 365

// secretKey is used for signing JWT tokens. It should be kept private.
const secretKey = "supersecretkey"

// Auth provides methods for building and parsing session JWT tokens.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// BuildJWTString generates a new session token carrying a fresh visitor ID.
// It returns the signed token and the visitor ID.
func (a Auth) BuildJWTString() (string, string, error) {
	visitorID := uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		VisitorID: visitorID,
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", "", err
	}

	return tokenString, visitorID, nil
}

// ParseClaims parses the JWT token from the provided HTTP cookie and returns
// the claims embedded within the token.
func (a Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token or claims")
	}

	return claims, nil
}
