// Package jwtmw provides bearer token generation, verification, and the Gin
// middleware that guards authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recruit_backend/internal/feature/auth/domain/entity"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// TokenValidity is the fixed lifetime of an issued token.
// There is no refresh or server-side revocation; clients discard the token to log out.
const TokenValidity = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any token that cannot be trusted:
// bad signature, malformed payload, or past expiry.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	UserID uint
	Email  string
	Role   entity.Role
}

// Issuer defines the interface for bearer token generation.
type Issuer interface {
	// Issue creates a signed token carrying the user's identity and role.
	Issue(userID uint, email string, role entity.Role) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	expiration time.Duration
}

// NewIssuer creates a token issuer with the provided secret and expiration duration.
func NewIssuer(secret string, expiration time.Duration) Issuer {
	return &issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed HS256 token with standard claims plus email and role.
func (g *issuer) Issue(userID uint, email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"role":  string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string against the given secret.
// Only HMAC signatures are accepted. Any failure maps to ErrInvalidToken.
func Verify(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Claims{
		UserID: uint(sub),
		Email:  email,
		Role:   entity.Role(role),
	}, nil
}
