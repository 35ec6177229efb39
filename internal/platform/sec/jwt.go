// Copyright (c) 2026 SkillSync. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces defined at the point of use.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Errors

var (
	// ErrExpiredToken indicates a structurally valid token whose expiry has
	// elapsed. Callers use it to tell the user to log in again.
	ErrExpiredToken = errors.New("sec: token expired")

	// ErrInvalidToken indicates a malformed token or a bad signature.
	ErrInvalidToken = errors.New("sec: invalid token")
)

// SessionClaims represents the payload embedded inside a JWT session token.
//
// # Why custom claims?
//
// By embedding the UserID, Name, Email, and Role directly inside the JWT,
// the auth gate can reconstruct the active user context WITHOUT querying
// the database on every single API request. Claims are trusted only after
// signature and expiry verification.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string   `json:"uid"`
	Name   string   `json:"nam"`
	Email  string   `json:"eml"`
	Role   UserRole `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// Verification is pure and requires no shared state, so a single instance is
// safe for concurrent use across all requests.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: JWT secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a new signed session token for a user.
func (service *TokenService) Issue(userID, name, email string, role UserRole, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// # Returns
//   - The embedded [*SessionClaims] when the token is authentic and current.
//   - [ErrExpiredToken] when only the expiry check failed.
//   - [ErrInvalidToken] for every other failure (bad signature, malformed).
func (service *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
