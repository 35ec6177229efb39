// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package auth implements the user identity layer: the credential store and
the registration/login/profile flows built on top of it.

It defines the core domain entity (User) and the business rules related to
account creation and session issuance.

# Architecture

This layer is the "Truth" of the system for identity. Entities defined here
have no transport dependencies; the HTTP handler and the Postgres repository
both depend inward on this package.
*/
package auth

import (
	"time"

	"github.com/skillsync/api/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the SkillSync platform.
//
// Accounts are created at registration and never deleted by the platform
// itself; profile fields are the only mutable part.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	PhotoURL     string       `json:"photo_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldToken    = "token"
	FieldUser     = "user"
	FieldUserID   = "user_id"
	FieldMessage  = "message"
)
