// Copyright (c) 2026 SkillSync. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/constants"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating session tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT string carrying the user's identity claims.
	//
	// # Parameters
	//   - userID, name, email: The identity embedded in the token.
	//   - role: The authorization role embedded in the token.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	Issue(userID, name, email string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(userRepository UserRepository, tokenIssuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // Optional; defaults to student.
	PhotoURL string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Creates a new member, hashing the password with a per-user
random salt. The caller has already validated field presence and the
password policy; this layer owns the business rules.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (PasswordHash never serialized)
  - error: Conflict if the email is registered, or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Unspecified role defaults to student.
	role := sec.UserRole(input.Role)
	if role == "" {
		role = sec.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperr.ValidationError("Unknown role")
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		PhotoURL:     input.PhotoURL,
	}

	// Persist the user. The email unique index reports duplicates as Conflict;
	// there is no lookup beforehand, so concurrent registrations cannot race.
	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login validates user credentials and issues a session token.

Description: Verifies identity with a constant-time password comparison and
returns a signed one-hour token over {id, role, name, email} plus a
password-free user projection.

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Token and user projection
  - error: Unauthorized or internal failures

The failure message is identical for an unknown email and a wrong password
so that responses cannot be used to enumerate accounts.
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// bcrypt comparison is constant-time to prevent timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokenIssuer.Issue(user.ID, user.Name, user.Email, user.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &LoginSession{
		Token: token,
		User:  user,
	}, nil
}

// # Profile

/*
CurrentUser re-fetches the account behind a verified session token.

Description: The token is trusted for identity, but the profile is always
re-read so that the response reflects the live record.

Parameters:
  - ctx: context.Context
  - userID: string (claims.UserID of the verified session)

Returns:
  - *User: Live account entity
  - error: NotFound if the record was deleted after token issuance
*/
func (service *Service) CurrentUser(ctx context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
