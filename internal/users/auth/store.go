// Copyright (c) 2026 SkillSync. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		Create persists a brand-new user account.

		The unique index on users.account(email) is the single source of
		truth for duplicate registrations: a violation surfaces as a
		Conflict error, there is no check-then-insert.

		Parameters:
		  - ctx: context.Context
		  - user: *User

		Returns:
		  - error: Conflict on duplicate email, or persistence failures
	*/
	Create(ctx context.Context, user *User) error

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - ctx: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(ctx context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - ctx: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByEmail(ctx context.Context, email string) (*User, error)
}
