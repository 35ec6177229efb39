// Copyright (c) 2026 SkillSync. All rights reserved.

package certificate

import "context"

// # Certificate Data Access

// Repository defines the data access contract for award records.
type Repository interface {

	/*
		Issue persists the award for its (user, course) pair, or returns the
		already-issued one.

		The unique index on learning.certificate(userid, courseid) makes the
		operation idempotent even under concurrent requests: the second
		writer gets the first writer's row back, never an error and never a
		duplicate.

		Returns:
		  - *Certificate: The canonical (first-issued) award
		  - error: Persistence failures
	*/
	Issue(ctx context.Context, certificate *Certificate) (*Certificate, error)

	// ListByUser returns a user's awards, newest completion first.
	ListByUser(ctx context.Context, userID string) ([]*Certificate, error)
}
