// Copyright (c) 2026 SkillSync. All rights reserved.

package review

import "context"

// # Review Data Access

// Repository defines the data access contract for course reviews.
type Repository interface {

	/*
		Create persists a new review.

		The unique index on learning.review(userid, courseid) is the single
		source of truth for the one-review-per-user rule: a violation
		surfaces as a Conflict, there is no check-then-insert.

		Returns:
		  - error: Conflict on a duplicate review, or persistence failures
	*/
	Create(ctx context.Context, review *Review) error

	// ListByCourse returns a course's reviews, newest first.
	ListByCourse(ctx context.Context, courseID string) ([]*Review, error)

	// FindByID returns one review, for the ownership check before deletion.
	FindByID(ctx context.Context, id string) (*Review, error)

	// Delete removes a review. Returns NotFound when the row is absent.
	Delete(ctx context.Context, id string) error
}

// EnrollmentChecker is the slice of the ledger the review gate needs.
// Unlike the UI-facing enrollment check it propagates storage errors, so a
// degraded database refuses reviews instead of silently allowing them.
type EnrollmentChecker interface {
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
}
