// Copyright (c) 2026 SkillSync. All rights reserved.

package enrollment

import (
	"context"

	"github.com/skillsync/api/internal/learning/course"
)

// # Enrollment Data Access

// Repository defines the data access contract for the enrollment ledger.
type Repository interface {

	/*
		Create persists a new ledger row.

		The unique index on learning.enrollment(userid, courseid) is the
		single source of truth for duplicates: a violation surfaces as a
		Conflict error, there is no check-then-insert.

		Returns:
		  - error: Conflict on duplicate enrollment, or persistence failures
	*/
	Create(ctx context.Context, enrollment *Enrollment) error

	// Exists reports whether the user holds an enrollment in the course.
	Exists(ctx context.Context, userID, courseID string) (bool, error)

	// ListCourses returns the full course entities behind the user's
	// enrollments, most recent enrollment first.
	ListCourses(ctx context.Context, userID string) ([]*course.Course, error)

	// Delete removes the user's ledger row for the course.
	// Returns NotFound when no such enrollment exists.
	Delete(ctx context.Context, userID, courseID string) error

	// SetProgress stores the coarse percent indicator on the ledger row.
	// Returns NotFound when no such enrollment exists.
	SetProgress(ctx context.Context, userID, courseID string, percent int) error
}

// CourseFinder is the slice of the catalog the ledger needs: existence
// checks before enrolling.
type CourseFinder interface {
	FindByID(ctx context.Context, id string) (*course.Course, error)
}
