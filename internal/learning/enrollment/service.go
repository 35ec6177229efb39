// Copyright (c) 2026 SkillSync. All rights reserved.

package enrollment

import (
	"context"

	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/ctxutil"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Service

// Service implements the enrollment ledger use cases.
type Service struct {
	repository   Repository
	courseFinder CourseFinder
}

// NewService constructs a new ledger [Service].
func NewService(repository Repository, courseFinder CourseFinder) *Service {
	return &Service{
		repository:   repository,
		courseFinder: courseFinder,
	}
}

/*
Enroll adds the authenticated user to a course.

Description: The course must exist; the (user, course) pair must be new. Both
rules surface as client errors, and the duplicate check lives in the storage
unique index so concurrent enrollments cannot race.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified)
  - courseID: string

Returns:
  - *Enrollment: New ledger row
  - error: NotFound("Course"), Conflict on duplicate, or storage failures
*/
func (service *Service) Enroll(ctx context.Context, claims *sec.SessionClaims, courseID string) (*Enrollment, error) {
	if _, err := service.courseFinder.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	entry := &Enrollment{
		ID:        uuid.New(),
		UserID:    claims.UserID,
		UserEmail: claims.Email,
		CourseID:  courseID,
	}

	if err := service.repository.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Check reports whether the authenticated user is enrolled in a course.

Description: This lookup backs UI affordances ("Continue" vs "Enroll") and
must never fail the page render: any storage error degrades to false. The
error is logged, not returned.

Returns:
  - bool: Enrollment status; false on any failure
*/
func (service *Service) Check(ctx context.Context, claims *sec.SessionClaims, courseID string) bool {
	enrolled, err := service.repository.Exists(ctx, claims.UserID, courseID)
	if err != nil {
		ctxutil.GetLogger(ctx).Warn("enrollment check degraded to false",
			"course_id", courseID,
			"error", err,
		)
		return false
	}
	return enrolled
}

// ListMine returns the full course entities behind the caller's enrollments.
func (service *Service) ListMine(ctx context.Context, claims *sec.SessionClaims) ([]*course.Course, error) {
	return service.repository.ListCourses(ctx, claims.UserID)
}

// Unenroll removes the caller's own ledger row. NotFound when absent.
func (service *Service) Unenroll(ctx context.Context, claims *sec.SessionClaims, courseID string) error {
	return service.repository.Delete(ctx, claims.UserID, courseID)
}

/*
UpdateProgress stores the coarse 0–100 percent indicator on the ledger row.

Description: This is the client-reported summary shown on dashboards; the
lesson-level state machine lives in the progress tracker.

Returns:
  - error: ValidationError outside [0,100], NotFound when not enrolled
*/
func (service *Service) UpdateProgress(ctx context.Context, claims *sec.SessionClaims, courseID string, percent int) error {
	if percent < 0 || percent > 100 {
		return apperr.ValidationError("Progress must be between 0 and 100")
	}
	return service.repository.SetProgress(ctx, claims.UserID, courseID, percent)
}

// IsEnrolled is the cross-domain gate used by the review store: unlike
// [Service.Check] it distinguishes "not enrolled" from "could not tell".
func (service *Service) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	return service.repository.Exists(ctx, userID, courseID)
}
