// Copyright (c) 2026 SkillSync. All rights reserved.

package certificate

import (
	"context"
	"time"

	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/learning/progress"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Contracts

// CompletionChecker is the slice of the progress tracker the issuer needs.
type CompletionChecker interface {
	Completion(ctx context.Context, userID, courseID string) (*progress.Record, error)
}

// CourseFinder resolves course titles and instructor names for rendering.
type CourseFinder interface {
	FindByID(ctx context.Context, id string) (*course.Course, error)
}

// # Service

// Service implements certificate issuance and retrieval.
type Service struct {
	repository Repository
	completion CompletionChecker
	courses    CourseFinder
}

// NewService constructs a new certificate [Service].
func NewService(repository Repository, completion CompletionChecker, courses CourseFinder) *Service {
	return &Service{
		repository: repository,
		completion: completion,
		courses:    courses,
	}
}

/*
Generate issues the caller's certificate for a completed course.

Description: The completion gate is absolute: without a progress record
whose completion flag is set, nothing is rendered and nothing is persisted.
The learner name comes from the verified claims; course title and instructor
are frozen into the award at issuance time. The completion date falls back
to the current date when the progress record predates completion stamping.

Issuance is idempotent per (user, course): a repeat request returns the
original award unchanged.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified; learner identity)
  - courseID: string

Returns:
  - *Certificate: The canonical award for the pair
  - error: PreconditionFailed("Course not completed"), or storage failures
*/
func (service *Service) Generate(ctx context.Context, claims *sec.SessionClaims, courseID string) (*Certificate, error) {
	record, err := service.completion.Completion(ctx, claims.UserID, courseID)
	if err != nil {
		// No record means the course was never started. Anything else is a
		// storage failure and must surface as one.
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, apperr.PreconditionFailed("Course not completed")
		}
		return nil, err
	}
	if !record.IsCompleted {
		return nil, apperr.PreconditionFailed("Course not completed")
	}

	courseName := "Unknown Course"
	instructorName := "Unknown Instructor"
	if entry, err := service.courses.FindByID(ctx, courseID); err == nil {
		courseName = entry.Title
		instructorName = entry.InstructorName
	}

	completedAt := time.Now()
	if record.CompletedAt != nil {
		completedAt = *record.CompletedAt
	}

	award := &Certificate{
		ID:             uuid.New(),
		UserID:         claims.UserID,
		CourseID:       courseID,
		CourseName:     courseName,
		InstructorName: instructorName,
		CompletedAt:    completedAt,
		Content:        Render(claims.Name, courseName, instructorName, completedAt),
	}

	return service.repository.Issue(ctx, award)
}

/*
ListUser returns a user's awards, newest completion first.

Description: Users may only read their own awards; admins may read anyone's.

Returns:
  - []*Certificate: Newest completion first
  - error: Forbidden for cross-user reads by non-admins
*/
func (service *Service) ListUser(ctx context.Context, claims *sec.SessionClaims, userID string) ([]*Certificate, error) {
	if claims.UserID != userID && claims.Role != sec.RoleAdmin {
		return nil, apperr.Forbidden("Unauthorized to view this user's certificates")
	}
	return service.repository.ListByUser(ctx, userID)
}
