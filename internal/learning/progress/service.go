// Copyright (c) 2026 SkillSync. All rights reserved.

package progress

import (
	"context"
	"time"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Service

// Service implements the lesson-level progress state machine.
type Service struct {
	repository Repository
}

// NewService constructs a new progress [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// UpdateInput carries the client-reported lesson counters.
type UpdateInput struct {
	CourseID         string
	LessonsCompleted int
	TotalLessons     int
}

/*
Update recomputes and stores the caller's position in a course.

Description: The derived fields are never client-supplied:

	percent     = round(100 · lessonsCompleted / totalLessons)
	isCompleted = percent == 100

The first write that reaches completion stamps the completion date; the
storage upsert keeps that stamp permanent across later writes.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified; record owner)
  - input: UpdateInput

Returns:
  - *Record: Stored record with derived fields
  - error: ValidationError for non-positive totals or negative counters
*/
func (service *Service) Update(ctx context.Context, claims *sec.SessionClaims, input UpdateInput) (*Record, error) {
	if input.TotalLessons <= 0 {
		return nil, apperr.ValidationError("totalLessons must be greater than zero")
	}
	if input.LessonsCompleted < 0 {
		return nil, apperr.ValidationError("lessonsCompleted must not be negative")
	}

	percent := Percent(input.LessonsCompleted, input.TotalLessons)
	isCompleted := percent == 100

	record := &Record{
		ID:               uuid.New(),
		UserID:           claims.UserID,
		CourseID:         input.CourseID,
		LessonsCompleted: input.LessonsCompleted,
		TotalLessons:     input.TotalLessons,
		ProgressPercent:  percent,
		IsCompleted:      isCompleted,
	}

	if isCompleted {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := service.repository.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

/*
GetUserProgress returns every record of one user.

Description: Users may only read their own records; admins may read anyone's.

Returns:
  - []*Record: Most recently updated first
  - error: Forbidden for cross-user reads by non-admins
*/
func (service *Service) GetUserProgress(ctx context.Context, claims *sec.SessionClaims, userID string) ([]*Record, error) {
	if err := authorizeSelfOrAdmin(claims, userID); err != nil {
		return nil, err
	}
	return service.repository.ListByUser(ctx, userID)
}

/*
GetCourseProgress returns one (user, course) record.

Description: A user who never touched the course gets a zero-value record
rather than a 404, so course pages render a clean empty state.

Returns:
  - *Record: Stored or zero-value record
  - error: Forbidden for cross-user reads by non-admins, or storage failures
*/
func (service *Service) GetCourseProgress(ctx context.Context, claims *sec.SessionClaims, userID, courseID string) (*Record, error) {
	if err := authorizeSelfOrAdmin(claims, userID); err != nil {
		return nil, err
	}

	record, err := service.repository.Find(ctx, userID, courseID)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return &Record{UserID: userID, CourseID: courseID}, nil
		}
		return nil, err
	}

	return record, nil
}

// Completion is the cross-domain view the certificate issuer needs.
func (service *Service) Completion(ctx context.Context, userID, courseID string) (*Record, error) {
	return service.repository.Find(ctx, userID, courseID)
}

// authorizeSelfOrAdmin allows the record owner or any admin.
func authorizeSelfOrAdmin(claims *sec.SessionClaims, userID string) error {
	if claims.UserID == userID || claims.Role == sec.RoleAdmin {
		return nil
	}
	return apperr.Forbidden("Unauthorized to view this user's progress")
}
