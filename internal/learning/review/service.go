// Copyright (c) 2026 SkillSync. All rights reserved.

package review

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Service

// Service implements review creation, listing with aggregates, and removal.
type Service struct {
	repository  Repository
	enrollments EnrollmentChecker
}

// NewService constructs a new review [Service].
func NewService(repository Repository, enrollments EnrollmentChecker) *Service {
	return &Service{
		repository:  repository,
		enrollments: enrollments,
	}
}

// CreateInput carries the client-supplied review fields.
type CreateInput struct {
	CourseID string
	Rating   int
	Comment  string
}

/*
Create stores the caller's review of a course.

Description: Only enrolled users may review, at most once per course. The
enrollment gate propagates storage errors: when the ledger cannot be read
the review is refused rather than allowed through. The reviewer's display
name and email are denormalized from the verified claims.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified)
  - input: CreateInput

Returns:
  - *Review: Stored review
  - error: ValidationError for ratings outside [1,5], Forbidden without an
    enrollment, Conflict on a duplicate review
*/
func (service *Service) Create(ctx context.Context, claims *sec.SessionClaims, input CreateInput) (*Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperr.ValidationError("Rating must be between 1 and 5")
	}

	enrolled, err := service.enrollments.IsEnrolled(ctx, claims.UserID, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("review_service_enrollment_check_failed: %w", err)
	}
	if !enrolled {
		return nil, apperr.Forbidden("You must be enrolled to review this course")
	}

	entry := &Review{
		ID:        uuid.New(),
		CourseID:  input.CourseID,
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := service.repository.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
CourseReviews returns a course's reviews with their aggregate.

Description: Public read. The aggregate is derived from the same listing in
one pass: average rounded to one decimal place and a per-star distribution
with all five buckets always present.

Returns:
  - []*Review: Newest first
  - Summary: Aggregate statistics
  - error: Storage failures
*/
func (service *Service) CourseReviews(ctx context.Context, courseID string) ([]*Review, Summary, error) {
	reviews, err := service.repository.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, Summary{}, err
	}

	summary := EmptySummary()
	if len(reviews) > 0 {
		sum := 0
		for _, entry := range reviews {
			sum += entry.Rating
			summary.Distribution[strconv.Itoa(entry.Rating)]++
		}
		summary.TotalReviews = len(reviews)
		summary.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return reviews, summary, nil
}

/*
Delete removes a review.

Description: Only the author or an admin may delete. The review is fetched
first to check ownership, so an unknown ID reports NotFound before any
permission check.

Returns:
  - error: NotFound, Forbidden for non-authors, or storage failures
*/
func (service *Service) Delete(ctx context.Context, claims *sec.SessionClaims, reviewID string) error {
	entry, err := service.repository.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if entry.UserID != claims.UserID && claims.Role != sec.RoleAdmin {
		return apperr.Forbidden("You do not have permission to delete this review")
	}

	return service.repository.Delete(ctx, reviewID)
}
