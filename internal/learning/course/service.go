// Copyright (c) 2026 SkillSync. All rights reserved.

package course

import (
	"context"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/pagination"
	"github.com/skillsync/api/pkg/slug"
	"github.com/skillsync/api/pkg/uuid"
)

// # Service

// Service implements catalog use cases: browsing for everyone, authoring
// for instructors and admins.
type Service struct {
	repository Repository
}

// NewService constructs a new catalog [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Browsing

/*
List returns a filtered page of the public catalog.

Parameters:
  - ctx: context.Context
  - filter: Filter (featured / category)
  - page: pagination.Params

Returns:
  - []*Course: Catalog page, newest first
  - pagination.Meta: Page metadata
  - error: Storage failures
*/
func (service *Service) List(ctx context.Context, filter Filter, page pagination.Params) ([]*Course, pagination.Meta, error) {
	courses, total, err := service.repository.List(ctx, filter, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return courses, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Get returns a single catalog entry, or NotFound.
func (service *Service) Get(ctx context.Context, id string) (*Course, error) {
	return service.repository.FindByID(ctx, id)
}

// MyCourses returns every course owned by the authenticated instructor.
func (service *Service) MyCourses(ctx context.Context, claims *sec.SessionClaims) ([]*Course, error) {
	return service.repository.ListByInstructor(ctx, claims.UserID)
}

// # Authoring

// CreateInput carries the author-supplied catalog fields. The instructor
// identity always comes from verified claims, never from the request body.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
	Duration    string
	Category    string
	IsFeatured  bool
}

/*
Create publishes a new course under the caller's identity.

Description: Only instructors and admins may publish. The instructor ID and
display name are denormalized from the verified claims so catalog reads
never join the accounts table.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified; role-gated by the router)
  - input: CreateInput

Returns:
  - *Course: Published entity with slug and timestamps
  - error: Forbidden for students, or storage failures
*/
func (service *Service) Create(ctx context.Context, claims *sec.SessionClaims, input CreateInput) (*Course, error) {
	if !claims.Role.In(sec.RoleInstructor, sec.RoleAdmin) {
		return nil, apperr.Forbidden("Must be an instructor to create a course")
	}

	entry := &Course{
		ID:             uuid.New(),
		Title:          input.Title,
		Slug:           slug.From(input.Title),
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Price:          input.Price,
		Duration:       input.Duration,
		Category:       input.Category,
		IsFeatured:     input.IsFeatured,
		InstructorID:   claims.UserID,
		InstructorName: claims.Name,
	}

	if err := service.repository.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Update edits a published course.

Description: Only the owning instructor or an admin may edit. Ownership is
checked against the stored instructor ID, not against anything the client
sends.

Returns:
  - *Course: Updated entity
  - error: NotFound, Forbidden for non-owners, or storage failures
*/
func (service *Service) Update(ctx context.Context, claims *sec.SessionClaims, id string, input CreateInput) (*Course, error) {
	entry, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := service.authorizeOwner(claims, entry); err != nil {
		return nil, err
	}

	entry.Title = input.Title
	entry.Slug = slug.From(input.Title)
	entry.Description = input.Description
	entry.ImageURL = input.ImageURL
	entry.Price = input.Price
	entry.Duration = input.Duration
	entry.Category = input.Category
	entry.IsFeatured = input.IsFeatured

	if err := service.repository.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Delete removes a published course.

Returns:
  - error: NotFound, Forbidden for non-owners, or storage failures
*/
func (service *Service) Delete(ctx context.Context, claims *sec.SessionClaims, id string) error {
	entry, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.authorizeOwner(claims, entry); err != nil {
		return err
	}

	return service.repository.Delete(ctx, id)
}

// authorizeOwner allows the owning instructor or any admin.
func (service *Service) authorizeOwner(claims *sec.SessionClaims, entry *Course) error {
	if claims.Role == sec.RoleAdmin {
		return nil
	}
	if entry.InstructorID != claims.UserID {
		return apperr.Forbidden("Insufficient permissions")
	}
	return nil
}
