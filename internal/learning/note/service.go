// Copyright (c) 2026 SkillSync. All rights reserved.

package note

import (
	"context"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/uuid"
)

// # Service

// Service implements the private study notes use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new note [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// ListMine returns the caller's notes for a course, newest first.
func (service *Service) ListMine(ctx context.Context, claims *sec.SessionClaims, courseID string) ([]*Note, error) {
	return service.repository.ListByOwner(ctx, claims.UserID, courseID)
}

/*
Create stores a new note under the caller's identity.

Parameters:
  - ctx: context.Context
  - claims: *sec.SessionClaims (verified; owner)
  - courseID, text: string (text validated non-empty by the handler)

Returns:
  - *Note: Stored note
  - error: Storage failures
*/
func (service *Service) Create(ctx context.Context, claims *sec.SessionClaims, courseID, text string) (*Note, error) {
	entry := &Note{
		ID:        uuid.New(),
		CourseID:  courseID,
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
		Text:      text,
	}

	if err := service.repository.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Update replaces the body of the caller's own note.

Returns:
  - error: NotFound, Forbidden when the note belongs to someone else
*/
func (service *Service) Update(ctx context.Context, claims *sec.SessionClaims, noteID, text string) error {
	if err := service.authorizeOwner(ctx, claims, noteID); err != nil {
		return err
	}
	return service.repository.UpdateText(ctx, noteID, text)
}

/*
Delete removes the caller's own note.

Returns:
  - error: NotFound, Forbidden when the note belongs to someone else
*/
func (service *Service) Delete(ctx context.Context, claims *sec.SessionClaims, noteID string) error {
	if err := service.authorizeOwner(ctx, claims, noteID); err != nil {
		return err
	}
	return service.repository.Delete(ctx, noteID)
}

// authorizeOwner fetches the note and rejects anyone but its owner. Notes
// are strictly private, so even admins get no pass here.
func (service *Service) authorizeOwner(ctx context.Context, claims *sec.SessionClaims, noteID string) error {
	entry, err := service.repository.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if entry.UserID != claims.UserID {
		return apperr.Forbidden("You do not have permission to modify this note")
	}
	return nil
}
