// Copyright (c) 2026 SkillSync. All rights reserved.

package note

import "context"

// # Note Data Access

// Repository defines the data access contract for study notes.
type Repository interface {

	// Create persists a new note.
	Create(ctx context.Context, note *Note) error

	// ListByOwner returns one user's notes for a course, newest first.
	ListByOwner(ctx context.Context, userID, courseID string) ([]*Note, error)

	// FindByID returns one note, for the ownership check before mutation.
	FindByID(ctx context.Context, id string) (*Note, error)

	// UpdateText replaces the note body and refreshes the update timestamp.
	// Returns NotFound when the row is absent.
	UpdateText(ctx context.Context, id, text string) error

	// Delete removes a note. Returns NotFound when the row is absent.
	Delete(ctx context.Context, id string) error
}
