// Copyright (c) 2026 SkillSync. All rights reserved.

package course

import (
	"context"

	"github.com/skillsync/api/pkg/pagination"
)

// # Catalog Data Access

// Repository defines the data access contract for the course catalog.
type Repository interface {

	/*
		List returns a filtered, paginated page of the catalog plus the
		total row count for the filter.

		Parameters:
		  - ctx: context.Context
		  - filter: Filter (featured / category narrowing)
		  - page: pagination.Params

		Returns:
		  - []*Course: Catalog page, newest first
		  - int: Total matching rows
		  - error: Database retrieval failures
	*/
	List(ctx context.Context, filter Filter, page pagination.Params) ([]*Course, int, error)

	/*
		FindByID returns a single catalog entry.

		Returns:
		  - *Course: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(ctx context.Context, id string) (*Course, error)

	/*
		ListByInstructor returns every course owned by one instructor,
		newest first.
	*/
	ListByInstructor(ctx context.Context, instructorID string) ([]*Course, error)

	// Create persists a new catalog entry.
	Create(ctx context.Context, course *Course) error

	// Update overwrites the mutable fields of an existing entry.
	// Returns NotFound when the row does not exist.
	Update(ctx context.Context, course *Course) error

	// Delete removes a catalog entry.
	// Returns NotFound when the row does not exist.
	Delete(ctx context.Context, id string) error
}
