// Copyright (c) 2026 SkillSync. All rights reserved.

package progress

import "context"

// # Progress Data Access

// Repository defines the data access contract for progress records.
type Repository interface {

	/*
		Upsert writes the record for its (user, course) pair, inserting on
		first contact and overwriting the counters afterwards.

		Two columns survive the overwrite: startedat keeps the value of the
		first insert, and completedat keeps the FIRST non-null stamp ever
		written so the completion date is permanent.

		Returns:
		  - error: Persistence failures
	*/
	Upsert(ctx context.Context, record *Record) error

	/*
		Find returns the record for one (user, course) pair.

		Returns:
		  - *Record: Hydrated record
		  - error: NotFound when the user never touched the course
	*/
	Find(ctx context.Context, userID, courseID string) (*Record, error)

	// ListByUser returns every record of one user, most recently updated first.
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
}
