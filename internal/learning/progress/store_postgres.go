// Copyright (c) 2026 SkillSync. All rights reserved.

package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/platform/apperr"
)

// # Progress Repository (PostgreSQL)

// PostgresRepository implements the progress Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the progress Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const recordColumns = `
	id, userid, courseid, lessonscompleted, totallessons, progresspercent,
	iscompleted, completedat, startedat, updatedat`

/*
Upsert writes the record for its (user, course) pair in a single statement.

Description: The unique index on (userid, courseid) drives the conflict
branch. On update the counters are overwritten, startedat is left untouched,
and completedat keeps whichever stamp came first:

	completedat = COALESCE(learning.progress.completedat, EXCLUDED.completedat)

so the first completion date is permanent even when the course is later
reopened or its lesson count grows.
*/
func (repository *PostgresRepository) Upsert(ctx context.Context, record *Record) error {
	const query = `
		INSERT INTO learning.progress (
			id, userid, courseid, lessonscompleted, totallessons, progresspercent,
			iscompleted, completedat, startedat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (userid, courseid) DO UPDATE SET
			lessonscompleted = EXCLUDED.lessonscompleted,
			totallessons     = EXCLUDED.totallessons,
			progresspercent  = EXCLUDED.progresspercent,
			iscompleted      = EXCLUDED.iscompleted,
			completedat      = COALESCE(learning.progress.completedat, EXCLUDED.completedat),
			updatedat        = EXCLUDED.updatedat
		RETURNING id, completedat, startedat`

	now := time.Now()
	if record.StartedAt.IsZero() {
		record.StartedAt = now
	}
	record.UpdatedAt = now

	err := repository.pool.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.CourseID,
		record.LessonsCompleted,
		record.TotalLessons,
		record.ProgressPercent,
		record.IsCompleted,
		record.CompletedAt,
		record.StartedAt,
		record.UpdatedAt,
	).Scan(&record.ID, &record.CompletedAt, &record.StartedAt)

	if err != nil {
		return fmt.Errorf("postgres_progress_repo_upsert_failed: %w", err)
	}

	return nil
}

/*
Find returns the record for one (user, course) pair.

Returns:
  - *Record: Hydrated record
  - error: apperr.NotFound("Progress") or execution errors
*/
func (repository *PostgresRepository) Find(ctx context.Context, userID, courseID string) (*Record, error) {
	query := `SELECT` + recordColumns + `
		FROM learning.progress
		WHERE userid = $1 AND courseid = $2`

	record := &Record{}
	err := scanRecord(repository.pool.QueryRow(ctx, query, userID, courseID), record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Progress")
		}
		return nil, fmt.Errorf("postgres_progress_repo_find_failed: %w", err)
	}

	return record, nil
}

// ListByUser returns every record of one user, most recently updated first.
func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	query := `SELECT` + recordColumns + `
		FROM learning.progress
		WHERE userid = $1
		ORDER BY updatedat DESC`

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_progress_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		if err := scanRecord(rows, record); err != nil {
			return nil, fmt.Errorf("postgres_progress_repo_scan_failed: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanRecord hydrates one Record from a row matching recordColumns order.
func scanRecord(row pgx.Row, record *Record) error {
	return row.Scan(
		&record.ID,
		&record.UserID,
		&record.CourseID,
		&record.LessonsCompleted,
		&record.TotalLessons,
		&record.ProgressPercent,
		&record.IsCompleted,
		&record.CompletedAt,
		&record.StartedAt,
		&record.UpdatedAt,
	)
}
