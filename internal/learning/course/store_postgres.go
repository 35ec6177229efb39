// Copyright (c) 2026 SkillSync. All rights reserved.

package course

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/pkg/pagination"
)

// # Catalog Repository (PostgreSQL)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the catalog Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const courseColumns = `
	id, title, slug, description, imageurl, price, duration, category,
	isfeatured, instructorid, instructorname, createdat, updatedat`

/*
List returns a filtered, paginated catalog page with the total match count.

Description: The filter clauses are appended dynamically so that the common
unfiltered listing stays a single index-friendly query.

Parameters:
  - ctx: context.Context
  - filter: Filter
  - page: pagination.Params

Returns:
  - []*Course: Newest-first catalog page
  - int: Total matching rows (for pagination metadata)
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]*Course, int, error) {
	query := `SELECT` + courseColumns + `
		FROM learning.course
		WHERE 1=1`
	countQuery := `SELECT count(*) FROM learning.course WHERE 1=1`

	args := []any{}

	if filter.FeaturedOnly {
		query += ` AND isfeatured = TRUE`
		countQuery += ` AND isfeatured = TRUE`
	}

	if filter.Category != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		query += ` AND category = ` + placeholder
		countQuery += ` AND category = ` + placeholder
		args = append(args, filter.Category)
	}

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_course_repo_count_failed: %w", err)
	}

	query += ` ORDER BY createdat DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset())

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_course_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		entry := &Course{}
		if err := scanCourse(rows, entry); err != nil {
			return nil, 0, fmt.Errorf("postgres_course_repo_scan_failed: %w", err)
		}
		courses = append(courses, entry)
	}

	return courses, total, rows.Err()
}

/*
FindByID retrieves a single catalog entry by its unique ID.

Returns:
  - *Course: Hydrated entity
  - error: apperr.NotFound("Course") or execution errors
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Course, error) {
	query := `SELECT` + courseColumns + `
		FROM learning.course
		WHERE id = $1`

	entry := &Course{}
	err := scanCourse(repository.pool.QueryRow(ctx, query, id), entry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		return nil, fmt.Errorf("postgres_course_repo_find_failed: %w", err)
	}

	return entry, nil
}

// ListByInstructor returns all courses owned by the given instructor, newest first.
func (repository *PostgresRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*Course, error) {
	query := `SELECT` + courseColumns + `
		FROM learning.course
		WHERE instructorid = $1
		ORDER BY createdat DESC`

	rows, err := repository.pool.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_list_by_instructor_failed: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		entry := &Course{}
		if err := scanCourse(rows, entry); err != nil {
			return nil, fmt.Errorf("postgres_course_repo_scan_failed: %w", err)
		}
		courses = append(courses, entry)
	}

	return courses, rows.Err()
}

/*
Create persists a new catalog entry into the learning.course table.

Parameters:
  - ctx: context.Context
  - course: *Course (Entity to persist; timestamps initialized if unset)

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, course *Course) error {
	const query = `
		INSERT INTO learning.course (
			id, title, slug, description, imageurl, price, duration, category,
			isfeatured, instructorid, instructorname, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Slug,
		course.Description,
		course.ImageURL,
		course.Price,
		course.Duration,
		course.Category,
		course.IsFeatured,
		course.InstructorID,
		course.InstructorName,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_course_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update overwrites the mutable catalog fields of an existing entry.

Description: The instructor columns are immutable after creation; ownership
never changes hands through this path.

Returns:
  - error: apperr.NotFound("Course") when the row is absent, or execution errors
*/
func (repository *PostgresRepository) Update(ctx context.Context, course *Course) error {
	const query = `
		UPDATE learning.course
		SET title = $2, slug = $3, description = $4, imageurl = $5, price = $6,
			duration = $7, category = $8, isfeatured = $9, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.pool.QueryRow(ctx, query,
		course.ID,
		course.Title,
		course.Slug,
		course.Description,
		course.ImageURL,
		course.Price,
		course.Duration,
		course.Category,
		course.IsFeatured,
	).Scan(&course.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Course")
		}
		return fmt.Errorf("postgres_course_repo_update_failed: %w", err)
	}

	return nil
}

// Delete removes a catalog entry. Absent rows surface as NotFound.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM learning.course WHERE id = $1`

	commandTag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_course_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}

	return nil
}

// scanCourse hydrates one Course from a row matching courseColumns order.
func scanCourse(row pgx.Row, entry *Course) error {
	return row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Slug,
		&entry.Description,
		&entry.ImageURL,
		&entry.Price,
		&entry.Duration,
		&entry.Category,
		&entry.IsFeatured,
		&entry.InstructorID,
		&entry.InstructorName,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
