// Copyright (c) 2026 SkillSync. All rights reserved.

package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/dberr"
)

// # Enrollment Repository (PostgreSQL)

// PostgresRepository implements the ledger Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the ledger Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new ledger row into learning.enrollment.

Description: The (userid, courseid) unique index turns a concurrent double
enrollment into a clean Conflict without any prior existence check.

Returns:
  - error: apperr.Conflict on duplicate, or execution errors
*/
func (repository *PostgresRepository) Create(ctx context.Context, enrollment *Enrollment) error {
	const query = `
		INSERT INTO learning.enrollment (id, userid, useremail, courseid, progress, enrolledat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		enrollment.ID,
		enrollment.UserID,
		enrollment.UserEmail,
		enrollment.CourseID,
		enrollment.Progress,
		enrollment.EnrolledAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Already enrolled in this course")
		}
		return fmt.Errorf("postgres_enrollment_repo_create_failed: %w", err)
	}

	return nil
}

// Exists reports whether the user holds an enrollment in the course.
func (repository *PostgresRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM learning.enrollment WHERE userid = $1 AND courseid = $2
		)`

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, userID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_enrollment_repo_exists_failed: %w", err)
	}

	return exists, nil
}

/*
ListCourses joins the ledger against the catalog and returns the full course
entities the user is enrolled in, most recent enrollment first.
*/
func (repository *PostgresRepository) ListCourses(ctx context.Context, userID string) ([]*course.Course, error) {
	const query = `
		SELECT c.id, c.title, c.slug, c.description, c.imageurl, c.price, c.duration,
			c.category, c.isfeatured, c.instructorid, c.instructorname, c.createdat, c.updatedat
		FROM learning.enrollment e
		JOIN learning.course c ON c.id = e.courseid
		WHERE e.userid = $1
		ORDER BY e.enrolledat DESC`

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_enrollment_repo_list_courses_failed: %w", err)
	}
	defer rows.Close()

	var courses []*course.Course
	for rows.Next() {
		entry := &course.Course{}
		err := rows.Scan(
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
		if err != nil {
			return nil, fmt.Errorf("postgres_enrollment_repo_scan_failed: %w", err)
		}
		courses = append(courses, entry)
	}

	return courses, rows.Err()
}

// Delete removes the user's ledger row for the course.
func (repository *PostgresRepository) Delete(ctx context.Context, userID, courseID string) error {
	const query = `DELETE FROM learning.enrollment WHERE userid = $1 AND courseid = $2`

	commandTag, err := repository.pool.Exec(ctx, query, userID, courseID)
	if err != nil {
		return fmt.Errorf("postgres_enrollment_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Enrollment")
	}

	return nil
}

// SetProgress stores the coarse percent indicator on the ledger row.
func (repository *PostgresRepository) SetProgress(ctx context.Context, userID, courseID string, percent int) error {
	const query = `
		UPDATE learning.enrollment
		SET progress = $3
		WHERE userid = $1 AND courseid = $2`

	commandTag, err := repository.pool.Exec(ctx, query, userID, courseID, percent)
	if err != nil {
		return fmt.Errorf("postgres_enrollment_repo_set_progress_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Enrollment")
	}

	return nil
}
