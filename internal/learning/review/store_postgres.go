// Copyright (c) 2026 SkillSync. All rights reserved.

package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/dberr"
)

// # Review Repository (PostgreSQL)

// PostgresRepository implements the review Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the review Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new review into learning.review.

Returns:
  - error: apperr.Conflict when the user already reviewed the course
*/
func (repository *PostgresRepository) Create(ctx context.Context, review *Review) error {
	const query = `
		INSERT INTO learning.review (id, courseid, userid, username, useremail, rating, comment, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		review.ID,
		review.CourseID,
		review.UserID,
		review.UserName,
		review.UserEmail,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("You have already reviewed this course")
		}
		return fmt.Errorf("postgres_review_repo_create_failed: %w", err)
	}

	return nil
}

// ListByCourse returns a course's reviews, newest first.
func (repository *PostgresRepository) ListByCourse(ctx context.Context, courseID string) ([]*Review, error) {
	const query = `
		SELECT id, courseid, userid, username, useremail, rating, comment, createdat
		FROM learning.review
		WHERE courseid = $1
		ORDER BY createdat DESC`

	rows, err := repository.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_review_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		entry := &Review{}
		if err := scanReview(rows, entry); err != nil {
			return nil, fmt.Errorf("postgres_review_repo_scan_failed: %w", err)
		}
		reviews = append(reviews, entry)
	}

	return reviews, rows.Err()
}

// FindByID returns one review, for the ownership check before deletion.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Review, error) {
	const query = `
		SELECT id, courseid, userid, username, useremail, rating, comment, createdat
		FROM learning.review
		WHERE id = $1`

	entry := &Review{}
	err := scanReview(repository.pool.QueryRow(ctx, query, id), entry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Review")
		}
		return nil, fmt.Errorf("postgres_review_repo_find_failed: %w", err)
	}

	return entry, nil
}

// Delete removes a review. Absent rows surface as NotFound.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM learning.review WHERE id = $1`

	commandTag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_review_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}

	return nil
}

// scanReview hydrates one Review from a row.
func scanReview(row pgx.Row, entry *Review) error {
	return row.Scan(
		&entry.ID,
		&entry.CourseID,
		&entry.UserID,
		&entry.UserName,
		&entry.UserEmail,
		&entry.Rating,
		&entry.Comment,
		&entry.CreatedAt,
	)
}
