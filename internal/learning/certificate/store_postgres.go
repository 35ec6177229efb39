// Copyright (c) 2026 SkillSync. All rights reserved.

package certificate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// # Certificate Repository (PostgreSQL)

// PostgresRepository implements the award Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the award Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Issue persists the award or returns the already-issued one.

Description: The DO UPDATE branch writes nothing meaningful (it re-assigns
the conflicting key to itself) purely so RETURNING yields the existing row;
DO NOTHING would return no row at all. Either way exactly one certificate
per (user, course) ever exists.
*/
func (repository *PostgresRepository) Issue(ctx context.Context, certificate *Certificate) (*Certificate, error) {
	const query = `
		INSERT INTO learning.certificate (
			id, userid, courseid, coursename, instructorname, completedat, content
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (userid, courseid) DO UPDATE SET userid = EXCLUDED.userid
		RETURNING id, userid, courseid, coursename, instructorname, completedat, content`

	issued := &Certificate{}
	err := repository.pool.QueryRow(ctx, query,
		certificate.ID,
		certificate.UserID,
		certificate.CourseID,
		certificate.CourseName,
		certificate.InstructorName,
		certificate.CompletedAt,
		certificate.Content,
	).Scan(
		&issued.ID,
		&issued.UserID,
		&issued.CourseID,
		&issued.CourseName,
		&issued.InstructorName,
		&issued.CompletedAt,
		&issued.Content,
	)

	if err != nil {
		return nil, fmt.Errorf("postgres_certificate_repo_issue_failed: %w", err)
	}

	return issued, nil
}

// ListByUser returns a user's awards, newest completion first.
func (repository *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Certificate, error) {
	const query = `
		SELECT id, userid, courseid, coursename, instructorname, completedat, content
		FROM learning.certificate
		WHERE userid = $1
		ORDER BY completedat DESC`

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_certificate_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var certificates []*Certificate
	for rows.Next() {
		entry := &Certificate{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.CourseID,
			&entry.CourseName,
			&entry.InstructorName,
			&entry.CompletedAt,
			&entry.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_certificate_repo_scan_failed: %w", err)
		}
		certificates = append(certificates, entry)
	}

	return certificates, rows.Err()
}
