// Copyright (c) 2026 SkillSync. All rights reserved.

package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/platform/apperr"
)

// # Note Repository (PostgreSQL)

// PostgresRepository implements the note Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the note Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new note into learning.note.
func (repository *PostgresRepository) Create(ctx context.Context, note *Note) error {
	const query = `
		INSERT INTO learning.note (id, courseid, userid, username, useremail, text, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		note.ID,
		note.CourseID,
		note.UserID,
		note.UserName,
		note.UserEmail,
		note.Text,
		note.CreatedAt,
		note.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_note_repo_create_failed: %w", err)
	}

	return nil
}

// ListByOwner returns one user's notes for a course, newest first.
func (repository *PostgresRepository) ListByOwner(ctx context.Context, userID, courseID string) ([]*Note, error) {
	const query = `
		SELECT id, courseid, userid, username, useremail, text, createdat, updatedat
		FROM learning.note
		WHERE userid = $1 AND courseid = $2
		ORDER BY createdat DESC`

	rows, err := repository.pool.Query(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_note_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		entry := &Note{}
		if err := scanNote(rows, entry); err != nil {
			return nil, fmt.Errorf("postgres_note_repo_scan_failed: %w", err)
		}
		notes = append(notes, entry)
	}

	return notes, rows.Err()
}

// FindByID returns one note, for the ownership check before mutation.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Note, error) {
	const query = `
		SELECT id, courseid, userid, username, useremail, text, createdat, updatedat
		FROM learning.note
		WHERE id = $1`

	entry := &Note{}
	err := scanNote(repository.pool.QueryRow(ctx, query, id), entry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Note")
		}
		return nil, fmt.Errorf("postgres_note_repo_find_failed: %w", err)
	}

	return entry, nil
}

// UpdateText replaces the note body and refreshes the update timestamp.
func (repository *PostgresRepository) UpdateText(ctx context.Context, id, text string) error {
	const query = `UPDATE learning.note SET text = $2, updatedat = NOW() WHERE id = $1`

	commandTag, err := repository.pool.Exec(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("postgres_note_repo_update_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Note")
	}

	return nil
}

// Delete removes a note. Absent rows surface as NotFound.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM learning.note WHERE id = $1`

	commandTag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_note_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Note")
	}

	return nil
}

// scanNote hydrates one Note from a row.
func scanNote(row pgx.Row, entry *Note) error {
	return row.Scan(
		&entry.ID,
		&entry.CourseID,
		&entry.UserID,
		&entry.UserName,
		&entry.UserEmail,
		&entry.Text,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
