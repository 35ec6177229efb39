// Copyright (c) 2026 SkillSync. All rights reserved.

package note_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/learning/note"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
)

// # Test Doubles

// fakeRepository is an in-memory note store keyed by ID.
type fakeRepository struct {
	byID map[string]*note.Note
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*note.Note)}
}

func (f *fakeRepository) Create(_ context.Context, entry *note.Note) error {
	f.byID[entry.ID] = entry
	return nil
}

func (f *fakeRepository) ListByOwner(_ context.Context, userID, courseID string) ([]*note.Note, error) {
	var notes []*note.Note
	for _, entry := range f.byID {
		if entry.UserID == userID && entry.CourseID == courseID {
			notes = append(notes, entry)
		}
	}
	return notes, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*note.Note, error) {
	entry, exists := f.byID[id]
	if !exists {
		return nil, apperr.NotFound("Note")
	}
	return entry, nil
}

func (f *fakeRepository) UpdateText(_ context.Context, id, text string) error {
	entry, exists := f.byID[id]
	if !exists {
		return apperr.NotFound("Note")
	}
	entry.Text = text
	entry.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, exists := f.byID[id]; !exists {
		return apperr.NotFound("Note")
	}
	delete(f.byID, id)
	return nil
}

func claimsFor(userID string, role sec.UserRole) *sec.SessionClaims {
	return &sec.SessionClaims{UserID: userID, Name: "Name of " + userID, Role: role}
}

// # Ownership

/*
TestService_Ownership verifies that notes are strictly private: only the
author can list, edit, or delete them, and admins get no special access.
*/
func TestService_Ownership(t *testing.T) {
	repository := newFakeRepository()
	service := note.NewService(repository)

	alice := claimsFor("alice", sec.RoleStudent)
	entry, err := service.Create(context.Background(), alice, "course-1", "remember the pointer rules")
	require.NoError(t, err)
	assert.Equal(t, "alice", entry.UserID)

	t.Run("owner_lists_own_notes", func(t *testing.T) {
		notes, err := service.ListMine(context.Background(), alice, "course-1")
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("other_user_sees_nothing", func(t *testing.T) {
		notes, err := service.ListMine(context.Background(), claimsFor("bob", sec.RoleStudent), "course-1")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("other_user_cannot_edit", func(t *testing.T) {
		err := service.Update(context.Background(), claimsFor("bob", sec.RoleStudent), entry.ID, "hijacked")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("admin_cannot_edit_either", func(t *testing.T) {
		err := service.Update(context.Background(), claimsFor("root", sec.RoleAdmin), entry.ID, "hijacked")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("owner_edits", func(t *testing.T) {
		require.NoError(t, service.Update(context.Background(), alice, entry.ID, "revised"))
		notes, err := service.ListMine(context.Background(), alice, "course-1")
		require.NoError(t, err)
		assert.Equal(t, "revised", notes[0].Text)
	})

	t.Run("unknown_note", func(t *testing.T) {
		err := service.Delete(context.Background(), alice, "missing-id")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
	})

	t.Run("owner_deletes", func(t *testing.T) {
		require.NoError(t, service.Delete(context.Background(), alice, entry.ID))
		notes, err := service.ListMine(context.Background(), alice, "course-1")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}
