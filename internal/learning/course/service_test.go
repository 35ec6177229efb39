// Copyright (c) 2026 SkillSync. All rights reserved.

package course_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/pkg/pagination"
)

// # Test Doubles

// fakeRepository is an in-memory catalog keyed by course ID.
type fakeRepository struct {
	byID map[string]*course.Course
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*course.Course)}
}

func (f *fakeRepository) List(_ context.Context, filter course.Filter, _ pagination.Params) ([]*course.Course, int, error) {
	var matches []*course.Course
	for _, entry := range f.byID {
		if filter.FeaturedOnly && !entry.IsFeatured {
			continue
		}
		if filter.Category != "" && entry.Category != filter.Category {
			continue
		}
		matches = append(matches, entry)
	}
	return matches, len(matches), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*course.Course, error) {
	entry, exists := f.byID[id]
	if !exists {
		return nil, apperr.NotFound("Course")
	}
	return entry, nil
}

func (f *fakeRepository) ListByInstructor(_ context.Context, instructorID string) ([]*course.Course, error) {
	var matches []*course.Course
	for _, entry := range f.byID {
		if entry.InstructorID == instructorID {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

func (f *fakeRepository) Create(_ context.Context, entry *course.Course) error {
	f.byID[entry.ID] = entry
	return nil
}

func (f *fakeRepository) Update(_ context.Context, entry *course.Course) error {
	if _, exists := f.byID[entry.ID]; !exists {
		return apperr.NotFound("Course")
	}
	f.byID[entry.ID] = entry
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, exists := f.byID[id]; !exists {
		return apperr.NotFound("Course")
	}
	delete(f.byID, id)
	return nil
}

func claimsFor(userID string, role sec.UserRole) *sec.SessionClaims {
	return &sec.SessionClaims{UserID: userID, Name: "Name of " + userID, Role: role}
}

// # Authoring

/*
TestService_Create verifies the role gate and the denormalized instructor
identity taken from verified claims.
*/
func TestService_Create(t *testing.T) {
	input := course.CreateInput{
		Title:       "Go Fundamentals",
		Description: "An introduction",
		ImageURL:    "https://img.example.com/go.png",
		Price:       49.99,
		Duration:    "6 weeks",
		Category:    "programming",
	}

	tests := []struct {
		name       string
		role       sec.UserRole
		wantStatus int
	}{
		{"instructor_allowed", sec.RoleInstructor, 0},
		{"admin_allowed", sec.RoleAdmin, 0},
		{"student_forbidden", sec.RoleStudent, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := course.NewService(newFakeRepository())

			entry, err := service.Create(context.Background(), claimsFor("user-1", tt.role), input)

			if tt.wantStatus != 0 {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", entry.InstructorID)
			assert.Equal(t, "Name of user-1", entry.InstructorName)
			assert.Equal(t, "go-fundamentals", entry.Slug)
		})
	}
}

/*
TestService_Update_Ownership verifies that only the owning instructor or an
admin can edit a course.
*/
func TestService_Update_Ownership(t *testing.T) {
	repository := newFakeRepository()
	service := course.NewService(repository)

	owner := claimsFor("owner-1", sec.RoleInstructor)
	created, err := service.Create(context.Background(), owner, course.CreateInput{
		Title: "Original Title", Description: "d", ImageURL: "i", Duration: "1 week", Category: "c",
	})
	require.NoError(t, err)

	edit := course.CreateInput{
		Title: "New Title", Description: "d", ImageURL: "i", Duration: "1 week", Category: "c",
	}

	t.Run("other_instructor_forbidden", func(t *testing.T) {
		_, err := service.Update(context.Background(), claimsFor("intruder", sec.RoleInstructor), created.ID, edit)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
	})

	t.Run("owner_allowed", func(t *testing.T) {
		updated, err := service.Update(context.Background(), owner, created.ID, edit)
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "new-title", updated.Slug)
		// Ownership never changes through an edit.
		assert.Equal(t, "owner-1", updated.InstructorID)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		_, err := service.Update(context.Background(), claimsFor("admin-1", sec.RoleAdmin), created.ID, edit)
		require.NoError(t, err)
	})

	t.Run("unknown_course", func(t *testing.T) {
		_, err := service.Update(context.Background(), owner, "missing-id", edit)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	})
}

/*
TestService_Delete_Ownership mirrors the edit gate for removal.
*/
func TestService_Delete_Ownership(t *testing.T) {
	repository := newFakeRepository()
	service := course.NewService(repository)

	owner := claimsFor("owner-1", sec.RoleInstructor)
	created, err := service.Create(context.Background(), owner, course.CreateInput{
		Title: "Doomed", Description: "d", ImageURL: "i", Duration: "1 week", Category: "c",
	})
	require.NoError(t, err)

	err = service.Delete(context.Background(), claimsFor("intruder", sec.RoleInstructor), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)

	require.NoError(t, service.Delete(context.Background(), owner, created.ID))

	_, err = service.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}
