// Copyright (c) 2026 SkillSync. All rights reserved.

package progress_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/learning/progress"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
)

// # Test Doubles

type recordKey struct{ userID, courseID string }

// fakeRepository mirrors the storage upsert semantics, including the
// permanent first completion stamp.
type fakeRepository struct {
	rows map[recordKey]*progress.Record
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[recordKey]*progress.Record)}
}

func (f *fakeRepository) Upsert(_ context.Context, record *progress.Record) error {
	key := recordKey{record.UserID, record.CourseID}

	if existing, exists := f.rows[key]; exists {
		record.ID = existing.ID
		record.StartedAt = existing.StartedAt
		if existing.CompletedAt != nil {
			record.CompletedAt = existing.CompletedAt
		}
	} else if record.StartedAt.IsZero() {
		record.StartedAt = time.Now()
	}
	record.UpdatedAt = time.Now()

	stored := *record
	f.rows[key] = &stored
	return nil
}

func (f *fakeRepository) Find(_ context.Context, userID, courseID string) (*progress.Record, error) {
	record, exists := f.rows[recordKey{userID, courseID}]
	if !exists {
		return nil, apperr.NotFound("Progress")
	}
	copied := *record
	return &copied, nil
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string) ([]*progress.Record, error) {
	var records []*progress.Record
	for key, record := range f.rows {
		if key.userID == userID {
			copied := *record
			records = append(records, &copied)
		}
	}
	return records, nil
}

func claimsFor(userID string, role sec.UserRole) *sec.SessionClaims {
	return &sec.SessionClaims{UserID: userID, Role: role}
}

// # State Machine

/*
TestService_Update covers the derived fields and the counter validation.
*/
func TestService_Update(t *testing.T) {
	tests := []struct {
		name          string
		completed     int
		total         int
		wantPercent   int
		wantCompleted bool
		wantStatus    int
	}{
		{"start", 0, 10, 0, false, 0},
		{"one_third", 1, 3, 33, false, 0},
		{"two_thirds", 2, 3, 67, false, 0},
		{"half", 5, 10, 50, false, 0},
		{"almost_done", 9, 10, 90, false, 0},
		{"complete", 10, 10, 100, true, 0},
		{"zero_total", 5, 0, 0, false, http.StatusBadRequest},
		{"negative_total", 5, -3, 0, false, http.StatusBadRequest},
		{"negative_completed", -1, 10, 0, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := progress.NewService(newFakeRepository())

			record, err := service.Update(context.Background(), claimsFor("alice", sec.RoleStudent), progress.UpdateInput{
				CourseID:         "course-1",
				LessonsCompleted: tt.completed,
				TotalLessons:     tt.total,
			})

			if tt.wantStatus != 0 {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPercent, record.ProgressPercent)
			assert.Equal(t, tt.wantCompleted, record.IsCompleted)

			if tt.wantCompleted {
				require.NotNil(t, record.CompletedAt)
			} else {
				assert.Nil(t, record.CompletedAt)
			}
		})
	}
}

/*
TestService_Update_CompletionStampIsPermanent walks a record through
completion, regression, and re-completion: the first stamp must survive.
*/
func TestService_Update_CompletionStampIsPermanent(t *testing.T) {
	repository := newFakeRepository()
	service := progress.NewService(repository)
	alice := claimsFor("alice", sec.RoleStudent)

	// Complete the course.
	first, err := service.Update(context.Background(), alice, progress.UpdateInput{
		CourseID: "course-1", LessonsCompleted: 10, TotalLessons: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)
	firstStamp := *first.CompletedAt

	// The course grows two lessons; the user is no longer complete.
	second, err := service.Update(context.Background(), alice, progress.UpdateInput{
		CourseID: "course-1", LessonsCompleted: 10, TotalLessons: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 83, second.ProgressPercent)
	assert.False(t, second.IsCompleted)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, firstStamp, *second.CompletedAt, "first completion stamp must survive regression")

	// Completing again must not move the stamp either.
	third, err := service.Update(context.Background(), alice, progress.UpdateInput{
		CourseID: "course-1", LessonsCompleted: 12, TotalLessons: 12,
	})
	require.NoError(t, err)
	assert.True(t, third.IsCompleted)
	assert.Equal(t, firstStamp, *third.CompletedAt)
}

// # Reads

func TestService_GetCourseProgress(t *testing.T) {
	repository := newFakeRepository()
	service := progress.NewService(repository)
	alice := claimsFor("alice", sec.RoleStudent)

	_, err := service.Update(context.Background(), alice, progress.UpdateInput{
		CourseID: "course-1", LessonsCompleted: 3, TotalLessons: 10,
	})
	require.NoError(t, err)

	t.Run("own_record", func(t *testing.T) {
		record, err := service.GetCourseProgress(context.Background(), alice, "alice", "course-1")
		require.NoError(t, err)
		assert.Equal(t, 30, record.ProgressPercent)
	})

	t.Run("untouched_course_returns_zero_value", func(t *testing.T) {
		record, err := service.GetCourseProgress(context.Background(), alice, "alice", "course-2")
		require.NoError(t, err)
		assert.Equal(t, 0, record.ProgressPercent)
		assert.False(t, record.IsCompleted)
		assert.Equal(t, 0, record.LessonsCompleted)
		assert.Equal(t, 0, record.TotalLessons)
	})

	t.Run("cross_user_forbidden", func(t *testing.T) {
		bob := claimsFor("bob", sec.RoleStudent)
		_, err := service.GetCourseProgress(context.Background(), bob, "alice", "course-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		admin := claimsFor("root", sec.RoleAdmin)
		record, err := service.GetCourseProgress(context.Background(), admin, "alice", "course-1")
		require.NoError(t, err)
		assert.Equal(t, 30, record.ProgressPercent)
	})
}

func TestService_GetUserProgress(t *testing.T) {
	repository := newFakeRepository()
	service := progress.NewService(repository)
	alice := claimsFor("alice", sec.RoleStudent)

	for _, courseID := range []string{"course-1", "course-2"} {
		_, err := service.Update(context.Background(), alice, progress.UpdateInput{
			CourseID: courseID, LessonsCompleted: 1, TotalLessons: 4,
		})
		require.NoError(t, err)
	}

	records, err := service.GetUserProgress(context.Background(), alice, "alice")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = service.GetUserProgress(context.Background(), claimsFor("bob", sec.RoleStudent), "alice")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
}
