// Copyright (c) 2026 SkillSync. All rights reserved.

package certificate_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/learning/certificate"
	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/learning/progress"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
)

// # Test Doubles

type awardKey struct{ userID, courseID string }

// fakeRepository mirrors the idempotent issue semantics of the storage layer.
type fakeRepository struct {
	rows map[awardKey]*certificate.Certificate
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[awardKey]*certificate.Certificate)}
}

func (f *fakeRepository) Issue(_ context.Context, award *certificate.Certificate) (*certificate.Certificate, error) {
	key := awardKey{award.UserID, award.CourseID}
	if existing, exists := f.rows[key]; exists {
		return existing, nil
	}
	f.rows[key] = award
	return award, nil
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string) ([]*certificate.Certificate, error) {
	var awards []*certificate.Certificate
	for key, award := range f.rows {
		if key.userID == userID {
			awards = append(awards, award)
		}
	}
	return awards, nil
}

// fakeCompletion serves canned progress records, or fails outright.
type fakeCompletion struct {
	records map[awardKey]*progress.Record
	err     error
}

func (f *fakeCompletion) Completion(_ context.Context, userID, courseID string) (*progress.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	record, exists := f.records[awardKey{userID, courseID}]
	if !exists {
		return nil, apperr.NotFound("Progress")
	}
	return record, nil
}

// fakeCourseFinder serves one fixed course.
type fakeCourseFinder struct{}

func (f *fakeCourseFinder) FindByID(_ context.Context, id string) (*course.Course, error) {
	if id != "course-1" {
		return nil, apperr.NotFound("Course")
	}
	return &course.Course{ID: id, Title: "Go Fundamentals", InstructorName: "Pat Instructor"}, nil
}

func newService(completion *fakeCompletion) (*certificate.Service, *fakeRepository) {
	repository := newFakeRepository()
	return certificate.NewService(repository, completion, &fakeCourseFinder{}), repository
}

func aliceClaims() *sec.SessionClaims {
	return &sec.SessionClaims{UserID: "alice", Name: "Alice Learner", Role: sec.RoleStudent}
}

// # Issuance

/*
TestService_Generate_RequiresCompletion verifies the hard gate: no completed
progress record means no award and nothing persisted.
*/
func TestService_Generate_RequiresCompletion(t *testing.T) {
	tests := []struct {
		name    string
		records map[awardKey]*progress.Record
	}{
		{"no_progress_record", map[awardKey]*progress.Record{}},
		{
			"incomplete_progress",
			map[awardKey]*progress.Record{
				{"alice", "course-1"}: {UserID: "alice", CourseID: "course-1", ProgressPercent: 90, IsCompleted: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository := newService(&fakeCompletion{records: tt.records})

			_, err := service.Generate(context.Background(), aliceClaims(), "course-1")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Equal(t, "Course not completed", ae.Message)
			assert.Empty(t, repository.rows, "a refused issuance must persist nothing")
		})
	}
}

/*
TestService_Generate_SurfacesTrackerFailure makes sure a broken progress
lookup is reported as the storage failure it is, not misread as an
incomplete course.
*/
func TestService_Generate_SurfacesTrackerFailure(t *testing.T) {
	trackerDown := errors.New("connection refused")
	service, repository := newService(&fakeCompletion{err: trackerDown})

	_, err := service.Generate(context.Background(), aliceClaims(), "course-1")
	require.Error(t, err)

	assert.ErrorIs(t, err, trackerDown)
	assert.Nil(t, apperr.As(err), "the raw storage error must propagate untranslated")
	assert.Empty(t, repository.rows, "a failed issuance must persist nothing")
}

/*
TestService_Generate_RendersAward checks the rendered document and the frozen
course metadata.
*/
func TestService_Generate_RendersAward(t *testing.T) {
	stamp := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	completion := &fakeCompletion{records: map[awardKey]*progress.Record{
		{"alice", "course-1"}: {
			UserID: "alice", CourseID: "course-1",
			ProgressPercent: 100, IsCompleted: true, CompletedAt: &stamp,
		},
	}}
	service, _ := newService(completion)

	award, err := service.Generate(context.Background(), aliceClaims(), "course-1")
	require.NoError(t, err)

	assert.Equal(t, "Go Fundamentals", award.CourseName)
	assert.Equal(t, "Pat Instructor", award.InstructorName)
	assert.Equal(t, stamp, award.CompletedAt)

	assert.True(t, strings.HasPrefix(award.Content, "CERTIFICATE OF COMPLETION"))
	assert.Contains(t, award.Content, "Alice Learner")
	assert.Contains(t, award.Content, "Go Fundamentals")
	assert.Contains(t, award.Content, "Instructed by: Pat Instructor")
	assert.Contains(t, award.Content, "Date of Completion: 3/14/2026")
	assert.True(t, strings.HasSuffix(award.Content, "Signed,\nSkillSync Learning Platform"))
}

/*
TestService_Generate_Idempotent issues twice and expects the original award
back, byte for byte.
*/
func TestService_Generate_Idempotent(t *testing.T) {
	stamp := time.Now()
	completion := &fakeCompletion{records: map[awardKey]*progress.Record{
		{"alice", "course-1"}: {
			UserID: "alice", CourseID: "course-1",
			ProgressPercent: 100, IsCompleted: true, CompletedAt: &stamp,
		},
	}}
	service, repository := newService(completion)

	first, err := service.Generate(context.Background(), aliceClaims(), "course-1")
	require.NoError(t, err)

	second, err := service.Generate(context.Background(), aliceClaims(), "course-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Content, second.Content)
	assert.Len(t, repository.rows, 1)
}

// # Retrieval

func TestService_ListUser(t *testing.T) {
	stamp := time.Now()
	completion := &fakeCompletion{records: map[awardKey]*progress.Record{
		{"alice", "course-1"}: {
			UserID: "alice", CourseID: "course-1",
			ProgressPercent: 100, IsCompleted: true, CompletedAt: &stamp,
		},
	}}
	service, _ := newService(completion)

	_, err := service.Generate(context.Background(), aliceClaims(), "course-1")
	require.NoError(t, err)

	t.Run("self", func(t *testing.T) {
		awards, err := service.ListUser(context.Background(), aliceClaims(), "alice")
		require.NoError(t, err)
		assert.Len(t, awards, 1)
	})

	t.Run("cross_user_forbidden", func(t *testing.T) {
		bob := &sec.SessionClaims{UserID: "bob", Role: sec.RoleStudent}
		_, err := service.ListUser(context.Background(), bob, "alice")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		admin := &sec.SessionClaims{UserID: "root", Role: sec.RoleAdmin}
		awards, err := service.ListUser(context.Background(), admin, "alice")
		require.NoError(t, err)
		assert.Len(t, awards, 1)
	})
}
