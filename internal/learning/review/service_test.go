// Copyright (c) 2026 SkillSync. All rights reserved.

package review_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsync/api/internal/learning/review"
	"github.com/skillsync/api/internal/platform/apperr"
	"github.com/skillsync/api/internal/platform/sec"
)

// # Test Doubles

type reviewKey struct{ userID, courseID string }

// fakeRepository is an in-memory review store enforcing the unique pair rule.
type fakeRepository struct {
	byID   map[string]*review.Review
	byPair map[reviewKey]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   make(map[string]*review.Review),
		byPair: make(map[reviewKey]string),
	}
}

func (f *fakeRepository) Create(_ context.Context, entry *review.Review) error {
	key := reviewKey{entry.UserID, entry.CourseID}
	if _, exists := f.byPair[key]; exists {
		return apperr.Conflict("You have already reviewed this course")
	}
	f.byID[entry.ID] = entry
	f.byPair[key] = entry.ID
	return nil
}

func (f *fakeRepository) ListByCourse(_ context.Context, courseID string) ([]*review.Review, error) {
	var reviews []*review.Review
	for _, entry := range f.byID {
		if entry.CourseID == courseID {
			reviews = append(reviews, entry)
		}
	}
	return reviews, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*review.Review, error) {
	entry, exists := f.byID[id]
	if !exists {
		return nil, apperr.NotFound("Review")
	}
	return entry, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	entry, exists := f.byID[id]
	if !exists {
		return apperr.NotFound("Review")
	}
	delete(f.byID, id)
	delete(f.byPair, reviewKey{entry.UserID, entry.CourseID})
	return nil
}

// fakeEnrollments reports a fixed enrollment set, with a switchable failure.
type fakeEnrollments struct {
	enrolled map[reviewKey]bool
	fail     bool
}

func (f *fakeEnrollments) IsEnrolled(_ context.Context, userID, courseID string) (bool, error) {
	if f.fail {
		return false, errors.New("ledger unavailable")
	}
	return f.enrolled[reviewKey{userID, courseID}], nil
}

func claimsFor(userID string, role sec.UserRole) *sec.SessionClaims {
	return &sec.SessionClaims{
		UserID: userID,
		Name:   "Name of " + userID,
		Email:  userID + "@example.com",
		Role:   role,
	}
}

// # Creation

/*
TestService_Create covers the rating bounds, the enrollment gate, and the
one-review-per-course rule.
*/
func TestService_Create(t *testing.T) {
	enrollments := &fakeEnrollments{enrolled: map[reviewKey]bool{
		{"alice", "course-1"}: true,
	}}
	service := review.NewService(newFakeRepository(), enrollments)

	alice := claimsFor("alice", sec.RoleStudent)

	t.Run("rating_bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := service.Create(context.Background(), alice, review.CreateInput{
				CourseID: "course-1", Rating: rating,
			})
			require.Error(t, err, "rating %d must be rejected", rating)
			assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
		}
	})

	t.Run("not_enrolled_forbidden", func(t *testing.T) {
		bob := claimsFor("bob", sec.RoleStudent)
		_, err := service.Create(context.Background(), bob, review.CreateInput{
			CourseID: "course-1", Rating: 4,
		})
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
	})

	t.Run("enrolled_creates", func(t *testing.T) {
		entry, err := service.Create(context.Background(), alice, review.CreateInput{
			CourseID: "course-1", Rating: 4, Comment: "Solid material",
		})
		require.NoError(t, err)
		assert.Equal(t, "Name of alice", entry.UserName)
		assert.Equal(t, "alice@example.com", entry.UserEmail)
		assert.Equal(t, 4, entry.Rating)
	})

	t.Run("second_review_conflicts", func(t *testing.T) {
		_, err := service.Create(context.Background(), alice, review.CreateInput{
			CourseID: "course-1", Rating: 5,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)
	})

	t.Run("ledger_failure_refuses", func(t *testing.T) {
		enrollments.fail = true
		defer func() { enrollments.fail = false }()

		_, err := service.Create(context.Background(), alice, review.CreateInput{
			CourseID: "course-1", Rating: 3,
		})
		require.Error(t, err)
		assert.Nil(t, apperr.As(err), "an unreadable ledger is a server error, not a policy answer")
	})
}

// # Aggregates

/*
TestService_CourseReviews checks the one-decimal average and the per-star
distribution with all buckets present.
*/
func TestService_CourseReviews(t *testing.T) {
	enrolled := map[reviewKey]bool{}
	for _, userID := range []string{"u1", "u2", "u3"} {
		enrolled[reviewKey{userID, "course-1"}] = true
	}
	service := review.NewService(newFakeRepository(), &fakeEnrollments{enrolled: enrolled})

	t.Run("empty_course", func(t *testing.T) {
		reviews, summary, err := service.CourseReviews(context.Background(), "course-1")
		require.NoError(t, err)
		assert.Empty(t, reviews)
		assert.Equal(t, 0.0, summary.AverageRating)
		assert.Equal(t, 0, summary.TotalReviews)
		assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, summary.Distribution)
	})

	ratings := map[string]int{"u1": 5, "u2": 4, "u3": 4}
	for userID, rating := range ratings {
		_, err := service.Create(context.Background(), claimsFor(userID, sec.RoleStudent), review.CreateInput{
			CourseID: "course-1", Rating: rating,
		})
		require.NoError(t, err)
	}

	t.Run("aggregates", func(t *testing.T) {
		reviews, summary, err := service.CourseReviews(context.Background(), "course-1")
		require.NoError(t, err)
		assert.Len(t, reviews, 3)
		// (5+4+4)/3 = 4.333..., rounded to one decimal.
		assert.Equal(t, 4.3, summary.AverageRating)
		assert.Equal(t, 3, summary.TotalReviews)
		assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 2, "5": 1}, summary.Distribution)
	})
}

// # Deletion

func TestService_Delete(t *testing.T) {
	enrollments := &fakeEnrollments{enrolled: map[reviewKey]bool{
		{"alice", "course-1"}: true,
	}}
	service := review.NewService(newFakeRepository(), enrollments)

	alice := claimsFor("alice", sec.RoleStudent)
	entry, err := service.Create(context.Background(), alice, review.CreateInput{
		CourseID: "course-1", Rating: 2,
	})
	require.NoError(t, err)

	t.Run("unknown_review", func(t *testing.T) {
		err := service.Delete(context.Background(), alice, "missing-id")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
	})

	t.Run("non_author_forbidden", func(t *testing.T) {
		err := service.Delete(context.Background(), claimsFor("bob", sec.RoleStudent), entry.ID)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("admin_allowed", func(t *testing.T) {
		err := service.Delete(context.Background(), claimsFor("root", sec.RoleAdmin), entry.ID)
		require.NoError(t, err)
	})
}
