// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package review stores course ratings and serves them with aggregate
statistics.

Writing requires an enrollment in the course and happens at most once per
(user, course); reading is public so catalog pages can show ratings to
anonymous visitors.
*/
package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements review HTTP endpoints.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Routes returns a [chi.Router] configured with review routes.
//
// # Endpoints
//   - POST   /             : Stores the caller's review (enrolled users only).
//   - GET    /{courseId}   : Lists a course's reviews with aggregates (public).
//   - DELETE /{reviewId}   : Removes a review (author/admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Get("/{courseId}", handler.courseReviews)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Delete("/{reviewId}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	CourseID string `json:"courseId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

/*
Create stores the caller's review of a course.

POST /api/reviews

Response:
  - 201: Review: Stored review
  - 400: ErrValidation: Rating outside [1,5] or missing courseId
  - 403: ErrForbidden: Caller is not enrolled in the course
  - 409: ErrConflict: Caller already reviewed the course
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).
		UUID(FieldCourseID, input.CourseID).
		Range(FieldRating, input.Rating, 1, 5)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.reviewService.Create(request.Context(), claims, CreateInput{
		CourseID: input.CourseID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
CourseReviews lists a course's reviews with their aggregate.

GET /api/reviews/{courseId}

Response:
  - 200: {"reviews": [...], "averageRating": n.n, "totalReviews": n,
    "distribution": {"1"..."5": n}}
*/
func (handler *Handler) courseReviews(writer http.ResponseWriter, request *http.Request) {
	courseID, err := requestutil.UUIDParam(request, FieldCourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, summary, err := handler.reviewService.CourseReviews(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if reviews == nil {
		reviews = []*Review{}
	}

	respond.OK(writer, map[string]any{
		"reviews":       reviews,
		"averageRating": summary.AverageRating,
		"totalReviews":  summary.TotalReviews,
		"distribution":  summary.Distribution,
	})
}

/*
Delete removes a review.

DELETE /api/reviews/{reviewId}

Response:
  - 200: Confirmation message
  - 403: ErrForbidden: Caller is neither the author nor an admin
  - 404: ErrNotFound: Unknown review ID
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID, err := requestutil.UUIDParam(request, FieldReviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.Delete(request.Context(), claims, reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"message": "Review deleted successfully"})
}
