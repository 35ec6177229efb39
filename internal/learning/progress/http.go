// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package progress tracks each user's position inside a course as a pair of
lesson counters with derived completion state.

The derived fields (percent, completion flag, completion date) are computed
server-side on every write; clients only ever submit raw counters.
*/
package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements progress HTTP endpoints.
type Handler struct {
	progressService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{progressService: service}
}

// Routes returns a [chi.Router] configured with progress routes.
//
// # Endpoints
//   - PUT /{courseId}                  : Updates the caller's counters.
//   - GET /user/{userId}               : Lists a user's records (self/admin).
//   - GET /course/{courseId}/{userId}  : One record (self/admin; zero-value if absent).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Put("/{courseId}", handler.update)
	router.Get("/user/{userId}", handler.userProgress)
	router.Get("/course/{courseId}/{userId}", handler.courseProgress)

	return router
}

// # Request Payloads

// Counters are pointers so an absent field is distinguishable from an
// explicit zero; both counters are mandatory on every update.
type updateRequest struct {
	LessonsCompleted *int `json:"lessonsCompleted"`
	TotalLessons     *int `json:"totalLessons"`
}

/*
Update recomputes the caller's position in a course.

PUT /api/progress/{courseId}

Response:
  - 200: Record with derived percent and completion state
  - 400: ErrValidation: Missing counters, non-positive totalLessons, or negative counters
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	courseID := requestutil.Param(request, FieldCourseID)

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, courseID).
		Custom(FieldLessonsCompleted, input.LessonsCompleted == nil, "This field is required").
		Custom(FieldTotalLessons, input.TotalLessons == nil, "This field is required")
	if input.TotalLessons != nil {
		validator.Positive(FieldTotalLessons, *input.TotalLessons)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.progressService.Update(request.Context(), claims, UpdateInput{
		CourseID:         courseID,
		LessonsCompleted: *input.LessonsCompleted,
		TotalLessons:     *input.TotalLessons,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
UserProgress lists every record of one user.

GET /api/progress/user/{userId}

Response:
  - 200: {"progress": [...]}
  - 403: ErrForbidden: Non-admin reading another user's records
*/
func (handler *Handler) userProgress(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.UUIDParam(request, FieldUserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.progressService.GetUserProgress(request.Context(), claims, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if records == nil {
		records = []*Record{}
	}

	respond.OK(writer, map[string]any{"progress": records})
}

/*
CourseProgress returns one (user, course) record.

GET /api/progress/course/{courseId}/{userId}

Response:
  - 200: Record (zero-value when the user never touched the course)
  - 403: ErrForbidden: Non-admin reading another user's record
*/
func (handler *Handler) courseProgress(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	courseID, err := requestutil.UUIDParam(request, FieldCourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID, err := requestutil.UUIDParam(request, FieldUserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.progressService.GetCourseProgress(request.Context(), claims, userID, courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}
