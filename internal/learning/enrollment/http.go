// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package enrollment maintains the membership ledger between users and courses.

Every operation acts on the caller's own ledger: the user identity is always
taken from the verified session token, never from the request body or query
string.
*/
package enrollment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements enrollment HTTP endpoints.
type Handler struct {
	enrollmentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{enrollmentService: service}
}

// Routes returns a [chi.Router] configured with ledger routes.
//
// # Endpoints
//   - POST   /                       : Enrolls the caller in a course.
//   - GET    /check/{courseId}       : Reports enrollment status (never fails).
//   - GET    /user/my-enrollments    : Lists the caller's enrolled courses.
//   - DELETE /{courseId}             : Removes the caller's enrollment.
//   - PUT    /{courseId}/progress    : Stores the coarse percent indicator.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Every ledger operation acts on the caller's own rows.
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.enroll)
	router.Get("/check/{courseId}", handler.check)
	router.Get("/user/my-enrollments", handler.listMine)
	router.Delete("/{courseId}", handler.unenroll)
	router.Put("/{courseId}/progress", handler.updateProgress)

	return router
}

// # Request Payloads

type enrollRequest struct {
	CourseID string `json:"courseId"`
}

type updateProgressRequest struct {
	Progress int `json:"progress"`
}

/*
Enroll adds the caller to a course.

POST /api/enrollments

Response:
  - 201: Enrollment: New ledger row
  - 400: ErrInvalidJSON: Missing courseId
  - 404: ErrNotFound: Unknown course
  - 409: ErrConflict: Already enrolled in this course
*/
func (handler *Handler) enroll(writer http.ResponseWriter, request *http.Request) {
	var input enrollRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).UUID(FieldCourseID, input.CourseID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.enrollmentService.Enroll(request.Context(), claims, input.CourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Check reports the caller's enrollment status for a course.

GET /api/enrollments/check/{courseId}

Description: Always answers 200 with a boolean; storage trouble degrades to
false so the course page can always render.

Response:
  - 200: {"enrolled": bool}
*/
func (handler *Handler) check(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	courseID := requestutil.Param(request, "courseId")
	enrolled := handler.enrollmentService.Check(request.Context(), claims, courseID)

	respond.OK(writer, map[string]any{FieldEnrolled: enrolled})
}

/*
ListMine returns the full course entities the caller is enrolled in.

GET /api/enrollments/user/my-enrollments

Response:
  - 200: List of courses, most recent enrollment first
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	courses, err := handler.enrollmentService.ListMine(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if courses == nil {
		courses = []*course.Course{}
	}

	respond.OK(writer, courses)
}

/*
Unenroll removes the caller's enrollment in a course.

DELETE /api/enrollments/{courseId}

Response:
  - 204: No Content
  - 400: ErrValidation: Malformed course id
  - 404: ErrNotFound: Caller was not enrolled
*/
func (handler *Handler) unenroll(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.enrollmentService.Unenroll(request.Context(), claims, courseID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
UpdateProgress stores the caller's coarse percent indicator for a course.

PUT /api/enrollments/{courseId}/progress

Response:
  - 200: Confirmation with the stored value
  - 400: ErrValidation: Malformed course id or progress outside [0,100]
  - 404: ErrNotFound: Caller is not enrolled
*/
func (handler *Handler) updateProgress(writer http.ResponseWriter, request *http.Request) {
	var input updateProgressRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

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

	if err := handler.enrollmentService.UpdateProgress(request.Context(), claims, courseID, input.Progress); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldCourseID: courseID,
		FieldProgress: input.Progress,
	})
}
