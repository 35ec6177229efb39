// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package certificate issues and serves plain-text completion awards.

An award exists at most once per (user, course) pair, is only issued after
the progress tracker confirms completion, and freezes the course title and
instructor name as they were at issuance.
*/
package certificate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements certificate HTTP endpoints.
type Handler struct {
	certificateService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{certificateService: service}
}

// Routes returns a [chi.Router] configured with certificate routes.
//
// # Endpoints
//   - POST /generate  : Issues the caller's award for a completed course.
//   - GET  /{userId}  : Lists a user's awards (self/admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Post("/generate", handler.generate)
	router.Get("/{userId}", handler.listUser)

	return router
}

// # Request Payloads

type generateRequest struct {
	CourseID string `json:"courseId"`
}

/*
Generate issues the caller's certificate for a completed course.

POST /api/certificates/generate

Response:
  - 200: Certificate: The canonical award (repeat requests return the original)
  - 400: ErrPreconditionFailed: Course not completed
*/
func (handler *Handler) generate(writer http.ResponseWriter, request *http.Request) {
	var input generateRequest

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

	award, err := handler.certificateService.Generate(request.Context(), claims, input.CourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, award)
}

/*
ListUser lists a user's awards, newest completion first.

GET /api/certificates/{userId}

Response:
  - 200: {"certificates": [...]}
  - 403: ErrForbidden: Non-admin reading another user's awards
*/
func (handler *Handler) listUser(writer http.ResponseWriter, request *http.Request) {
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

	awards, err := handler.certificateService.ListUser(request.Context(), claims, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if awards == nil {
		awards = []*Certificate{}
	}

	respond.OK(writer, map[string]any{"certificates": awards})
}
