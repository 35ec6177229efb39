// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package course provides the public catalog and the instructor authoring
surface of the learning platform.

# Architecture

Browsing endpoints are public; authoring endpoints require an instructor or
admin session. Ownership of a course is always derived from the verified
token, never from the request body.
*/
package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/internal/platform/validate"
	"github.com/skillsync/api/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements catalog HTTP endpoints.
type Handler struct {
	courseService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{courseService: service}
}

// Routes returns a [chi.Router] configured with catalog routes.
//
// # Endpoints
//   - GET    /                 : Lists the catalog (category/featured filters).
//   - GET    /featured         : Lists curated courses only.
//   - GET    /{id}             : Returns a single course.
//   - POST   /                 : Publishes a course (instructor/admin).
//   - PUT    /{id}             : Edits a course (owner/admin).
//   - DELETE /{id}             : Removes a course (owner/admin).
//   - GET    /user/my-courses  : Lists the caller's own courses.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/featured", handler.listFeatured)

	// Protected endpoints. Static segments are registered before the {id}
	// wildcard so /user/my-courses never resolves as a course ID.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/user/my-courses", handler.myCourses)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleInstructor, sec.RoleAdmin))
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	router.Get("/{id}", handler.get)

	return router
}

// # Request Payloads

type coursePayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	IsFeatured  bool    `json:"isFeatured"`
}

// validateCoursePayload enforces the required authoring fields.
func validateCoursePayload(input coursePayload) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Required(FieldDescription, input.Description).
		Required(FieldImage, input.Image).
		Required(FieldDuration, input.Duration).
		Required(FieldCategory, input.Category).
		Custom(FieldPrice, input.Price < 0, "must not be negative")
	return validator.Err()
}

/*
List returns the filtered catalog.

GET /api/courses?category=...&featured=true

Response:
  - 200: Paginated list of courses, newest first
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		FeaturedOnly: request.URL.Query().Get("featured") == "true",
		Category:     request.URL.Query().Get("category"),
	}

	handler.respondList(writer, request, filter)
}

/*
ListFeatured returns only curated courses.

GET /api/courses/featured
*/
func (handler *Handler) listFeatured(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		FeaturedOnly: true,
		Category:     request.URL.Query().Get("category"),
	}

	handler.respondList(writer, request, filter)
}

func (handler *Handler) respondList(writer http.ResponseWriter, request *http.Request, filter Filter) {
	page := pagination.FromRequest(request)

	courses, metadata, err := handler.courseService.List(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An empty catalog page serializes as [] rather than null.
	if courses == nil {
		courses = []*Course{}
	}

	respond.Paginated(writer, courses, metadata)
}

/*
Get returns a single catalog entry.

GET /api/courses/{id}

Response:
  - 200: Course
  - 404: ErrNotFound: Unknown course ID
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.courseService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Create publishes a new course under the caller's identity.

POST /api/courses

Response:
  - 201: Course: Published entity
  - 400: ErrInvalidJSON: Missing required fields
  - 403: ErrForbidden: Caller is not an instructor or admin
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input coursePayload

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateCoursePayload(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.courseService.Create(request.Context(), claims, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.Image,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsFeatured:  input.IsFeatured,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Update edits a published course.

PUT /api/courses/{id}

Response:
  - 200: Course: Updated entity
  - 403: ErrForbidden: Caller is neither the owner nor an admin
  - 404: ErrNotFound: Unknown course ID
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input coursePayload

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateCoursePayload(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID(FieldCourseID, id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.courseService.Update(request.Context(), claims, id, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.Image,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsFeatured:  input.IsFeatured,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Delete removes a published course.

DELETE /api/courses/{id}

Response:
  - 204: No Content
  - 403: ErrForbidden: Caller is neither the owner nor an admin
  - 404: ErrNotFound: Unknown course ID
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID(FieldCourseID, id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.courseService.Delete(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
MyCourses lists every course owned by the authenticated caller.

GET /api/courses/user/my-courses

Response:
  - 200: List of the caller's courses, newest first
*/
func (handler *Handler) myCourses(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	courses, err := handler.courseService.MyCourses(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if courses == nil {
		courses = []*Course{}
	}

	respond.OK(writer, courses)
}
