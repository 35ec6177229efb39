// Copyright (c) 2026 SkillSync. All rights reserved.

/*
Package note keeps private per-course study notes.

Notes belong to exactly one user and are invisible to everyone else,
including admins. Ownership is always resolved from the verified session
token.
*/
package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync/api/internal/platform/middleware"
	requestutil "github.com/skillsync/api/internal/platform/request"
	"github.com/skillsync/api/internal/platform/respond"
	"github.com/skillsync/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements note HTTP endpoints.
type Handler struct {
	noteService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{noteService: service}
}

// Routes returns a [chi.Router] configured with note routes.
//
// # Endpoints
//   - GET    /       : Lists the caller's notes for a course (?courseId=).
//   - POST   /       : Creates a note.
//   - PUT    /{id}   : Replaces the body of the caller's note.
//   - DELETE /{id}   : Removes the caller's note.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listMine)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Request Payloads

type createNoteRequest struct {
	CourseID string `json:"courseId"`
	Text     string `json:"text"`
}

type updateNoteRequest struct {
	Text string `json:"text"`
}

/*
ListMine lists the caller's notes for a course, newest first.

GET /api/notes?courseId=...

Response:
  - 200: List of notes
  - 400: ErrValidation: Missing courseId query parameter
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	courseID := request.URL.Query().Get(FieldCourseID)

	validator := &validate.Validator{}
	validator.Required(FieldCourseID, courseID).UUID(FieldCourseID, courseID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	notes, err := handler.noteService.ListMine(request.Context(), claims, courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if notes == nil {
		notes = []*Note{}
	}

	respond.OK(writer, notes)
}

/*
Create stores a new note under the caller's identity.

POST /api/notes

Response:
  - 201: Note: Stored note
  - 400: ErrValidation: Missing courseId or empty text
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createNoteRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).
		UUID(FieldCourseID, input.CourseID).
		Required(FieldText, input.Text)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.noteService.Create(request.Context(), claims, input.CourseID, input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Update replaces the body of the caller's note.

PUT /api/notes/{id}

Response:
  - 200: Confirmation message
  - 403: ErrForbidden: Note belongs to someone else
  - 404: ErrNotFound: Unknown note ID
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateNoteRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldText, input.Text)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.UUIDParam(request, FieldNoteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.noteService.Update(request.Context(), claims, noteID, input.Text); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"message": "Note updated"})
}

/*
Delete removes the caller's note.

DELETE /api/notes/{id}

Response:
  - 200: Confirmation message
  - 403: ErrForbidden: Note belongs to someone else
  - 404: ErrNotFound: Unknown note ID
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := requestutil.UUIDParam(request, FieldNoteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.noteService.Delete(request.Context(), claims, noteID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"message": "Note deleted"})
}
