package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/server/middleware"
	"github.com/jonathan/resume-nest/internal/types"
)

// ownerAndID returns the authenticated user and the {id} path value.
// A malformed id is reported as a missing resume.
func (s *Server) ownerAndID(w http.ResponseWriter, r *http.Request) (owner, id uuid.UUID, ok bool) {
	owner, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, s.logger, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	id, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, s.logger, &ErrResumeNotFound{})
		return uuid.Nil, uuid.Nil, false
	}
	return owner, id, true
}

// handleCreateResume stores a new resume for the caller.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	owner, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, s.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.SaveResumeRequest
	if !decodeJSON(w, r, s.logger, &req) {
		return
	}

	resume, err := s.resumes.Create(r.Context(), owner, &req)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	jsonResponse(w, s.logger, http.StatusCreated, resume)
}

// handleListResumes lists the caller's resumes, most recently updated first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	owner, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, s.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := s.resumes.List(r.Context(), owner)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	jsonResponse(w, s.logger, http.StatusOK, list)
}

// handleGetResume returns one of the caller's resumes.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}

	resume, err := s.resumes.Get(r.Context(), owner, id)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	jsonResponse(w, s.logger, http.StatusOK, resume)
}

// handleUpdateResume replaces one of the caller's resumes.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}

	var req types.SaveResumeRequest
	if !decodeJSON(w, r, s.logger, &req) {
		return
	}

	resume, err := s.resumes.Update(r.Context(), owner, id, &req)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	jsonResponse(w, s.logger, http.StatusOK, resume)
}

// handleDeleteResume deletes one of the caller's resumes.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}

	if err := s.resumes.Delete(r.Context(), owner, id); err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	jsonResponse(w, s.logger, http.StatusOK, map[string]string{"message": "resume deleted"})
}

// handleRenderResume renders a stored resume as a standalone HTML page.
func (s *Server) handleRenderResume(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}

	resume, err := s.resumes.Get(r.Context(), owner, id)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	s.writePage(w, r, resume.Data, templateParam(r.URL.Query().Get("template")))
}

// handleExportResume prints a stored resume to PDF.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := s.ownerAndID(w, r)
	if !ok {
		return
	}

	resume, err := s.resumes.Get(r.Context(), owner, id)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	s.writePDF(w, r, resume.Data, templateParam(r.URL.Query().Get("template")))
}
