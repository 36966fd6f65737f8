package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-nest/internal/rendering"
	"github.com/jonathan/resume-nest/internal/types"
)

// TemplateInfo describes one selectable layout.
type TemplateInfo struct {
	ID      types.TemplateType `json:"id"`
	Slug    string             `json:"slug"`
	Default bool               `json:"default,omitempty"`
}

// templateParam resolves a template name from a request.
// Empty selects the default; unrecognised names are left to the renderer's fallback.
func templateParam(raw string) types.TemplateType {
	if strings.TrimSpace(raw) == "" {
		return types.DefaultTemplate
	}
	if t, err := types.ParseTemplateType(raw); err == nil {
		return t
	}
	return types.TemplateType(raw)
}

// handleTemplates lists the supported layouts.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	all := types.AllTemplates()
	out := make([]TemplateInfo, 0, len(all))
	for _, t := range all {
		out = append(out, TemplateInfo{ID: t, Slug: t.Slug(), Default: t == types.DefaultTemplate})
	}
	jsonResponse(w, s.logger, http.StatusOK, out)
}

// decodeRender reads and validates a {template, data} body.
func (s *Server) decodeRender(w http.ResponseWriter, r *http.Request) (*types.RenderRequest, bool) {
	var req types.RenderRequest
	if !decodeJSON(w, r, s.logger, &req) {
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		errorResponse(w, s.logger, http.StatusBadRequest, extractValidationErrors(err))
		return nil, false
	}
	req.Data.Normalize()
	return &req, true
}

// handleRender renders posted resume data as a standalone HTML page.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	s.writePage(w, r, *req.Data, templateParam(req.Template))
}

// handleExport prints posted resume data to PDF.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, *req.Data, templateParam(req.Template))
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, data types.ResumeData, t types.TemplateType) {
	doc := rendering.Render(data, t)
	page, err := rendering.Page(doc)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Resume-Template", string(doc.Template))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		s.logger.Warn("failed to write page", slog.String("error", err.Error()))
	}
}

func (s *Server) writePDF(w http.ResponseWriter, r *http.Request, data types.ResumeData, t types.TemplateType) {
	if s.exporter == nil {
		handleError(w, r, s.logger, &ErrExportUnavailable{})
		return
	}

	result, err := s.exporter.ExportData(r.Context(), data, t)
	if err != nil {
		handleError(w, r, s.logger, err)
		return
	}
	if !result.Printed {
		handleError(w, r, s.logger, &ErrExportUnavailable{})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFilename(data.PersonalInfo.FullName)))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		s.logger.Warn("failed to write pdf", slog.String("error", err.Error()))
	}
}

// pdfFilename derives an ASCII file name from the candidate's name.
func pdfFilename(fullName string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(fullName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		return "resume.pdf"
	}
	return name + "-resume.pdf"
}
