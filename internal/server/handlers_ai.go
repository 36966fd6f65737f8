package server

import (
	"net/http"

	"github.com/jonathan/resume-nest/internal/types"
)

// handleTransform applies an AI text action. Provider failures are absorbed by the
// transformer, so the response is always 200 with either new or original text.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req types.TransformRequest
	if !decodeJSON(w, r, s.logger, &req) {
		return
	}
	if err := s.validate.Struct(req); err != nil {
		errorResponse(w, s.logger, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	action, err := types.ParseAIAction(req.Action)
	if err != nil {
		handleError(w, r, s.logger, &ErrValidation{Field: "action", Message: "oneof"})
		return
	}

	text := req.Text
	if s.transformer != nil {
		text = s.transformer.Transform(r.Context(), req.Text, action, req.Context)
	}
	jsonResponse(w, s.logger, http.StatusOK, types.TransformResponse{Text: text})
}
