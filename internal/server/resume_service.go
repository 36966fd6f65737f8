package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/db"
	"github.com/jonathan/resume-nest/internal/schemas"
	"github.com/jonathan/resume-nest/internal/types"
)

// MaxTitleLength bounds resume titles, in characters.
const MaxTitleLength = 200

// ResumeService validates resume payloads and applies owner-scoped persistence.
type ResumeService struct {
	store ResumeStore
}

// NewResumeService creates a ResumeService backed by store.
func NewResumeService(store ResumeStore) *ResumeService {
	return &ResumeService{store: store}
}

// prepare validates req and returns the title and data to persist.
func (s *ResumeService) prepare(req *types.SaveResumeRequest) (string, types.ResumeData, error) {
	if req == nil || req.Data == nil {
		return "", types.ResumeData{}, &ErrValidation{Field: "data", Message: "required"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = types.DefaultResumeTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", types.ResumeData{}, &ErrValidation{Field: "title", Message: "max"}
	}

	data := req.Data.Clone()
	raw, err := json.Marshal(data)
	if err != nil {
		return "", types.ResumeData{}, fmt.Errorf("failed to encode resume data: %w", err)
	}
	if err := schemas.ValidateResume(raw); err != nil {
		return "", types.ResumeData{}, err
	}

	return title, data, nil
}

// Create stores a new resume owned by owner.
func (s *ResumeService) Create(ctx context.Context, owner uuid.UUID, req *types.SaveResumeRequest) (*types.Resume, error) {
	title, data, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	resume, err := s.store.CreateResume(ctx, owner, title, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// List returns the owner's resumes, most recently updated first.
func (s *ResumeService) List(ctx context.Context, owner uuid.UUID) ([]types.ResumeSummary, error) {
	list, err := s.store.ListResumes(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return list, nil
}

// Get returns one of the owner's resumes.
func (s *ResumeService) Get(ctx context.Context, owner, id uuid.UUID) (*types.Resume, error) {
	resume, err := s.store.GetResume(ctx, owner, id)
	if err != nil {
		return nil, resumeError(err, id, "get")
	}
	return resume, nil
}

// Update replaces the title and data of one of the owner's resumes.
func (s *ResumeService) Update(ctx context.Context, owner, id uuid.UUID, req *types.SaveResumeRequest) (*types.Resume, error) {
	title, data, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	resume, err := s.store.UpdateResume(ctx, owner, id, title, data)
	if err != nil {
		return nil, resumeError(err, id, "update")
	}
	return resume, nil
}

// Delete removes one of the owner's resumes.
func (s *ResumeService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if err := s.store.DeleteResume(ctx, owner, id); err != nil {
		return resumeError(err, id, "delete")
	}
	return nil
}

// resumeError turns a missing or foreign row into ErrResumeNotFound.
func resumeError(err error, id uuid.UUID, op string) error {
	if errors.Is(err, db.ErrNotFound) {
		return &ErrResumeNotFound{ResumeID: id}
	}
	return fmt.Errorf("failed to %s resume: %w", op, err)
}
