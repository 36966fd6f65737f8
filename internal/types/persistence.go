package types

import (
	"time"

	"github.com/google/uuid"
)

// DefaultResumeTitle is used when a resume is saved without a title.
const DefaultResumeTitle = "Untitled Resume"

// SaveResumeRequest is the body of POST /resumes and PUT /resumes/{id}.
// Data is a pointer so a missing "data" key can be told apart from an empty resume.
type SaveResumeRequest struct {
	Title string      `json:"title"`
	Data  *ResumeData `json:"data" validate:"required"`
}

// Resume is a stored resume document owned by one user.
type Resume struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Title     string     `json:"title"`
	Data      ResumeData `json:"data"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ResumeSummary is the list view of a stored resume.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	FullName  string    `json:"fullName,omitempty"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary returns the list view of r.
func (r *Resume) Summary() ResumeSummary {
	return ResumeSummary{
		ID:        r.ID,
		Title:     r.Title,
		FullName:  r.Data.PersonalInfo.FullName,
		JobTitle:  r.Data.PersonalInfo.JobTitle,
		UpdatedAt: r.UpdatedAt,
	}
}

// RenderRequest is the body of POST /render and POST /export.
type RenderRequest struct {
	Template string      `json:"template"`
	Data     *ResumeData `json:"data" validate:"required"`
}
