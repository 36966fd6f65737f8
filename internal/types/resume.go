// Package types provides type definitions for structured data used throughout the resume-nest system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// PersonalInfo holds the identity and contact block of a resume.
// All fields are free text; no format validation is applied.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Location string `json:"location"`
	JobTitle string `json:"jobTitle"`
}

// Experience represents one employment entry.
// Description is multi-line; each non-blank line is one bullet.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education represents one education entry.
type Education struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// Project represents one project entry. Description follows the Experience bullet rules.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Technologies string `json:"technologies"`
	Description  string `json:"description"`
	Link         string `json:"link,omitempty"`
}

// ResumeData is the canonical resume document edited in a session and
// persisted as an opaque blob.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Skills       []string     `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Projects     []Project    `json:"projects"`
	Achievements []string     `json:"achievements"`
	Certificates []string     `json:"certificates"`
}

// NewID returns a fresh identifier for a list-item record.
func NewID() string {
	return uuid.NewString()
}

// NewExperience returns an empty Experience with a fresh ID.
func NewExperience() Experience {
	return Experience{ID: NewID()}
}

// NewEducation returns an empty Education with a fresh ID.
func NewEducation() Education {
	return Education{ID: NewID()}
}

// NewProject returns an empty Project with a fresh ID.
func NewProject() Project {
	return Project{ID: NewID()}
}

// Empty returns the value a new editing session starts from.
// Slices are non-nil so the JSON form uses [] rather than null.
func Empty() ResumeData {
	return ResumeData{
		Skills:       []string{},
		Experience:   []Experience{},
		Education:    []Education{},
		Projects:     []Project{},
		Achievements: []string{},
		Certificates: []string{},
	}
}

// Normalize replaces nil slices with empty ones. It is applied to payloads
// decoded from external sources.
func (d *ResumeData) Normalize() {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Achievements == nil {
		d.Achievements = []string{}
	}
	if d.Certificates == nil {
		d.Certificates = []string{}
	}
}

// Clone returns a deep copy of d. Mutating the copy never affects d.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Skills = cloneSlice(d.Skills)
	out.Experience = cloneSlice(d.Experience)
	out.Education = cloneSlice(d.Education)
	out.Projects = cloneSlice(d.Projects)
	out.Achievements = cloneSlice(d.Achievements)
	out.Certificates = cloneSlice(d.Certificates)
	out.Normalize()
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
