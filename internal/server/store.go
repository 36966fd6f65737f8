package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/db"
	"github.com/jonathan/resume-nest/internal/types"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, fullName, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
}

// ResumeStore persists resumes. Every call is scoped by owner; a resume owned by
// someone else is reported as db.ErrNotFound.
type ResumeStore interface {
	CreateResume(ctx context.Context, owner uuid.UUID, title string, data types.ResumeData) (*types.Resume, error)
	ListResumes(ctx context.Context, owner uuid.UUID) ([]types.ResumeSummary, error)
	GetResume(ctx context.Context, owner, id uuid.UUID) (*types.Resume, error)
	UpdateResume(ctx context.Context, owner, id uuid.UUID, title string, data types.ResumeData) (*types.Resume, error)
	DeleteResume(ctx context.Context, owner, id uuid.UUID) error
}

// Store is everything the server needs from persistence.
type Store interface {
	UserStore
	ResumeStore
	Ping(ctx context.Context) error
}

var (
	_ Store = (*db.DB)(nil)
	_ Store = (*MemoryStore)(nil)
)
