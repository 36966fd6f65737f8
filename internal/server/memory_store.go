package server

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/db"
	"github.com/jonathan/resume-nest/internal/types"
)

// MemoryStore is an in-process Store. It backs tests and `serve --memory`.
// Data is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]db.User
	emails  map[string]uuid.UUID
	resumes map[uuid.UUID]types.Resume
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]db.User),
		emails:  make(map[string]uuid.UUID),
		resumes: make(map[uuid.UUID]types.Resume),
		now:     time.Now,
	}
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// CreateUser stores a new account. Emails are unique case-insensitively.
func (m *MemoryStore) CreateUser(_ context.Context, fullName, email, passwordHash string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(email)
	if _, taken := m.emails[key]; taken {
		return nil, db.ErrAlreadyExists
	}

	now := m.now().UTC()
	u := db.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.ID] = u
	m.emails[key] = u.ID
	return &u, nil
}

// GetUserByEmail returns the account registered with email.
func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[strings.ToLower(email)]
	if !ok {
		return nil, db.ErrNotFound
	}
	u := m.users[id]
	return &u, nil
}

// GetUser returns the account with id.
func (m *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &u, nil
}

// CreateResume stores a copy of data under owner.
func (m *MemoryStore) CreateResume(_ context.Context, owner uuid.UUID, title string, data types.ResumeData) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[owner]; !ok {
		return nil, db.ErrNotFound
	}

	now := m.now().UTC()
	r := types.Resume{
		ID:        uuid.New(),
		UserID:    owner,
		Title:     title,
		Data:      data.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.resumes[r.ID] = r
	return cloneResume(r), nil
}

// ListResumes returns the owner's resumes, most recently updated first.
func (m *MemoryStore) ListResumes(_ context.Context, owner uuid.UUID) ([]types.ResumeSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.ResumeSummary, 0)
	for _, r := range m.resumes {
		if r.UserID == owner {
			out = append(out, r.Summary())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// GetResume returns the resume if owner owns it.
func (m *MemoryStore) GetResume(_ context.Context, owner, id uuid.UUID) (*types.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.resumes[id]
	if !ok || r.UserID != owner {
		return nil, db.ErrNotFound
	}
	return cloneResume(r), nil
}

// UpdateResume replaces title and data if owner owns the resume.
func (m *MemoryStore) UpdateResume(_ context.Context, owner, id uuid.UUID, title string, data types.ResumeData) (*types.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.resumes[id]
	if !ok || r.UserID != owner {
		return nil, db.ErrNotFound
	}

	r.Title = title
	r.Data = data.Clone()
	r.UpdatedAt = m.now().UTC()
	m.resumes[id] = r
	return cloneResume(r), nil
}

// DeleteResume removes the resume if owner owns it.
func (m *MemoryStore) DeleteResume(_ context.Context, owner, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.resumes[id]
	if !ok || r.UserID != owner {
		return db.ErrNotFound
	}
	delete(m.resumes, id)
	return nil
}

func cloneResume(r types.Resume) *types.Resume {
	r.Data = r.Data.Clone()
	return &r
}
