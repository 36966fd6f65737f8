package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/types"
)

// Every resume statement filters on user_id, so a row owned by someone else
// is indistinguishable from a missing one.

const resumeReturning = "RETURNING id, user_id, title, data, created_at, updated_at"

var resumeColumns = []string{"id", "user_id", "title", "data", "created_at", "updated_at"}

func scanResume(row interface{ Scan(dest ...any) error }) (*types.Resume, error) {
	var (
		r   types.Resume
		raw []byte
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &raw, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &r.Data); err != nil {
		return nil, fmt.Errorf("failed to decode resume data: %w", err)
	}
	r.Data.Normalize()
	return &r, nil
}

func encodeData(data types.ResumeData) ([]byte, error) {
	data = data.Clone()
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume data: %w", err)
	}
	return b, nil
}

// CreateResume stores a new resume for owner.
func (db *DB) CreateResume(ctx context.Context, owner uuid.UUID, title string, data types.ResumeData) (*types.Resume, error) {
	raw, err := encodeData(data)
	if err != nil {
		return nil, err
	}

	row, err := db.queryRow(ctx, psql.
		Insert("resumes").
		Columns("user_id", "title", "data").
		Values(owner, title, raw).
		Suffix(resumeReturning))
	if err != nil {
		return nil, err
	}

	r, err := scanResume(row)
	if err != nil {
		return nil, mapError(err, "create resume")
	}
	return r, nil
}

// ListResumes returns owner's resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context, owner uuid.UUID) ([]types.ResumeSummary, error) {
	sql, args, err := psql.
		Select(
			"id",
			"title",
			"COALESCE(data #>> '{personalInfo,fullName}', '')",
			"COALESCE(data #>> '{personalInfo,jobTitle}', '')",
			"updated_at",
		).
		From("resumes").
		Where(squirrel.Eq{"user_id": owner}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "list resumes")
	}
	defer rows.Close()

	summaries := []types.ResumeSummary{}
	for rows.Next() {
		var s types.ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.FullName, &s.JobTitle, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list resumes")
	}
	return summaries, nil
}

// GetResume returns one of owner's resumes.
func (db *DB) GetResume(ctx context.Context, owner, id uuid.UUID) (*types.Resume, error) {
	row, err := db.queryRow(ctx, psql.
		Select(resumeColumns...).
		From("resumes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": owner}))
	if err != nil {
		return nil, err
	}

	r, err := scanResume(row)
	if err != nil {
		return nil, mapError(err, "get resume")
	}
	return r, nil
}

// UpdateResume replaces the title and data of one of owner's resumes.
func (db *DB) UpdateResume(ctx context.Context, owner, id uuid.UUID, title string, data types.ResumeData) (*types.Resume, error) {
	raw, err := encodeData(data)
	if err != nil {
		return nil, err
	}

	row, err := db.queryRow(ctx, psql.
		Update("resumes").
		Set("title", title).
		Set("data", raw).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": owner}).
		Suffix(resumeReturning))
	if err != nil {
		return nil, err
	}

	r, err := scanResume(row)
	if err != nil {
		return nil, mapError(err, "update resume")
	}
	return r, nil
}

// DeleteResume removes one of owner's resumes.
func (db *DB) DeleteResume(ctx context.Context, owner, id uuid.UUID) error {
	sql, args, err := psql.
		Delete("resumes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": owner}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	tag, err := db.q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "delete resume")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete resume: %w", ErrNotFound)
	}
	return nil
}
