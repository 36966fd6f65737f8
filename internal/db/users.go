package db

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jonathan/resume-nest/internal/types"
)

// User is an account row. PasswordHash never leaves the server package.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public returns the client-facing view of u.
func (u *User) Public() *types.User {
	return &types.User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

var userColumns = []string{"id", "full_name", "email", "password_hash", "created_at", "updated_at"}

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts an account. A taken email returns ErrAlreadyExists.
func (db *DB) CreateUser(ctx context.Context, fullName, email, passwordHash string) (*User, error) {
	row, err := db.queryRow(ctx, psql.
		Insert("users").
		Columns("full_name", "email", "password_hash").
		Values(fullName, email, passwordHash).
		Suffix("RETURNING id, full_name, email, password_hash, created_at, updated_at"))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "create user")
	}
	return u, nil
}

// GetUserByEmail looks an account up by email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := db.queryRow(ctx, psql.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "get user by email")
	}
	return u, nil
}

// GetUser looks an account up by ID.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := db.queryRow(ctx, psql.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "get user")
	}
	return u, nil
}
