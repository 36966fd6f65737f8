//go:build integration

package db

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jonathan/resume-nest/internal/config"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// setupTestDB starts one PostgreSQL container for the package, applies the
// embedded migrations and returns a connected DB.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Skipf("Skipping integration test: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, config.DatabaseConfig{URL: sharedDSN, MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	if err := Migrate(ctx, dsn, nil); err != nil {
		return "", err
	}
	return dsn, nil
}

func createTestUser(t *testing.T, db *DB) *User {
	t.Helper()
	u, err := db.CreateUser(context.Background(), "Test User", "test-"+uuid.NewString()+"@example.com", "hash")
	require.NoError(t, err)
	return u
}

func TestIntegration_UserUniqueEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db)

	_, err := db.CreateUser(ctx, "Other", u.Email, "hash")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := db.GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestIntegration_ResumeOwnership(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	data := sampleData()
	first, err := db.CreateResume(ctx, alice.ID, "First", data)
	require.NoError(t, err)
	second, err := db.CreateResume(ctx, alice.ID, "Second", data)
	require.NoError(t, err)

	// Touch the first so it sorts ahead of the second
	time.Sleep(10 * time.Millisecond)
	_, err = db.UpdateResume(ctx, alice.ID, first.ID, "First (edited)", data)
	require.NoError(t, err)

	list, err := db.ListResumes(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, "Ada Lovelace", list[0].FullName)

	bobList, err := db.ListResumes(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobList)

	_, err = db.GetResume(ctx, bob.ID, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = db.UpdateResume(ctx, bob.ID, first.ID, "hijack", data)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.DeleteResume(ctx, bob.ID, first.ID), ErrNotFound)

	got, err := db.GetResume(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First (edited)", got.Title)
	assert.Equal(t, data, got.Data)

	require.NoError(t, db.DeleteResume(ctx, alice.ID, first.ID))
	_, err = db.GetResume(ctx, alice.ID, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
