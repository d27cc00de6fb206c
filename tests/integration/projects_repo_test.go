package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
	"github.com/Elxixau/TaskStatus-Manager/internal/projects/repository"
)

// testDSN resolves the integration database.
// Skips the test if TEST_DB_DSN is not set; you can also use individual
// env vars: TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD,
// TEST_DB_NAME.
func testDSN(t *testing.T) string {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn != "" {
		return dsn
	}

	host := os.Getenv("TEST_DB_HOST")
	port := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	dbname := os.Getenv("TEST_DB_NAME")

	if host == "" || port == "" || user == "" || dbname == "" {
		t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func setupRepo(t *testing.T) *repository.ProjectRepository {
	t.Helper()
	dsn := testDSN(t)
	ctx := context.Background()

	// Plain database/sql connection for schema setup and cleanup.
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			category    text NOT NULL DEFAULT '',
			konsep      text NOT NULL DEFAULT '',
			status      text NOT NULL DEFAULT '',
			payment     text NOT NULL DEFAULT '',
			nominal     text NOT NULL DEFAULT '',
			waktu_input text NOT NULL DEFAULT '',
			created_at  timestamptz NOT NULL DEFAULT now(),
			updated_at  timestamptz NOT NULL DEFAULT now()
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE projects`)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}

func TestRepository_CreateListRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProjectRecord{
		Name:       "Site A",
		Category:   string(domain.CategoryLandingPage),
		Status:     string(domain.StatusComingSoon),
		Payment:    string(domain.PaymentNone),
		Nominal:    "500000",
		WaktuInput: "1/9/2026, 10.30.00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "id generated when absent")

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "created record appears exactly once")
	assert.Equal(t, *created, records[0])
}

func TestRepository_CreateKeepsCallerID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProjectRecord{ID: "fixed-1", Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-1", created.ID)

	_, err = repo.Create(ctx, domain.ProjectRecord{ID: "fixed-1", Name: "dup"})
	assert.ErrorIs(t, err, domain.ErrValidation, "caller-assigned id collision is not retried")
}

func TestRepository_UpdateReplacesRow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProjectRecord{
		Name:       "Alpha",
		Status:     string(domain.StatusComingSoon),
		WaktuInput: "1/1/2026, 09.00.00",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.ProjectRecord{
		Name:   "Beta",
		Status: string(domain.StatusDone),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Beta", updated.Name)
	assert.Equal(t, "1/1/2026, 09.00.00", updated.WaktuInput, "waktu_input immutable")

	// Same payload twice leaves the store in the same observable state.
	again, err := repo.Update(ctx, created.ID, domain.ProjectRecord{
		Name:   "Beta",
		Status: string(domain.StatusDone),
	})
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Update(context.Background(), "missing", domain.ProjectRecord{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_DeleteThenList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ProjectRecord{Name: "Alpha"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	for _, rec := range records {
		assert.NotEqual(t, created.ID, rec.ID)
	}

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound, "repeat delete")
}

func TestRepository_Upsert(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	rec := domain.ProjectRecord{ID: "m-1", Name: "Mirrored", WaktuInput: "then"}
	require.NoError(t, repo.Upsert(ctx, rec))

	rec.Name = "Mirrored v2"
	require.NoError(t, repo.Upsert(ctx, rec))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mirrored v2", records[0].Name)
}
