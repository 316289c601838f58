package verification

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithInitScripts(filepath.Join("../../migrations", "chatr_db.sql")),
		postgres.WithDatabase("chatr_db"),
		postgres.WithUsername("chatr"),
		postgres.WithPassword("pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err)

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})
	return pool
}

func seedMember(t *testing.T, pool *pgxpool.Pool, email, username string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO members (firstname, lastname, username, email)
		VALUES ('Ada', 'Lovelace', $1, $2)
		RETURNING memberid
	`, username, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostgresVerificationLifecycle(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	memberID := seedMember(t, pool, "ada@example.com", "ada")

	got, err := repo.GetMemberIDByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, memberID, got)

	require.NoError(t, repo.UpsertCode(ctx, memberID, "12345"))

	// Upsert replaces, never duplicates.
	require.NoError(t, repo.UpsertCode(ctx, memberID, "54321"))

	req, err := repo.GetRequestByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "54321", req.Code)

	require.NoError(t, repo.ConfirmMember(ctx, memberID))

	var verified bool
	require.NoError(t, pool.QueryRow(ctx, `
		SELECT verified FROM members WHERE memberid = $1
	`, memberID).Scan(&verified))
	assert.True(t, verified)

	_, err = repo.GetRequestByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrVerificationNotFound)
}

func TestPostgresVerificationNotFound(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := repo.GetMemberIDByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = repo.GetRequestByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrVerificationNotFound)

	assert.ErrorIs(t, repo.ConfirmMember(ctx, 9999), ErrMemberNotFound)
}
