package auth

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

func testCreateParams(email, username string) CreateMemberParams {
	return CreateMemberParams{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Username:   username,
		Email:      email,
		SaltedHash: "hash",
		Salt:       "salt",
	}
}

func TestPostgresCreateMemberWithCredential(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	m, err := repo.CreateMemberWithCredential(ctx, testCreateParams("ada@example.com", "ada"))
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.False(t, m.Verified)

	cred, err := repo.GetCredentialByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, m.ID, cred.MemberID)
	assert.Equal(t, "hash", cred.SaltedHash)
	assert.Equal(t, "salt", cred.Salt)
}

func TestPostgresUniqueConstraints(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	_, err := repo.CreateMemberWithCredential(ctx, testCreateParams("ada@example.com", "ada"))
	require.NoError(t, err)

	_, err = repo.CreateMemberWithCredential(ctx, testCreateParams("other@example.com", "ada"))
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = repo.CreateMemberWithCredential(ctx, testCreateParams("ada@example.com", "other"))
	assert.ErrorIs(t, err, ErrEmailExists)

	// Both lookups still answer from the single surviving row.
	m, err := repo.GetMemberByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", m.Username)
}

func TestPostgresUpdateCredential(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	m, err := repo.CreateMemberWithCredential(ctx, testCreateParams("ada@example.com", "ada"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateCredential(ctx, m.ID, "newhash", "newsalt"))

	cred, err := repo.GetCredentialByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "newhash", cred.SaltedHash)

	assert.ErrorIs(t, repo.UpdateCredential(ctx, 9999, "h", "s"), ErrMemberNotFound)
}

func TestPostgresGetMemberByEmailNotFound(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)

	_, err := repo.GetMemberByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
