package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Unique constraint names from migrations/chatr_db.sql.
const (
	usernameConstraint = "members_username_key"
	emailConstraint    = "members_email_key"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a member/credential repository on the pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateMemberWithCredential inserts the member and its credential in one
// transaction so a credential failure never leaves an orphaned member.
func (r *PostgresRepository) CreateMemberWithCredential(ctx context.Context, params CreateMemberParams) (Member, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Member{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var m Member
	err = tx.QueryRow(ctx, `
		INSERT INTO members (firstname, lastname, username, email)
		VALUES ($1, $2, $3, $4)
		RETURNING memberid, firstname, lastname, username, email, verified
	`, params.FirstName, params.LastName, params.Username, params.Email).Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Username, &m.Email, &m.Verified,
	)
	if err != nil {
		return Member{}, mapUniqueViolation(err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO credentials (memberid, saltedhash, salt)
		VALUES ($1, $2, $3)
	`, m.ID, params.SaltedHash, params.Salt)
	if err != nil {
		return Member{}, fmt.Errorf("failed to insert credential: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Member{}, fmt.Errorf("failed to commit registration: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetMemberByEmail(ctx context.Context, email string) (Member, error) {
	var m Member
	err := r.db.QueryRow(ctx, `
		SELECT memberid, firstname, lastname, username, email, verified
		FROM members
		WHERE email = $1
	`, email).Scan(&m.ID, &m.FirstName, &m.LastName, &m.Username, &m.Email, &m.Verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrMemberNotFound
		}
		return Member{}, err
	}
	return m, nil
}

func (r *PostgresRepository) GetCredentialByEmail(ctx context.Context, email string) (Credential, error) {
	var c Credential
	err := r.db.QueryRow(ctx, `
		SELECT credentials.memberid, credentials.saltedhash, credentials.salt
		FROM credentials
		INNER JOIN members ON credentials.memberid = members.memberid
		WHERE members.email = $1
	`, email).Scan(&c.MemberID, &c.SaltedHash, &c.Salt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Credential{}, ErrMemberNotFound
		}
		return Credential{}, err
	}
	return c, nil
}

func (r *PostgresRepository) UpdateCredential(ctx context.Context, memberID int64, saltedHash, salt string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE credentials
		SET saltedhash = $1, salt = $2
		WHERE memberid = $3
	`, saltedHash, salt, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// mapUniqueViolation translates store-level unique constraint violations
// into the repository's sentinel errors.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return ErrUsernameExists
		case emailConstraint:
			return ErrEmailExists
		}
	}
	return err
}
