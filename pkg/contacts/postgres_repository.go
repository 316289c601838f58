package contacts

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetMemberIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		SELECT memberid FROM members WHERE email = $1
	`, email).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrMemberNotFound
		}
		return 0, err
	}
	return id, nil
}

// CreateContact inserts the pending request. The unordered pair index rejects
// a duplicate in either direction; the violation surfaces as ErrContactExists.
func (r *PostgresRepository) CreateContact(ctx context.Context, memberA, memberB int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (memberid_a, memberid_b, verified)
		VALUES ($1, $2, FALSE)
		RETURNING connectionid
	`, memberA, memberB).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
			strings.HasPrefix(pgErr.ConstraintName, "contacts_") {
			return 0, ErrContactExists
		}
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) AcceptContact(ctx context.Context, connectionID, accepterID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE contacts
		SET verified = TRUE
		WHERE connectionid = $1 AND memberid_b = $2
	`, connectionID, accepterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteContact(ctx context.Context, connectionID, callerID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM contacts
		WHERE connectionid = $1 AND (memberid_a = $2 OR memberid_b = $2)
	`, connectionID, callerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *PostgresRepository) ListCurrent(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(ctx, `
		SELECT c.connectionid, m.username, m.email, m.firstname, m.lastname
		FROM contacts c
		INNER JOIN members m ON m.memberid =
			CASE WHEN c.memberid_a = $1 THEN c.memberid_b ELSE c.memberid_a END
		WHERE (c.memberid_a = $1 OR c.memberid_b = $1) AND c.verified = TRUE
		ORDER BY c.connectionid
	`, memberID)
}

func (r *PostgresRepository) ListOutgoing(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(ctx, `
		SELECT c.connectionid, m.username, m.email, m.firstname, m.lastname
		FROM contacts c
		INNER JOIN members m ON m.memberid = c.memberid_b
		WHERE c.memberid_a = $1 AND c.verified = FALSE
		ORDER BY c.connectionid
	`, memberID)
}

func (r *PostgresRepository) ListIncoming(ctx context.Context, memberID int64) ([]ContactInfo, error) {
	return r.list(ctx, `
		SELECT c.connectionid, m.username, m.email, m.firstname, m.lastname
		FROM contacts c
		INNER JOIN members m ON m.memberid = c.memberid_a
		WHERE c.memberid_b = $1 AND c.verified = FALSE
		ORDER BY c.connectionid
	`, memberID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, memberID int64) ([]ContactInfo, error) {
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ContactInfo
	for rows.Next() {
		var c ContactInfo
		if err := rows.Scan(&c.ConnectionID, &c.Username, &c.Email, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
