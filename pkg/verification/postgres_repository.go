package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (r *PostgresRepository) UpsertCode(ctx context.Context, memberID int64, code string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO verification (memberid, code)
		VALUES ($1, $2)
		ON CONFLICT (memberid) DO UPDATE SET code = EXCLUDED.code
	`, memberID, code)
	return err
}

func (r *PostgresRepository) GetRequestByEmail(ctx context.Context, email string) (VerificationRequest, error) {
	var v VerificationRequest
	err := r.db.QueryRow(ctx, `
		SELECT verification.memberid, verification.code
		FROM verification
		INNER JOIN members ON verification.memberid = members.memberid
		WHERE members.email = $1
	`, email).Scan(&v.MemberID, &v.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return VerificationRequest{}, ErrVerificationNotFound
		}
		return VerificationRequest{}, err
	}
	return v, nil
}

// ConfirmMember flips the verified flag and removes the verification row in
// one transaction so a crash cannot leave a verified member with a live code.
func (r *PostgresRepository) ConfirmMember(ctx context.Context, memberID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE members SET verified = TRUE WHERE memberid = $1
	`, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM verification WHERE memberid = $1
	`, memberID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit verification: %w", err)
	}
	return nil
}
