package otp

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// StoreCode inserts the code for the member matching email. The insert reads
// the member id from members directly, so an unknown email affects zero rows.
func (r *PostgresRepository) StoreCode(ctx context.Context, email, code string) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO otpverification (memberid, otpcode, verified)
		SELECT memberid, $2, FALSE FROM members WHERE email = $1
		ON CONFLICT (memberid) DO UPDATE
		SET otpcode = EXCLUDED.otpcode, verified = FALSE
	`, email, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// ReplaceCode overwrites the stored code with no precondition on the
// verified flag.
func (r *PostgresRepository) ReplaceCode(ctx context.Context, email, code string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE otpverification
		SET otpcode = $2, verified = FALSE
		FROM members
		WHERE otpverification.memberid = members.memberid
		  AND members.email = $1
	`, email, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOTPNotFound
	}
	return nil
}

// ConsumeCode verifies in one statement: the row must match the member, the
// code and still be unconsumed.
func (r *PostgresRepository) ConsumeCode(ctx context.Context, email, code string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE otpverification
		SET verified = TRUE
		FROM members
		WHERE otpverification.memberid = members.memberid
		  AND members.email = $1
		  AND otpverification.otpcode = $2
		  AND otpverification.verified = FALSE
	`, email, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCodeMismatch
	}
	return nil
}
