package location

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

func (r *PostgresRepository) ListByMember(ctx context.Context, memberID int64) ([]Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT primarykey, memberid, nickname, lat, long
		FROM locations
		WHERE memberid = $1
		ORDER BY primarykey
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.MemberID, &l.Nickname, &l.Lat, &l.Lng); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, loc Location) (Location, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO locations (memberid, nickname, lat, long)
		VALUES ($1, $2, $3, $4)
		RETURNING primarykey
	`, loc.MemberID, loc.Nickname, loc.Lat, loc.Lng).Scan(&loc.ID)
	if err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, loc Location) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locations
		SET nickname = $1, lat = $2, long = $3
		WHERE primarykey = $4 AND memberid = $5
	`, loc.Nickname, loc.Lat, loc.Lng, loc.ID, loc.MemberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, locationID, memberID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM locations
		WHERE primarykey = $1 AND memberid = $2
	`, locationID, memberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLocationNotFound
	}
	return nil
}
