package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listLocationsSQL  = `SELECT id, name, address FROM locations ORDER BY name`
	locationExistsSQL = `SELECT EXISTS (SELECT 1 FROM locations WHERE id = @id)`
)

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(db db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: db}
}

func (s *LocationReadStore) List(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := s.db.Query(ctx, listLocationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	out := []*queries.LocationView{}
	for rows.Next() {
		var l queries.LocationView
		if err := rows.Scan(&l.ID, &l.Name, &l.Address); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locations", err)
	}
	return out, nil
}

func (s *LocationReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, locationExistsSQL, pgx.NamedArgs{"id": id}).Scan(&ok); err != nil {
		return false, infra.WrapRepoErr("failed to check location", err)
	}
	return ok, nil
}
