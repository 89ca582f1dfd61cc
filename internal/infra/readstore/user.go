package readstore

import (
	"context"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userColumns        = `id, email, first_name, last_name, role, is_active, last_login, created_at`
	findUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = @id`
	findUserByEmailSQL = `SELECT ` + userColumns + `, password_hash FROM users WHERE email = @email`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var lastLogin pgtype.Timestamptz
	var u queries.AuthorizedUserView

	err := r.db.QueryRow(ctx, findUserByIDSQL, pgx.NamedArgs{"id": id}).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &lastLogin, &u.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	u.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &u, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var lastLogin pgtype.Timestamptz
	var hash string
	var u queries.AuthorizedUserView

	err := r.db.QueryRow(ctx, findUserByEmailSQL, pgx.NamedArgs{"email": email}).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &lastLogin, &u.CreatedAt, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	u.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &u, hash, nil
}
