package repository

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	createUserSQL = `
INSERT INTO users (id, email, first_name, last_name, password_hash, role, is_active, created_at)
VALUES (@id, @email, @first_name, @last_name, @password_hash, @role, @is_active, @created_at)
RETURNING id`

	updateLastLoginSQL = `UPDATE users SET last_login = @at WHERE id = @id`

	updateProfileSQL = `
UPDATE users SET email = @email, first_name = @first_name, last_name = @last_name
WHERE id = @id`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	args := pgx.NamedArgs{
		"id":            u.ID(),
		"email":         u.Email().Value(),
		"first_name":    u.Name().First(),
		"last_name":     u.Name().Last(),
		"password_hash": u.PasswordHash(),
		"role":          u.Role().String(),
		"is_active":     u.IsActive(),
		"created_at":    u.CreatedAt(),
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, createUserSQL, args).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx, updateLastLoginSQL, pgx.NamedArgs{"id": userID, "at": at})
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID, email user.Email, name user.FullName) error {
	args := pgx.NamedArgs{
		"id":         userID,
		"email":      email.Value(),
		"first_name": name.First(),
		"last_name":  name.Last(),
	}

	tag, err := tx.Exec(ctx, updateProfileSQL, args)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
