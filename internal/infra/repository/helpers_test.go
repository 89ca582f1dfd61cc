//go:build unit

package repository_test

import "github.com/jackc/pgx/v5/pgconn"

func pgUnique() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}
