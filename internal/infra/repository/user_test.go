//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository"
	"vehicle-rental/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	email, err := user.NewEmail("Driver@Example.com")
	require.NoError(t, err)
	name, err := user.NewFullName("Deniz", "Kaya")
	require.NoError(t, err)
	u := user.NewUser(email, name, "hash", user.RoleCustomer, time.Now())

	tests := []struct {
		name     string
		row      dbtest.Row
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  dbtest.Row{Values: []any{u.ID()}},
		},
		{
			name:     "email already registered",
			row:      dbtest.Row{Err: &pgconn.PgError{Code: "23505"}},
			wantKind: infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := new(dbtest.MockDBTX)
			tx.On("QueryRow", ctx, mock.Anything, dbtest.NamedArg("email", "driver@example.com")).Return(tt.row)

			id, err := repository.NewUserRepository(tx).Create(ctx, tx, u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, u.ID(), id)
			}
			tx.AssertExpectations(t)
		})
	}
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			tag:  dbtest.Tag("UPDATE 1"),
		},
		{
			name:      "database error",
			tag:       dbtest.Tag(""),
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:     "user missing",
			tag:      dbtest.Tag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := new(dbtest.MockDBTX)
			tx.On("Exec", mock.Anything, mock.Anything, dbtest.NamedArg("id", testUserID)).Return(tt.tag, tt.mockError)

			err := repository.NewUserRepository(tx).UpdateLastLogin(context.Background(), tx, testUserID, at)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			tx.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	testUserID := uuid.New()
	email, err := user.NewEmail("new@example.com")
	require.NoError(t, err)
	name, err := user.NewFullName("Ece", "Demir")
	require.NoError(t, err)

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			tag:  dbtest.Tag("UPDATE 1"),
		},
		{
			name:      "email taken by another user",
			tag:       dbtest.Tag(""),
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:     "user missing",
			tag:      dbtest.Tag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := new(dbtest.MockDBTX)
			tx.On("Exec", mock.Anything, mock.Anything, dbtest.NamedArg("email", "new@example.com")).Return(tt.tag, tt.mockError)

			err := repository.NewUserRepository(tx).UpdateProfile(context.Background(), tx, testUserID, email, name)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			tx.AssertExpectations(t)
		})
	}
}
