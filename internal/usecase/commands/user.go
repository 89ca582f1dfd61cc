package commands

import (
	"context"

	"vehicle-rental/internal/domain/user"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/patch"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProfileNotOwned = errs.New("profile belongs to another user")
	ErrInvalidProfile  = errs.New("invalid profile")
	ErrUserNotFound    = errs.New("user not found")
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) canEdit(target uuid.UUID) bool {
	return a.ID == target || a.Role == user.RoleAdmin
}

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock
type UserCommands interface {
	UpdateProfile(ctx context.Context, actor Actor, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error)
}

type userCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewUserCommands(uow shared.UnitOfWork, readStore queries.UserReadStore) UserCommands {
	return &userCommandsImpl{uow: uow, readStore: readStore}
}

// UpdateProfile applies a partial name/email change. Users edit themselves;
// admins may edit anyone.
func (u *userCommandsImpl) UpdateProfile(ctx context.Context, actor Actor, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.AuthorizedUserView, error) {
	if !actor.canEdit(userID) {
		return nil, ErrProfileNotOwned
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		name, err := user.NewFullName(
			patch.Coalesce(req.FirstName, current.FirstName),
			patch.Coalesce(req.LastName, current.LastName),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidProfile)
		}
		email, err := user.NewEmail(patch.Coalesce(req.Email, current.Email))
		if err != nil {
			return errs.Mark(err, ErrInvalidProfile)
		}

		if err := tx.Users().UpdateProfile(ctx, tx.DB(), userID, email, name); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return ErrEmailAlreadyRegistered
			case infra.IsKind(err, infra.KindNotFound):
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
