package commands

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/user"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/password"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrUserInactive           = errs.New("user inactive")
	ErrInvalidRegistration    = errs.New("invalid registration")
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrAuthenticationFailed   = errs.New("authentication failed")
	ErrTokenGeneration        = errs.New("token generation failed")
)

type AuthResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
	ExpiresIn   time.Duration
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	credentials, name, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	now := a.clock.Now()
	newUser := user.NewUser(credentials.Email(), name, hash, user.RoleCustomer, now)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyRegistered
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	view := &queries.AuthorizedUserView{
		ID:        newUser.ID(),
		Email:     newUser.Email().Value(),
		FirstName: newUser.Name().First(),
		LastName:  newUser.Name().Last(),
		Role:      newUser.Role().String(),
		IsActive:  newUser.IsActive(),
		CreatedAt: newUser.CreatedAt(),
	}

	return &AuthResult{User: view, AccessToken: token, ExpiresIn: a.tokens.TokenDuration()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userReadModel, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.GenerateToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID, now)
	})
	if err != nil {
		// Login already succeeded; only the last_login stamp is lost.
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	} else {
		userReadModel.LastLogin = &now
	}

	return &AuthResult{User: userReadModel, AccessToken: token, ExpiresIn: a.tokens.TokenDuration()}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plain string) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch so emails cannot be enumerated.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
