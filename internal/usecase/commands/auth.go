package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAccountLocked        = errs.New("account temporarily locked")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrUserAlreadyExists    = errs.New("user already exists")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   int64
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	CreateUser(ctx context.Context, in CreateUserInput) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	policy     user.LockoutPolicy
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, policy user.LockoutPolicy, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		policy:     policy,
		clock:      clk,
	}
}

// Login checks credentials under a row lock. A failed attempt is committed
// before the error is returned so the lockout counter survives the request.
func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		// Same answer as a wrong password to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	var (
		authenticated *user.User
		outcome       error
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = nil
		authenticated = nil
		now := a.clock.Now()

		u, terr := tx.Users().FindByEmailForUpdate(ctx, credentials.Email())
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				outcome = ErrInvalidCredentials
				return nil
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		if !u.IsActive() {
			outcome = ErrUserInactive
			return nil
		}
		if u.IsLocked(now) {
			outcome = ErrAccountLocked
			return nil
		}

		if cerr := a.hasher.Compare(u.PasswordHash(), credentials.Password().Value()); cerr != nil {
			locked := u.RegisterFailedLogin(now, a.policy)
			if locked {
				slog.Warn("account locked after repeated login failures",
					"user_id", u.ID().String(),
					"attempts", u.FailedLoginAttempts(),
					"locked_until", u.LockedUntil())
			}
			outcome = ErrInvalidCredentials
			return tx.Users().SaveLoginState(ctx, u)
		}

		u.RegisterSuccessfulLogin(now)
		authenticated = u
		return tx.Users().SaveLoginState(ctx, u)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if outcome != nil {
		return nil, outcome
	}

	accessToken, err := a.jwtService.GenerateAccessToken(authenticated.ID(), authenticated.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      authenticated.ID(),
		Role:        authenticated.Role(),
		AccessToken: accessToken,
		ExpiresIn:   int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}

func (a *authCommandsImpl) CreateUser(ctx context.Context, in CreateUserInput) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}
	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(credentials.Email(), hash, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if terr := tx.Users().Create(ctx, u); terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return errs.Mark(terr, ErrUserAlreadyExists)
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}
