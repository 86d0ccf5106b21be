package repository

import (
	"context"

	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	FindUserByEmailForUpdate(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserLoginState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLoginStateParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByEmailForUpdate(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmailForUpdate(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) SaveLoginState(ctx context.Context, u *user.User) error {
	if err := r.queries.UpdateUserLoginState(ctx, r.db, converter.UserToLoginStateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update user login state", err)
	}
	return nil
}
