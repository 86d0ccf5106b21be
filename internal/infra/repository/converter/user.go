package converter

import (
	"storefront/internal/domain/user"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func UserToDomain(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(
		row.ID,
		email,
		row.PasswordHash,
		role,
		row.IsActive,
		int(row.FailedLoginAttempts),
		pgconv.TimePtrFromPgtype(row.LockedUntil),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToLoginStateParams(u *user.User) sqlc.UpdateUserLoginStateParams {
	return sqlc.UpdateUserLoginStateParams{
		ID:                  u.ID(),
		FailedLoginAttempts: int32(u.FailedLoginAttempts()), // #nosec G115 -- bounded by the lockout policy
		LockedUntil:         pgconv.TimePtrToPgtype(u.LockedUntil()),
		LastLogin:           pgconv.TimePtrToPgtype(u.LastLogin()),
		UpdatedAt:           pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
