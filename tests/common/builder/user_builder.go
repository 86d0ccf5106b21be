//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/user"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	Role                string
	IsActive            bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	Now                 time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
		Now:          time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain runs the creation rules, so invalid emails and roles fail here.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.Now), nil
}

// BuildPersisted rebuilds the user as the repository would load it.
func (u *UserBuilder) BuildPersisted() *user.User {
	email, _ := user.NewEmail(u.Email)
	return user.Reconstruct(
		u.ID,
		email,
		u.PasswordHash,
		user.Role(u.Role),
		u.IsActive,
		u.FailedLoginAttempts,
		u.LockedUntil,
		nil,
		u.Now,
		u.Now,
	)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	var lockedUntil pgtype.Timestamptz
	if u.LockedUntil != nil {
		lockedUntil = pgtype.Timestamptz{Time: *u.LockedUntil, Valid: true}
	}

	return sqlc.Users{
		ID:                  u.ID,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Role:                u.Role,
		IsActive:            u.IsActive,
		FailedLoginAttempts: int32(u.FailedLoginAttempts),
		LockedUntil:         lockedUntil,
		CreatedAt:           pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFailedAttempts(n int) *UserBuilder {
	u.FailedLoginAttempts = n
	return u
}

func (u *UserBuilder) LockedUntilTime(t time.Time) *UserBuilder {
	u.LockedUntil = &t
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
