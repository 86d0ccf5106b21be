//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	"storefront/tests/common/memuow"

	"github.com/stretchr/testify/suite"
)

const testPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	store  *memuow.Store
	clock  *clock.MockClock
	jwt    *jwt.Service
	hasher *password.Hasher
	hash   string
	uc     commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	s.hasher = password.NewHasher(4)
	hash, err := s.hasher.Hash(testPassword)
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.store = memuow.New()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	s.jwt = jwt.NewService("test-secret-key-for-storefront-tests", "storefront-test", time.Hour)
	policy := user.LockoutPolicy{MaxFailedAttempts: 3, LockoutDuration: 15 * time.Minute}
	s.uc = commands.NewAuthCommands(s.store, s.jwt, s.hasher, policy, s.clock)
}

func (s *AuthCommandsTestSuite) seedAdmin(mutate func(*builder.UserBuilder)) *user.User {
	u := builder.NewUserBuilder().WithPasswordHash(s.hash).With(mutate).BuildPersisted()
	s.store.AddUser(u)
	return u
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: issues a token and resets the failure counter", func() {
		s.SetupTest()
		u := s.seedAdmin(func(b *builder.UserBuilder) { b.FailedLoginAttempts = 2 })

		res, err := s.uc.Login(ctx, commands.LoginInput{Email: "  ADMIN@example.com ", Password: testPassword})

		s.Require().NoError(err)
		s.Equal(u.ID(), res.UserID)
		s.Equal(user.RoleAdmin, res.Role)
		s.Equal(int64(3600), res.ExpiresIn)

		claims, err := s.jwt.ValidateToken(res.AccessToken)
		s.Require().NoError(err)
		s.Equal(u.ID(), claims.UserID)

		stored, _ := s.store.User("admin@example.com")
		s.Zero(stored.FailedLoginAttempts())
		s.Require().NotNil(stored.LastLogin())
		s.Equal(s.clock.Now(), *stored.LastLogin())
	})

	s.Run("error: wrong password is counted and eventually locks", func() {
		s.SetupTest()
		s.seedAdmin(func(*builder.UserBuilder) {})

		for i := 1; i <= 3; i++ {
			_, err := s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: "wrong-password"})
			s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
		}

		stored, _ := s.store.User("admin@example.com")
		s.Equal(3, stored.FailedLoginAttempts())
		s.True(stored.IsLocked(s.clock.Now()))

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})
		s.ErrorIs(err, commands.ErrAccountLocked)
	})

	s.Run("success: lock expires after the window", func() {
		s.SetupTest()
		until := s.clock.Now().Add(time.Minute)
		s.seedAdmin(func(b *builder.UserBuilder) {
			b.FailedLoginAttempts = 3
			b.LockedUntil = &until
		})

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})
		s.Require().ErrorIs(err, commands.ErrAccountLocked)

		s.clock.Add(2 * time.Minute)
		_, err = s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})
		s.Require().NoError(err)
	})

	s.Run("error: inactive account", func() {
		s.SetupTest()
		s.seedAdmin(func(b *builder.UserBuilder) { b.IsActive = false })

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})

		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("error: unknown email looks like a wrong password", func() {
		s.SetupTest()

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "nobody@example.com", Password: testPassword})

		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: malformed input looks like a wrong password", func() {
		s.SetupTest()

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "not-an-email", Password: "x"})

		s.ErrorIs(err, commands.ErrInvalidCredentials)
		s.Zero(s.store.Calls)
	})

	s.Run("error: repository failure", func() {
		s.SetupTest()
		s.seedAdmin(func(*builder.UserBuilder) {})
		s.store.Fail["users.find_by_email"] = errors.New("connection refused")

		_, err := s.uc.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})

		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func (s *AuthCommandsTestSuite) TestCreateUser() {
	ctx := context.Background()

	s.Run("success: stores a hashed admin", func() {
		s.SetupTest()

		id, err := s.uc.CreateUser(ctx, commands.CreateUserInput{Email: "Owner@Example.com", Password: testPassword, Role: "admin"})

		s.Require().NoError(err)
		stored, ok := s.store.User("owner@example.com")
		s.Require().True(ok)
		s.Equal(id, stored.ID())
		s.NotEqual(testPassword, stored.PasswordHash())
		s.NoError(s.hasher.Compare(stored.PasswordHash(), testPassword))
	})

	s.Run("error: duplicate email", func() {
		s.SetupTest()
		s.seedAdmin(func(*builder.UserBuilder) {})

		_, err := s.uc.CreateUser(ctx, commands.CreateUserInput{Email: "admin@example.com", Password: testPassword, Role: "admin"})

		s.True(errs.Is(err, commands.ErrUserAlreadyExists))
	})

	s.Run("error: invalid role and weak password are validation errors", func() {
		s.SetupTest()

		_, err := s.uc.CreateUser(ctx, commands.CreateUserInput{Email: "a@example.com", Password: testPassword, Role: "root"})
		s.True(errs.Is(err, errs.ErrDomainValidation))

		_, err = s.uc.CreateUser(ctx, commands.CreateUserInput{Email: "a@example.com", Password: "short", Role: "admin"})
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}
