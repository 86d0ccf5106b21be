//go:build unit

package user_test

import (
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds an active user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("admin@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleAdmin, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.IsAdmin())
		assert.Nil(t, actual.LastLogin())
		assert.Zero(t, actual.FailedLoginAttempts())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Admin@Example.COM") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "customer role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("email is normalized to lower case", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithEmail("  Admin@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", u.Email().Value())
	})
}

func TestLockout(t *testing.T) {
	policy := user.LockoutPolicy{MaxFailedAttempts: 3, LockoutDuration: 15 * time.Minute}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("locks on reaching the threshold", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()

		assert.False(t, u.RegisterFailedLogin(now, policy))
		assert.False(t, u.RegisterFailedLogin(now, policy))
		assert.True(t, u.RegisterFailedLogin(now, policy))

		assert.Equal(t, 3, u.FailedLoginAttempts())
		assert.True(t, u.IsLocked(now))
		assert.True(t, u.IsLocked(now.Add(14*time.Minute)))
		assert.False(t, u.IsLocked(now.Add(15*time.Minute)))
	})

	t.Run("expired window starts a fresh count", func(t *testing.T) {
		u := builder.NewUserBuilder().
			WithFailedAttempts(3).
			LockedUntilTime(now.Add(-time.Minute)).
			BuildPersisted()

		locked := u.RegisterFailedLogin(now, policy)

		assert.False(t, locked)
		assert.Equal(t, 1, u.FailedLoginAttempts())
		assert.Nil(t, u.LockedUntil())
	})

	t.Run("successful login resets counters", func(t *testing.T) {
		u := builder.NewUserBuilder().WithFailedAttempts(2).BuildPersisted()

		u.RegisterSuccessfulLogin(now)

		assert.Zero(t, u.FailedLoginAttempts())
		assert.Nil(t, u.LockedUntil())
		require.NotNil(t, u.LastLogin())
		assert.Equal(t, now, *u.LastLogin())
	})

	t.Run("zero threshold never locks", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()
		for range 10 {
			assert.False(t, u.RegisterFailedLogin(now, user.LockoutPolicy{}))
		}
		assert.False(t, u.IsLocked(now))
	})
}

func TestCredentials(t *testing.T) {
	_, err := user.NewCredentials("admin@example.com", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	creds, err := user.NewCredentials("ADMIN@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
