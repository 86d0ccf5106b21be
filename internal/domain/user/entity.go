package user

import (
	"time"

	"github.com/google/uuid"
)

// LockoutPolicy decides when repeated login failures lock an account.
type LockoutPolicy struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

type User struct {
	id                  uuid.UUID
	email               Email
	passwordHash        string
	role                Role
	isActive            bool
	failedLoginAttempts int
	lockedUntil         *time.Time
	lastLogin           *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// Reconstruct rebuilds a User from persisted state without re-running creation rules.
func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	failedLoginAttempts int,
	lockedUntil *time.Time,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                  id,
		email:               email,
		passwordHash:        passwordHash,
		role:                role,
		isActive:            isActive,
		failedLoginAttempts: failedLoginAttempts,
		lockedUntil:         lockedUntil,
		lastLogin:           lastLogin,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) FailedLoginAttempts() int { return u.failedLoginAttempts }
func (u *User) LockedUntil() *time.Time  { return u.lockedUntil }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
func (u *User) IsAdmin() bool            { return u.role == RoleAdmin }

// IsLocked reports whether a lockout window is still open at now.
func (u *User) IsLocked(now time.Time) bool {
	return u.lockedUntil != nil && now.Before(*u.lockedUntil)
}

// RegisterFailedLogin counts a failed attempt and opens a lockout window once the
// policy threshold is reached. An expired window starts a fresh count.
func (u *User) RegisterFailedLogin(now time.Time, policy LockoutPolicy) (locked bool) {
	if u.lockedUntil != nil && !now.Before(*u.lockedUntil) {
		u.lockedUntil = nil
		u.failedLoginAttempts = 0
	}

	u.failedLoginAttempts++
	u.updatedAt = now

	if policy.MaxFailedAttempts > 0 && u.failedLoginAttempts >= policy.MaxFailedAttempts {
		until := now.Add(policy.LockoutDuration)
		u.lockedUntil = &until
		return true
	}
	return false
}

func (u *User) RegisterSuccessfulLogin(now time.Time) {
	u.failedLoginAttempts = 0
	u.lockedUntil = nil
	u.lastLogin = &now
	u.updatedAt = now
}
