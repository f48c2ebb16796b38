package domain

import (
	"context"
	"time"
)

// SessionRepository is the durable store for Session records. Every method
// maps to a single atomic persistence call; concurrent writers to the same
// record race with last-write-wins semantics at the storage layer.
type SessionRepository interface {
	// StoreSession persists a new session. The implementation assigns
	// CreatedAt/UpdatedAt; the ID must already be set by the caller.
	StoreSession(ctx context.Context, session *Session) error

	// GetSessionByID retrieves a session by its primary ID.
	GetSessionByID(ctx context.Context, id string) (*Session, error)

	// SetSessionLogoutTime sets logout_time on the matching record and
	// returns the updated document. Returns ErrSessionNotFound (wrapped by
	// the caller's taxonomy) when no record matches.
	SetSessionLogoutTime(ctx context.Context, id string, logoutTime time.Time) (*Session, error)

	// SessionExists reports whether a session with the exact
	// (userID, loginTime) pair already exists. Used by the seeder to stay
	// idempotent across re-runs.
	SessionExists(ctx context.Context, userID string, loginTime time.Time) (bool, error)

	// ListSessionsByUserID retrieves sessions for a user, newest first.
	ListSessionsByUserID(ctx context.Context, userID string, filter SessionFilter) ([]*Session, error)

	// CountSessions returns the total number of stored sessions.
	CountSessions(ctx context.Context) (int64, error)
}

// UserRepository exposes the user lookups the session subsystem relies on.
// Referential integrity between sessions and users is the caller's job; the
// session store never validates user IDs.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	ListUsers(ctx context.Context) ([]*User, error)
}

// TenantRepository stores tenants, seeded ahead of users.
type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant *Tenant) error
	GetTenantByName(ctx context.Context, name string) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)
}

// RoleRepository stores roles, seeded ahead of users.
type RoleRepository interface {
	CreateRole(ctx context.Context, role *Role) error
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]*Role, error)
}
