package seeder

import (
	"context"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

// Repositories bundles the stores the seed chain writes to.
type Repositories struct {
	Tenants  domain.TenantRepository
	Roles    domain.RoleRepository
	Users    domain.UserRepository
	Sessions domain.SessionRepository
}

// Run executes the full seed chain in dependency order:
// tenants, roles, users, sessions.
func Run(ctx context.Context, repos Repositories, hasher PasswordHasher) error {
	if err := SeedTenants(ctx, repos.Tenants); err != nil {
		return err
	}
	if err := SeedRoles(ctx, repos.Roles); err != nil {
		return err
	}
	if err := SeedUsers(ctx, repos.Users, repos.Roles, repos.Tenants, hasher); err != nil {
		return err
	}
	return SeedSessions(ctx, repos.Users, repos.Sessions)
}
