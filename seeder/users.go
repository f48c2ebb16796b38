package seeder

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
)

// PasswordHasher matches services.PasswordHasher without importing the
// services package from here.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type userSeed struct {
	fullName   string
	email      string
	password   string
	roleName   string
	tenantName string
	isVerified bool
}

var userSeeds = []userSeed{
	{"Alice Smith", "alice.smith@example.com", "password123", "Admin", "DesignGenie Inc.", true},
	{"Bob Johnson", "bob.johnson@example.com", "password123", "Editor", "CreativeHub LLC", true},
	{"Charlie Brown", "charlie.brown@example.com", "password123", "Viewer", "Innovate Solutions", true},
	{"Diana Prince", "diana.prince@example.com", "password123", "Super Admin", "DesignGenie Inc.", true},
	{"Eve Adams", "eve.adams@example.com", "password123", "Guest", "Artisan Studios", false},
}

// SeedUsers inserts the demo users, resolving role and tenant by name.
// Entries whose role or tenant is missing are skipped with a warning, as are
// emails that already exist.
func SeedUsers(ctx context.Context, userRepo domain.UserRepository, roleRepo domain.RoleRepository, tenantRepo domain.TenantRepository, hasher PasswordHasher) error {
	roles, err := roleRepo.ListRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		log.Warn().Msg("No roles found. Please seed roles first.")
		return nil
	}
	tenants, err := tenantRepo.ListTenants(ctx)
	if err != nil {
		return err
	}
	if len(tenants) == 0 {
		log.Warn().Msg("No tenants found. Please seed tenants first.")
		return nil
	}

	roleByName := make(map[string]*domain.Role, len(roles))
	for _, r := range roles {
		roleByName[r.Name] = r
	}
	tenantByName := make(map[string]*domain.Tenant, len(tenants))
	for _, t := range tenants {
		tenantByName[t.Name] = t
	}

	for _, seed := range userSeeds {
		_, err := userRepo.GetUserByEmail(ctx, seed.email)
		if err == nil {
			log.Info().Str("email", seed.email).Msg("User already exists, skipping")
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			log.Error().Err(err).Str("email", seed.email).Msg("Skipping user seed: lookup failed")
			continue
		}

		role, roleOK := roleByName[seed.roleName]
		tenant, tenantOK := tenantByName[seed.tenantName]
		if !roleOK || !tenantOK {
			log.Warn().Str("user", seed.fullName).Msg("Skipping user seed: role or tenant not found")
			continue
		}

		hash, err := hasher.Hash(seed.password)
		if err != nil {
			log.Error().Err(err).Str("email", seed.email).Msg("Skipping user seed: password hashing failed")
			continue
		}

		user := &domain.User{
			FullName:     seed.fullName,
			Email:        seed.email,
			PasswordHash: hash,
			RoleID:       role.ID,
			TenantID:     tenant.ID,
			IsVerified:   seed.isVerified,
			IsActive:     true,
		}
		if err := userRepo.CreateUser(ctx, user); err != nil {
			log.Error().Err(err).Str("email", seed.email).Msg("Failed to seed user")
			continue
		}
		log.Info().Str("user", seed.fullName).Msg("User seeded")
	}

	return nil
}
