package seeder

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

var roleNames = []string{
	"Super Admin",
	"Admin",
	"Editor",
	"Viewer",
	"Guest",
}

// SeedRoles inserts the demo roles, skipping names that already exist.
func SeedRoles(ctx context.Context, roleRepo domain.RoleRepository) error {
	existing, err := roleRepo.ListRoles(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, r := range existing {
		present[r.Name] = true
	}

	for _, name := range roleNames {
		if present[name] {
			log.Info().Str("role", name).Msg("Role already exists, skipping")
			continue
		}
		if err := roleRepo.CreateRole(ctx, &domain.Role{Name: name}); err != nil {
			log.Error().Err(err).Str("role", name).Msg("Failed to seed role")
			continue
		}
		log.Info().Str("role", name).Msg("Role seeded")
	}
	return nil
}
