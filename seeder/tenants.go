package seeder

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

var tenantNames = []string{
	"DesignGenie Inc.",
	"CreativeHub LLC",
	"Innovate Solutions",
	"Artisan Studios",
}

// SeedTenants inserts the demo tenants, skipping names that already exist.
func SeedTenants(ctx context.Context, tenantRepo domain.TenantRepository) error {
	existing, err := tenantRepo.ListTenants(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, t := range existing {
		present[t.Name] = true
	}

	for _, name := range tenantNames {
		if present[name] {
			log.Info().Str("tenant", name).Msg("Tenant already exists, skipping")
			continue
		}
		if err := tenantRepo.CreateTenant(ctx, &domain.Tenant{Name: name}); err != nil {
			log.Error().Err(err).Str("tenant", name).Msg("Failed to seed tenant")
			continue
		}
		log.Info().Str("tenant", name).Msg("Tenant seeded")
	}
	return nil
}
