// Command seed populates a development or demo database with representative
// tenants, roles, users, and sessions. Safe to re-run; existing records are
// skipped.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/config"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/mongodb"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/seeder"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := mongodb.InitMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MongoDB")
	}
	defer mongodb.CloseMongoDB(context.Background())
	db := mongodb.GetDB()

	tenantRepo, err := mongodb.NewTenantRepositoryMongo(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tenant repository")
	}
	roleRepo, err := mongodb.NewRoleRepositoryMongo(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize role repository")
	}
	userRepo, err := mongodb.NewUserRepositoryMongo(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize user repository")
	}
	sessionRepo, err := mongodb.NewSessionRepositoryMongo(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session repository")
	}

	repos := seeder.Repositories{
		Tenants:  tenantRepo,
		Roles:    roleRepo,
		Users:    userRepo,
		Sessions: sessionRepo,
	}
	hasher := services.NewBcryptPasswordHasher(cfg.BcryptCost)

	if err := seeder.Run(ctx, repos, hasher); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Msg("Seeding complete.")
}
