// Package seeder populates a development or demo environment with
// representative records. Every routine is idempotent across re-runs and
// skips entries whose prerequisites are missing instead of failing the batch.
package seeder

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

type sessionSeed struct {
	userEmail  string
	loginTime  time.Time
	logoutTime *time.Time
}

func sessionSeeds(now time.Time) []sessionSeed {
	// MongoDB stores timestamps with millisecond precision; truncate so the
	// stored login_time matches the dedupe lookup exactly.
	now = now.Truncate(time.Millisecond)
	at := func(loginAgo, duration time.Duration) (time.Time, *time.Time) {
		login := now.Add(-loginAgo)
		logout := login.Add(duration)
		return login, &logout
	}

	s1Login, s1Logout := at(5*24*time.Hour, 2*time.Hour)
	s2Login, s2Logout := at(3*24*time.Hour, time.Hour)
	s3Login, s3Logout := at(24*time.Hour, 3*time.Hour)
	s4Login, s4Logout := at(12*time.Hour, 30*time.Minute)

	return []sessionSeed{
		{userEmail: "alice.smith@example.com", loginTime: s1Login, logoutTime: s1Logout},
		{userEmail: "bob.johnson@example.com", loginTime: s2Login, logoutTime: s2Logout},
		{userEmail: "alice.smith@example.com", loginTime: s3Login, logoutTime: s3Logout},
		{userEmail: "charlie.brown@example.com", loginTime: s4Login, logoutTime: s4Logout},
		// Diana is still logged in.
		{userEmail: "diana.prince@example.com", loginTime: now, logoutTime: nil},
	}
}

// SeedSessions inserts demo sessions tied to previously seeded users.
// A missing user or an already-present (userID, loginTime) pair skips the
// entry; per-item storage errors are logged and the batch continues.
func SeedSessions(ctx context.Context, userRepo domain.UserRepository, sessionRepo domain.SessionRepository) error {
	return SeedSessionsAt(ctx, userRepo, sessionRepo, time.Now().UTC())
}

// SeedSessionsAt is SeedSessions with an explicit reference time. Re-running
// with the same reference time is a no-op thanks to the (userID, loginTime)
// dedupe key.
func SeedSessionsAt(ctx context.Context, userRepo domain.UserRepository, sessionRepo domain.SessionRepository, now time.Time) error {
	users, err := userRepo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		log.Warn().Msg("No users found. Please seed users first.")
		return nil
	}

	byEmail := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	for _, seed := range sessionSeeds(now) {
		user, ok := byEmail[seed.userEmail]
		if !ok {
			log.Warn().Str("email", seed.userEmail).Msg("Skipping session seed: user not found")
			continue
		}

		exists, err := sessionRepo.SessionExists(ctx, user.ID, seed.loginTime)
		if err != nil {
			log.Error().Err(err).Str("email", seed.userEmail).Msg("Skipping session seed: existence check failed")
			continue
		}
		if exists {
			log.Info().Str("email", seed.userEmail).Time("login_time", seed.loginTime).
				Msg("Session already exists, skipping")
			continue
		}

		session := &domain.Session{
			UserID:     user.ID,
			LoginTime:  seed.loginTime,
			LogoutTime: seed.logoutTime,
			IsActive:   true,
		}
		if err := sessionRepo.StoreSession(ctx, session); err != nil {
			log.Error().Err(err).Str("email", seed.userEmail).Msg("Failed to seed session")
			continue
		}
		log.Info().Str("email", seed.userEmail).Msg("Session seeded")
	}

	return nil
}
