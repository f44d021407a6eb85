package mockapi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

// Seed loads the fixtures into an empty store and gives every fixture admin
// and passenger the given password. A store that already holds admins is
// left untouched.
func Seed(ctx context.Context, repos Repositories, auth ports.AuthService, password string, logger zerolog.Logger) error {
	n, err := repos.Admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		logger.Info().Int("admins", n).Msg("store already seeded")
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	passengers := passengerFixtures()
	for i := range passengers {
		passengers[i].PasswordHash = hash
	}

	admins := adminFixtures()
	if err := seedCollection(ctx, "admins", repos.Admins, admins); err != nil {
		return err
	}
	if err := seedCollection(ctx, "drivers", repos.Drivers, driverFixtures()); err != nil {
		return err
	}
	if err := seedCollection(ctx, "passengers", repos.Passengers, passengers); err != nil {
		return err
	}
	if err := seedCollection(ctx, "rides", repos.Rides, rideFixtures()); err != nil {
		return err
	}
	if err := seedCollection(ctx, "feedbacks", repos.Feedbacks, feedbackFixtures()); err != nil {
		return err
	}

	for _, a := range admins {
		if err := auth.SetPassword(ctx, a, password); err != nil {
			return fmt.Errorf("seed credential for %s: %w", a.Username, err)
		}
	}

	logger.Info().Int("admins", len(admins)).Msg("fixtures seeded")
	return nil
}

func seedCollection[T domain.Entity[T]](ctx context.Context, name string, repo Collection[T], items []T) error {
	if err := repo.Seed(ctx, items); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}
