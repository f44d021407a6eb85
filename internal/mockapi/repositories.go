// Package mockapi is a self-contained implementation of the dashboard REST
// API, backed by memory or MongoDB and seeded with fixture data.
package mockapi

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/core/service"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/db/memory"
	mongorepo "github.com/commutersec/admin-dashboard/internal/infrastructure/db/mongo"
)

// Collection is a repository that can be loaded with fixtures.
type Collection[T domain.Entity[T]] interface {
	ports.Repository[T]
	Seed(ctx context.Context, items []T) error
}

type Repositories struct {
	Admins      Collection[domain.Admin]
	Drivers     Collection[domain.Driver]
	Passengers  Collection[domain.Passenger]
	Rides       Collection[domain.Ride]
	Feedbacks   Collection[domain.Feedback]
	Credentials ports.CredentialRepository
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Admins:      memory.NewRepository[domain.Admin](),
		Drivers:     memory.NewRepository[domain.Driver](),
		Passengers:  memory.NewRepository[domain.Passenger](),
		Rides:       memory.NewRepository[domain.Ride](),
		Feedbacks:   memory.NewRepository[domain.Feedback](),
		Credentials: memory.NewCredentialRepository(),
	}
}

func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Admins:      mongorepo.NewCollectionRepository[domain.Admin](db, "admins"),
		Drivers:     mongorepo.NewCollectionRepository[domain.Driver](db, "drivers"),
		Passengers:  mongorepo.NewCollectionRepository[domain.Passenger](db, "passengers"),
		Rides:       mongorepo.NewCollectionRepository[domain.Ride](db, "rides"),
		Feedbacks:   mongorepo.NewCollectionRepository[domain.Feedback](db, "feedbacks"),
		Credentials: mongorepo.NewCredentialRepository(db),
	}
}

// Services are the mock API's use cases over a set of repositories.
type Services struct {
	Auth       *service.AuthService
	Admins     *service.CatalogService[domain.Admin, domain.AdminInput]
	Drivers    *service.CatalogService[domain.Driver, domain.DriverInput]
	Passengers *service.CatalogService[domain.Passenger, domain.PassengerInput]
	Rides      *service.CatalogService[domain.Ride, domain.Ride]
	Feedbacks  *service.CatalogService[domain.Feedback, domain.Feedback]
	Stats      *service.StatsService
}

func NewServices(repos Repositories, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) Services {
	return Services{
		Auth:       service.NewAuthService(repos.Credentials, repos.Admins, jwtSecret, tokenTTL, logger),
		Admins:     service.NewCatalogService[domain.Admin, domain.AdminInput]("admins", repos.Admins, logger),
		Drivers:    service.NewCatalogService[domain.Driver, domain.DriverInput]("drivers", repos.Drivers, logger),
		Passengers: service.NewCatalogService[domain.Passenger, domain.PassengerInput]("passengers", repos.Passengers, logger),
		Rides:      service.NewCatalogService[domain.Ride, domain.Ride]("rides", repos.Rides, logger),
		Feedbacks:  service.NewCatalogService[domain.Feedback, domain.Feedback]("feedbacks", repos.Feedbacks, logger),
		Stats:      service.NewStatsService(repos.Admins, repos.Drivers, repos.Passengers, repos.Rides),
	}
}
