package service

import (
	"context"
	"fmt"
	"time"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

// StatsService computes the dashboard counters from the mock API collections.
type StatsService struct {
	admins     counter
	passengers counter
	drivers    ports.Repository[domain.Driver]
	rides      ports.Repository[domain.Ride]
	now        func() time.Time
}

func NewStatsService(
	admins ports.Repository[domain.Admin],
	drivers ports.Repository[domain.Driver],
	passengers ports.Repository[domain.Passenger],
	rides ports.Repository[domain.Ride],
) *StatsService {
	return &StatsService{
		admins:     admins,
		passengers: passengers,
		drivers:    drivers,
		rides:      rides,
		now:        time.Now,
	}
}

// Stats counts every collection; todayRides uses the calendar day of now
// in its own location and activeDrivers counts active licences.
func (s *StatsService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	var err error

	if stats.TotalAdmins, err = s.admins.Count(ctx); err != nil {
		return stats, fmt.Errorf("count admins: %w", err)
	}
	if stats.TotalPassengers, err = s.passengers.Count(ctx); err != nil {
		return stats, fmt.Errorf("count passengers: %w", err)
	}

	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("list drivers: %w", err)
	}
	stats.TotalDrivers = len(drivers)
	for _, d := range drivers {
		if d.LicenseStatus == domain.LicenseActive {
			stats.ActiveDrivers++
		}
	}

	rides, err := s.rides.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("list rides: %w", err)
	}
	stats.TotalRides = len(rides)

	now := s.now()
	y, m, d := now.Date()
	for _, r := range rides {
		ry, rm, rd := r.StartedAt.In(now.Location()).Date()
		if ry == y && rm == m && rd == d {
			stats.TodayRides++
		}
	}

	return stats, nil
}
