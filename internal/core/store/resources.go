package store

import (
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

var (
	AdminsConfig     = Config{Name: "admins", Singular: "admin", Path: "/admins"}
	DriversConfig    = Config{Name: "drivers", Singular: "driver", Path: "/drivers"}
	PassengersConfig = Config{Name: "passengers", Singular: "passenger", Path: "/passengers"}
	RidesConfig      = Config{Name: "rides", Singular: "ride", Path: "/rides"}
	FeedbacksConfig  = Config{Name: "feedbacks", Singular: "feedback", Path: "/feedbacks"}
)

type (
	AdminStore     = Resource[domain.Admin, domain.AdminInput]
	DriverStore    = Resource[domain.Driver, domain.DriverInput]
	PassengerStore = Resource[domain.Passenger, domain.PassengerInput]
	RideStore      = Collection[domain.Ride]
	FeedbackStore  = Collection[domain.Feedback]
)

func NewAdminStore(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *AdminStore {
	return NewResource[domain.Admin, domain.AdminInput](AdminsConfig, api, notify, logger)
}

func NewDriverStore(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *DriverStore {
	return NewResource[domain.Driver, domain.DriverInput](DriversConfig, api, notify, logger)
}

func NewPassengerStore(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *PassengerStore {
	return NewResource[domain.Passenger, domain.PassengerInput](PassengersConfig, api, notify, logger)
}

func NewRideStore(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *RideStore {
	return NewCollection[domain.Ride](RidesConfig, api, notify, logger)
}

func NewFeedbackStore(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *FeedbackStore {
	return NewCollection[domain.Feedback](FeedbacksConfig, api, notify, logger)
}
