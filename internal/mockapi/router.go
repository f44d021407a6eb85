package mockapi

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/commutersec/admin-dashboard/docs"
	"github.com/commutersec/admin-dashboard/internal/core/domain"
	infrahttp "github.com/commutersec/admin-dashboard/internal/infrastructure/http"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/http/handlers"
	"github.com/commutersec/admin-dashboard/internal/mockapi/handler"
	"github.com/commutersec/admin-dashboard/internal/mockapi/middleware"
	"github.com/commutersec/admin-dashboard/pkg/validation"
)

const DefaultBasePath = "/api"

type Options struct {
	Services  Services
	JWTSecret string
	// BasePath prefixes every API route. Defaults to DefaultBasePath.
	BasePath string
	Probes   map[string]handlers.Pinger
	Logger   zerolog.Logger
}

// NewRouter builds the mock API's Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := infrahttp.NewRouter(infrahttp.Options{
		Subsystem: "mockapi",
		Logger:    opts.Logger,
		Probes:    opts.Probes,
	})
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)
	e.Validator = validation.New()

	basePath := opts.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}

	// --- Dependencies ---
	svc := opts.Services
	authHandler := handler.NewAuthHandler(svc.Auth, opts.Logger)
	statsHandler := handler.NewStatsHandler(svc.Stats)
	admins := handler.NewCatalogHandler(svc.Admins, "Admin", adminHooks(svc))
	drivers := handler.NewCatalogHandler(svc.Drivers, "Driver", driverHooks())
	passengers := handler.NewCatalogHandler(svc.Passengers, "Passenger", passengerHooks())
	rides := handler.NewCatalogHandler(svc.Rides, "Ride", handler.Hooks[domain.Ride, domain.Ride]{})
	feedbacks := handler.NewCatalogHandler(svc.Feedbacks, "Feedback", handler.Hooks[domain.Feedback, domain.Feedback]{})

	manageAdmins := middleware.Require(domain.PermManageAdmins)
	manageCatalog := middleware.Require(domain.PermManageCatalog)

	// --- Docs ---
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(basePath)

	// --- Auth routes ---
	api.POST("/auth/login", authHandler.Login)

	// --- Token required ---
	g := api.Group("", middleware.Auth(opts.JWTSecret))

	g.GET("/auth/me", authHandler.Me)
	g.GET("/dashboard/stats", statsHandler.Stats)

	g.GET("/admins", admins.List)
	g.GET("/admins/:id", admins.Get)
	g.POST("/admins", admins.Create, manageAdmins)
	g.PUT("/admins/:id", admins.Update, manageAdmins)
	g.DELETE("/admins/:id", admins.Delete, manageAdmins)

	g.GET("/drivers", drivers.List)
	g.GET("/drivers/:id", drivers.Get)
	g.POST("/drivers", drivers.Create, manageCatalog)
	g.PUT("/drivers/:id", drivers.Update, manageCatalog)
	g.DELETE("/drivers/:id", drivers.Delete, manageCatalog)

	g.GET("/passengers", passengers.List)
	g.GET("/passengers/:id", passengers.Get)
	g.POST("/passengers", passengers.Create, manageCatalog)
	g.PUT("/passengers/:id", passengers.Update, manageCatalog)
	g.DELETE("/passengers/:id", passengers.Delete, manageCatalog)

	g.GET("/rides", rides.List)
	g.GET("/rides/:id", rides.Get)
	g.GET("/feedbacks", feedbacks.List)
	g.GET("/feedbacks/:id", feedbacks.Get)

	return e
}
