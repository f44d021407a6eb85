package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/api/handler"
	"github.com/commutersec/admin-dashboard/internal/api/middleware"
	"github.com/commutersec/admin-dashboard/internal/app"
	infrahttp "github.com/commutersec/admin-dashboard/internal/infrastructure/http"
	"github.com/commutersec/admin-dashboard/internal/infrastructure/http/handlers"
	"github.com/commutersec/admin-dashboard/pkg/validation"
)

// Options holds what the console router is built from.
type Options struct {
	App *app.App
	// Stream serves the change stream at /ws. Optional.
	Stream http.Handler
	Probes map[string]handlers.Pinger
	Logger zerolog.Logger
}

// NewRouter builds the console's Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := infrahttp.NewRouter(infrahttp.Options{
		Subsystem: "console",
		Logger:    opts.Logger,
		Probes:    opts.Probes,
	})
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)
	e.Validator = validation.New()

	a := opts.App
	guard := middleware.Guard(a.Auth)

	pages := handler.NewPageHandler(a)
	session := handler.NewSessionHandler(a)
	ui := handler.NewUIHandler(a)
	admins := handler.NewResourceHandler(a.Admins, a.Router, a.Toasts)
	drivers := handler.NewResourceHandler(a.Drivers, a.Router, a.Toasts)
	passengers := handler.NewResourceHandler(a.Passengers, a.Router, a.Toasts)
	rides := handler.NewCollectionHandler(a.Rides, a.Router)
	feedbacks := handler.NewCollectionHandler(a.Feedbacks, a.Router)
	admins.SetRowStyle(handler.AdminRowStyle)
	drivers.SetRowStyle(handler.DriverRowStyle)

	// --- Public ---
	e.GET("/", pages.Login, guard)
	e.POST("/session", session.Login)

	// --- Session required ---
	g := e.Group("", guard)

	g.GET("/session", session.Current)
	g.DELETE("/session", session.Logout)
	g.GET("/dashboard", pages.Dashboard)

	g.GET("/admins", admins.List)
	g.POST("/admins", admins.Create)
	g.GET("/admins/:id", admins.Get)
	g.PUT("/admins/:id", admins.Update)
	g.DELETE("/admins/:id", admins.Delete)

	g.GET("/drivers", drivers.List)
	g.POST("/drivers", drivers.Create)
	g.GET("/drivers/:id", drivers.Get)
	g.PUT("/drivers/:id", drivers.Update)
	g.DELETE("/drivers/:id", drivers.Delete)

	g.GET("/passengers", passengers.List)
	g.POST("/passengers", passengers.Create)
	g.GET("/passengers/:id", passengers.Get)
	g.PUT("/passengers/:id", passengers.Update)
	g.DELETE("/passengers/:id", passengers.Delete)

	g.GET("/rides", rides.List)
	g.GET("/rides/:id", rides.Get)
	g.GET("/feedbacks", feedbacks.List)
	g.GET("/feedbacks/:id", feedbacks.Get)

	g.GET("/ui/navigation", ui.Navigation)
	g.GET("/ui/sidebar", ui.Sidebar)
	g.POST("/ui/sidebar/toggle", ui.ToggleSidebar)
	g.GET("/ui/toasts", ui.Toasts)
	g.DELETE("/ui/toasts/:id", ui.DismissToast)

	if opts.Stream != nil {
		g.GET("/ws", echo.WrapHandler(opts.Stream))
	}

	return e
}
