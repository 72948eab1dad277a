package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/competeconnect/competition-api/docs"
	"github.com/competeconnect/competition-api/internal/api/handler"
	"github.com/competeconnect/competition-api/internal/api/middleware"
	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Service    ports.WorkspaceService
	Dispatcher handler.SearchDispatcher
	Tokens     *middleware.WorkspaceTokens
	// Ready maps a dependency name to its readiness check.
	Ready map[string]handler.Pinger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "competeconnect",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	workspaceHandler := handler.NewWorkspaceHandler(deps.Service, deps.Tokens)
	sessionHandler := handler.NewSessionHandler(deps.Service)
	searchHandler := handler.NewSearchHandler(deps.Service, deps.Dispatcher, deps.Log)
	catalogHandler := handler.NewCatalogHandler()

	// --- Public routes ---
	e.POST("/v1/workspaces", workspaceHandler.Create)
	e.GET("/v1/catalog", catalogHandler.Get)

	// --- Workspace routes (token required) ---
	v1 := e.Group("/v1", middleware.Auth(deps.Tokens))
	v1.GET("/workspace", workspaceHandler.Get)
	v1.POST("/session", sessionHandler.SignIn)
	v1.DELETE("/session", sessionHandler.SignOut)
	v1.PATCH("/filters", searchHandler.UpdateFilters)
	v1.POST("/search", searchHandler.Search,
		middleware.Session(deps.Service),
		middleware.RBAC(domain.RoleCandidate, domain.RoleOrganizer),
	)
	v1.POST("/home", workspaceHandler.Home)
	v1.PUT("/selection", workspaceHandler.Select)
	v1.DELETE("/selection", workspaceHandler.ClearSelection)
	v1.PATCH("/shell", workspaceHandler.UpdateShell)
	v1.POST("/navigation", workspaceHandler.Navigate)

	// --- Operations ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Ready).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
