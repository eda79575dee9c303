package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/saas-pm/project-hub/internal/api/handler"
	"github.com/saas-pm/project-hub/internal/api/middleware"
	"github.com/saas-pm/project-hub/internal/core/domain"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

// Services are the core use cases the HTTP surface exposes.
type Services struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Catalog  ports.CatalogService
	Requests ports.RequestService
	Projects ports.ProjectService
	Messages ports.MessageService
	Stats    ports.StatsService
}

// Options tunes the router. Zero values are usable.
type Options struct {
	// Prefix is prepended to every business route, e.g. "/api".
	Prefix      string
	CORSOrigins []string
	Log         zerolog.Logger
	// Health maps dependency names to readiness checks.
	Health map[string]handler.Check
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	registerer, gatherer := opts.Registerer, opts.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSOrigins),
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no auth) ---
	health := handler.NewHealthHandler(opts.Health)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users, svc.Auth)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	requestHandler := handler.NewRequestHandler(svc.Requests)
	projectHandler := handler.NewProjectHandler(svc.Projects)
	messageHandler := handler.NewMessageHandler(svc.Messages)
	statsHandler := handler.NewStatsHandler(svc.Stats)

	root := e.Group(opts.Prefix)
	authed := middleware.Auth(svc.Auth)

	// --- Auth ---
	root.POST("/auth/login", authHandler.Login)
	root.GET("/auth/profile", authHandler.Profile, authed)
	root.PUT("/auth/profile", authHandler.UpdateProfile, authed)

	// --- Admin ---
	admin := root.Group("/admin", authed, middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/users", userHandler.Create)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/employees", userHandler.ListEmployees)
	admin.GET("/users/clients", userHandler.ListClients)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.POST("/services", catalogHandler.Create)
	admin.GET("/services", catalogHandler.List)
	admin.GET("/service-requests", requestHandler.ListAll)
	admin.PUT("/service-requests/:id/approve", requestHandler.Approve)
	admin.PUT("/service-requests/:id/reject", requestHandler.Reject)
	admin.GET("/projects", projectHandler.ListAll)
	admin.PUT("/projects/:id/assign", projectHandler.Assign)
	admin.PUT("/projects/:id/unassign", projectHandler.Unassign)
	admin.GET("/stats", statsHandler.Get)

	// --- Client ---
	client := root.Group("/client", authed, middleware.RequireRole(domain.RoleClient))
	client.GET("/services", catalogHandler.List)
	client.POST("/service-requests", requestHandler.File)
	client.GET("/service-requests", requestHandler.ListMine)
	client.GET("/projects", projectHandler.ListForClient)

	// --- Employee ---
	employee := root.Group("/employee", authed, middleware.RequireRole(domain.RoleEmployee))
	employee.GET("/projects", projectHandler.ListForEmployee)
	employee.PUT("/projects/:id/status", projectHandler.UpdateStatus)

	// --- Messaging (any role) ---
	messages := root.Group("/messages", authed)
	messages.POST("", messageHandler.Send)
	messages.POST("/", messageHandler.Send)
	messages.GET("", messageHandler.List)
	messages.GET("/", messageHandler.List)
	messages.GET("/contacts", messageHandler.Contacts)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
