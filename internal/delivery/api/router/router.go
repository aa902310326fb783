// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"uiagate/config"
	"uiagate/internal/delivery/api/middleware"
	"uiagate/internal/delivery/api/router/handler"
	"uiagate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UIAHandler               *handler.UIAHandler
	RegistrationTokenHandler *handler.RegistrationTokenHandler
	IdentityMiddleware       *middleware.IdentityMiddleware
	Config                   *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	uiaHandler               *handler.UIAHandler
	registrationTokenHandler *handler.RegistrationTokenHandler
	identityMiddleware       *middleware.IdentityMiddleware
	config                   *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		uiaHandler:               params.UIAHandler,
		registrationTokenHandler: params.RegistrationTokenHandler,
		identityMiddleware:       params.IdentityMiddleware,
		config:                   params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Gated routes come from configuration.
	for _, route := range Routes(r.config) {
		e.Add(route.Method, route.Path, r.uiaHandler.Gate(route), r.identityMiddleware.Identify)
	}

	// Everything under /_uia is called by the homeserver with an admin token.
	uiaGroup := e.Group("/_uia")
	uiaGroup.Use(r.identityMiddleware.Identify)
	uiaGroup.Use(r.identityMiddleware.RequireAdmin)
	{
		uiaGroup.POST("/finish", r.uiaHandler.Finish)
	}

	adminGroup := uiaGroup.Group("/admin")
	{
		adminGroup.POST("/registration_tokens/new", r.registrationTokenHandler.Mint)
		adminGroup.GET("/registration_tokens/:token", r.registrationTokenHandler.Get)
		adminGroup.DELETE("/users/:user_id", r.uiaHandler.Unenroll)
	}
}

// Routes converts the configured gated routes into domain routes.
func Routes(cfg *config.Config) []entity.Route {
	routes := make([]entity.Route, 0, len(cfg.UIA.Routes))
	for _, rc := range cfg.UIA.Routes {
		route := entity.Route{
			Method: rc.Method,
			Path:   rc.Path,
			Flows:  make([]entity.Flow, 0, len(rc.Flows)),
		}
		for _, fc := range rc.Flows {
			route.Flows = append(route.Flows, entity.Flow{Stages: fc.Stages})
		}
		routes = append(routes, route)
	}

	return routes
}
