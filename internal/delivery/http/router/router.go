// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobhud/internal/delivery/http/middleware"
	"jobhud/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	TipsHandler    *handler.TipsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	tipsHandler    *handler.TipsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		tipsHandler:    params.TipsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("", handler.Welcome)
	api.GET("/health", handler.HealthCheck)

	// Auth routes. /me is not behind the auth middleware: the handler reads
	// the bearer token itself so expired tokens answer with their own code.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Profile routes. /me requires authentication; the by-ID lookup serves
	// only the public projection and stays open.
	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("/me", r.profileHandler.GetMe, r.authMiddleware.Authenticate)
		profileGroup.PATCH("/me", r.profileHandler.UpdateMe, r.authMiddleware.Authenticate)
		profileGroup.PUT("/me", r.profileHandler.UpdateMe, r.authMiddleware.Authenticate)
		profileGroup.GET("/:id", r.profileHandler.GetByID)
	}

	// Tips routes are public.
	tipsGroup := api.Group("/tips")
	{
		tipsGroup.GET("/daily", r.tipsHandler.Daily)
		tipsGroup.GET("/random", r.tipsHandler.Random)
		tipsGroup.GET("/all", r.tipsHandler.All)
		tipsGroup.GET("/category/:category", r.tipsHandler.ByCategory)
	}
}
