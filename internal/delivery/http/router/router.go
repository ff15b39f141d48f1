// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ContentHandler *handler.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	contentHandler *handler.ContentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		contentHandler: params.ContentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Credential routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Content routes that require authentication
	contentGroup := e.Group("/content")
	contentGroup.Use(r.authMiddleware.Authenticate)
	{
		contentGroup.GET("", r.contentHandler.ListContent)
		contentGroup.POST("", r.contentHandler.CreateContent)
		contentGroup.GET("/:id", r.contentHandler.GetContent)
		contentGroup.PUT("/:id", r.contentHandler.UpdateContent)
		contentGroup.DELETE("/:id", r.contentHandler.DeleteContent)
	}
}
