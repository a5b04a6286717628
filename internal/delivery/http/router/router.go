// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rxconsole/internal/delivery/http/middleware"
	"rxconsole/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ResourceHandler     *handler.ResourceHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	resourceHandler     *handler.ResourceHandler
	notificationHandler *handler.NotificationHandler
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		resourceHandler:     params.ResourceHandler,
		notificationHandler: params.NotificationHandler,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo, withMetrics bool) {
	e.GET("/health", handler.HealthCheck)
	if withMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.PUT("", r.sessionHandler.SignIn)
		sessionGroup.DELETE("", r.sessionHandler.SignOut)
		sessionGroup.GET("", r.sessionHandler.Current)
	}

	// Everything below talks to the backend and needs a live session
	resourceGroup := e.Group("/resources", r.sessionMiddleware.RequireSession)
	{
		resourceGroup.GET("", r.resourceHandler.List)
		resourceGroup.GET("/:resource", r.resourceHandler.Get)
		resourceGroup.POST("/:resource/retry", r.resourceHandler.Retry)
		resourceGroup.PUT("/:resource/filter", r.resourceHandler.SetFilter)
		resourceGroup.POST("/:resource/dialogs", r.resourceHandler.OpenDialog)
		resourceGroup.DELETE("/:resource/dialogs/:token", r.resourceHandler.CloseDialog)
		resourceGroup.POST("/:resource/dialogs/:token/submit", r.resourceHandler.Submit)
		resourceGroup.POST("/:resource/dialogs/:token/delete", r.resourceHandler.ConfirmDelete)
		resourceGroup.GET("/:resource/export", r.resourceHandler.Export)
	}

	notificationGroup := e.Group("/notifications", r.sessionMiddleware.RequireSession)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/badge", r.notificationHandler.Badge)
		notificationGroup.PUT("/filter", r.notificationHandler.SetFilter)
		notificationGroup.POST("/read", r.notificationHandler.MarkRead)
		notificationGroup.POST("/unread", r.notificationHandler.MarkUnread)
		notificationGroup.POST("/deletions", r.notificationHandler.RequestDelete)
		notificationGroup.POST("/deletions/:token/confirm", r.notificationHandler.ConfirmDelete)
		notificationGroup.DELETE("/deletions/:token", r.notificationHandler.CancelDelete)
		notificationGroup.POST("/selection/toggle", r.notificationHandler.Toggle)
		notificationGroup.POST("/selection/all", r.notificationHandler.SelectAll)
		notificationGroup.DELETE("/selection", r.notificationHandler.ClearSelection)
		notificationGroup.GET("/:id", r.notificationHandler.Open)
	}
}
