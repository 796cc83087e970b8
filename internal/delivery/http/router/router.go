// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tontine/internal/delivery/http/middleware"
	"tontine/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	PasswordHandler   *handler.PasswordHandler
	TontineHandler    *handler.TontineHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	passwordHandler   *handler.PasswordHandler
	tontineHandler    *handler.TontineHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		passwordHandler:   params.PasswordHandler,
		tontineHandler:    params.TontineHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Password forms live as long as the screen that mounted them
	formsGroup := e.Group("/password/forms")
	formsGroup.Use(r.sessionMiddleware.RequireSession)
	{
		formsGroup.POST("", r.passwordHandler.OpenForm)
		formsGroup.GET("/:id", r.passwordHandler.GetForm)
		formsGroup.PUT("/:id/fields/:field", r.passwordHandler.EditField)
		formsGroup.POST("/:id/fields/:field/blur", r.passwordHandler.BlurField)
		formsGroup.POST("/:id/submit", r.passwordHandler.Submit)
		formsGroup.POST("/:id/acknowledge", r.passwordHandler.Acknowledge)
		formsGroup.DELETE("/:id", r.passwordHandler.CloseForm)
	}

	tontinesGroup := e.Group("/tontines")
	tontinesGroup.Use(r.sessionMiddleware.RequireSession)
	{
		tontinesGroup.GET("", r.tontineHandler.ListTontines)
		tontinesGroup.GET("/:id", r.tontineHandler.GetTontine)
		tontinesGroup.GET("/:id/tirages", r.tontineHandler.ListTirages)
		tontinesGroup.GET("/:id/qrcode", r.tontineHandler.GetInvitationQR)
	}
}
