// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medmatch/internal/delivery/http/middleware"
	"medmatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	FileHandler    *handler.FileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	fileHandler    *handler.FileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		fileHandler:    params.FileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes, no authentication required
	accountGroup := api.Group("/accounts")
	{
		accountGroup.POST("/signup", r.accountHandler.Signup)
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/logout", r.accountHandler.Logout)
		accountGroup.POST("/token", r.accountHandler.RefreshAccessToken)
	}

	// User routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.profileHandler.GetMe)
		userGroup.PUT("/me", r.profileHandler.UpdateMe)
	}

	// Profile routes that require authentication
	profileGroup := api.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("/student", r.profileHandler.CreateStudentProfile)
		profileGroup.PUT("/student", r.profileHandler.UpdateStudentProfile)
		profileGroup.POST("/professional", r.profileHandler.CreateProfessionalProfile)
		profileGroup.PUT("/professional", r.profileHandler.UpdateProfessionalProfile)
		profileGroup.GET("/:user_id/qr", r.profileHandler.GetProfileQR)
	}

	// File routes that require authentication
	fileGroup := api.Group("/files")
	fileGroup.Use(r.authMiddleware.Authenticate)
	{
		fileGroup.POST("", r.fileHandler.Upload)
		fileGroup.GET("", r.fileHandler.List)
		fileGroup.GET("/:file_id", r.fileHandler.Download)
		fileGroup.DELETE("/:file_id", r.fileHandler.Delete)
	}
}
