// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cards/config"
	"cards/internal/delivery/api/middleware"
	"cards/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CardHandler    *handler.CardHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cardHandler    *handler.CardHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cardHandler:    params.CardHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate runs on every route so a bad token fails even on public ones.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login, middleware.NewRateLimiter(r.config.Auth.LoginRateLimit))
		usersGroup.GET("/me", r.userHandler.WhoAmI, r.authMiddleware.RequireIdentity)
		usersGroup.GET("/:userId/profile", r.userHandler.GetProfile, r.authMiddleware.RequireIdentity)
	}

	cardsGroup := e.Group("/cards")
	cardsGroup.Use(r.authMiddleware.RequireIdentity)
	{
		cardsGroup.GET("/all", r.cardHandler.ListAllCards)
		cardsGroup.GET("/:userId/all", r.cardHandler.ListUserCards)
		cardsGroup.GET("/:userId/filter", r.cardHandler.FilterUserCards)
		cardsGroup.POST("", r.cardHandler.CreateCard)
		cardsGroup.POST("/create", r.cardHandler.CreateCard)
		cardsGroup.GET("/:cardId", r.cardHandler.GetCard)
		cardsGroup.PUT("/:cardId", r.cardHandler.UpdateCard)
		cardsGroup.DELETE("/:cardId", r.cardHandler.DeleteCard)
	}
}
