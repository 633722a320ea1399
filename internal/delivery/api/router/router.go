// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"townscoffee/internal/delivery/api/middleware"
	"townscoffee/internal/delivery/api/router/handler"
	"townscoffee/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TownHandler      *handler.TownHandler
	CoffeeHandler    *handler.CoffeeHandler
	FavoritesHandler *handler.FavoritesHandler
	FarmerHandler    *handler.FarmerHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	townHandler      *handler.TownHandler
	coffeeHandler    *handler.CoffeeHandler
	favoritesHandler *handler.FavoritesHandler
	farmerHandler    *handler.FarmerHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		townHandler:      params.TownHandler,
		coffeeHandler:    params.CoffeeHandler,
		favoritesHandler: params.FavoritesHandler,
		farmerHandler:    params.FarmerHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
		authGroup.GET("/state", r.authHandler.StreamAuthState, r.authMiddleware.Authenticate)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	// catalog reads are public; a valid token only personalizes isFavorite
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.OptionalAuthenticate)

	townsGroup := apiV1.Group("/towns")
	{
		townsGroup.GET("", r.townHandler.GetTowns)
		townsGroup.GET("/top", r.townHandler.GetTopTowns)
		townsGroup.GET("/:id", r.townHandler.GetTownDetail)
	}

	coffeesGroup := apiV1.Group("/coffees")
	{
		coffeesGroup.GET("", r.coffeeHandler.GetCoffees)
		coffeesGroup.GET("/top", r.coffeeHandler.GetTopRatedCoffees)
		coffeesGroup.GET("/:id", r.coffeeHandler.GetCoffee)
	}

	favoritesGroup := apiV1.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoritesHandler.ListFavorites)
		favoritesGroup.GET("/:coffeeId", r.favoritesHandler.IsFavorite)
		favoritesGroup.PUT("/:coffeeId", r.favoritesHandler.AddFavorite)
		favoritesGroup.DELETE("/:coffeeId", r.favoritesHandler.RemoveFavorite)
		favoritesGroup.POST("/:coffeeId/toggle", r.favoritesHandler.ToggleFavorite)
	}

	// the approved directory is public; profiles and applications are not
	farmersGroup := apiV1.Group("/farmers")
	{
		farmersGroup.GET("", r.farmerHandler.ListFarmers)
		farmersGroup.GET("/top", r.farmerHandler.GetTopRatedFarmers)
		farmersGroup.POST("/applications", r.farmerHandler.SubmitApplication, r.authMiddleware.Authenticate)
		farmersGroup.GET("/:id", r.farmerHandler.GetFarmer, r.authMiddleware.Authenticate)
		farmersGroup.PUT("/:id", r.farmerHandler.UpdateProfile, r.authMiddleware.Authenticate)
		farmersGroup.GET("/:id/status", r.farmerHandler.GetApplicationStatus, r.authMiddleware.Authenticate)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/farmers/pending", r.adminHandler.ListPending)
		adminGroup.POST("/farmers/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/farmers/:id/reject", r.adminHandler.Reject)
	}
}
