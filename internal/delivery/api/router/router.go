// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/router/handler"
	"forthecos/internal/domain/entity"
	"forthecos/internal/infra/metrics"
	"forthecos/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	StudioHandler     *handler.StudioHandler
	GenerationHandler *handler.GenerationHandler
	OrderHandler      *handler.OrderHandler
	ProfileHandler    *handler.ProfileHandler
	AdminHandler      *handler.AdminHandler
	MediaHandler      *handler.MediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	studioHandler     *handler.StudioHandler
	generationHandler *handler.GenerationHandler
	orderHandler      *handler.OrderHandler
	profileHandler    *handler.ProfileHandler
	adminHandler      *handler.AdminHandler
	mediaHandler      *handler.MediaHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		studioHandler:     params.StudioHandler,
		generationHandler: params.GenerationHandler,
		orderHandler:      params.OrderHandler,
		profileHandler:    params.ProfileHandler,
		adminHandler:      params.AdminHandler,
		mediaHandler:      params.MediaHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.GET(storage.MediaPathPrefix+"*", r.mediaHandler.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Guest-accessible routes: the caller is attached when a token is present.
	optionalAuth := r.authMiddleware.OptionalAuth
	{
		apiV1.GET("/catalog", r.catalogHandler.List)
		apiV1.GET("/feed", r.generationHandler.Feed, optionalAuth)
		apiV1.GET("/generations/:id", r.generationHandler.Get, optionalAuth)
		apiV1.GET("/profiles/:id", r.profileHandler.GetPublic, optionalAuth)
	}

	sessions := apiV1.Group("/studio/sessions")
	sessions.Use(optionalAuth)
	{
		sessions.POST("", r.studioHandler.Start)
		sessions.GET("/:id", r.studioHandler.Get)
		sessions.POST("/:id/navigate", r.studioHandler.Navigate)
		sessions.POST("/:id/back", r.studioHandler.Back)
		sessions.POST("/:id/upload", r.studioHandler.Upload)
		sessions.POST("/:id/category", r.studioHandler.SelectCategory)
		sessions.POST("/:id/subcategory", r.studioHandler.SelectSubcategory)
		sessions.POST("/:id/prompt", r.studioHandler.SetPrompt)
		sessions.POST("/:id/style", r.studioHandler.SetStyle)
		sessions.POST("/:id/process", r.studioHandler.Process)
		sessions.PATCH("/:id/transform", r.studioHandler.UpdateTransform)
		sessions.PATCH("/:id/draft", r.studioHandler.UpdateDraft)
		sessions.POST("/:id/edit/:generationId", r.studioHandler.Edit)
		sessions.POST("/:id/save", r.studioHandler.Save)
		sessions.POST("/:id/checkout", r.studioHandler.Checkout)
		sessions.GET("/:id/render", r.studioHandler.Render)
	}

	generations := apiV1.Group("/generations")
	generations.Use(r.authMiddleware.Authenticate)
	{
		generations.GET("", r.generationHandler.ListMine)
		generations.POST("/:id/visibility", r.generationHandler.ToggleVisibility)
		generations.PUT("/:id/visibility", r.generationHandler.SetVisibility)
		generations.DELETE("/:id", r.generationHandler.Delete)
		generations.POST("/:id/like", r.generationHandler.ToggleLike)
	}

	orders := apiV1.Group("/orders")
	orders.Use(r.authMiddleware.Authenticate)
	{
		orders.GET("", r.orderHandler.ListMine)
		orders.GET("/:id", r.orderHandler.Status)
		orders.POST("/:id/watch", r.orderHandler.Watch)
		orders.DELETE("/:id/watch", r.orderHandler.CancelWatch)
		orders.GET("/:id/qr", r.orderHandler.PaymentQR)
	}

	profile := apiV1.Group("/profile")
	profile.Use(r.authMiddleware.Authenticate)
	{
		profile.GET("", r.profileHandler.Get)
		profile.PUT("", r.profileHandler.Update)
		profile.POST("/avatar", r.profileHandler.UploadAvatar)
	}

	admin := apiV1.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/settings", r.adminHandler.GetSettings)
		admin.PUT("/settings", r.adminHandler.SaveSettings)
		admin.POST("/settings/reload", r.adminHandler.ReloadSettings)
		admin.GET("/api-logs", r.adminHandler.ListAPILogs)
		admin.DELETE("/api-logs", r.adminHandler.ClearAPILogs)
		admin.GET("/orders", r.adminHandler.ListOrders)
		admin.GET("/orders/:id", r.adminHandler.GetOrder)
	}
}
