// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"equilog-server/commons"
	"equilog-server/handlers"
	"equilog-server/middlewares"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/signup", handlers.SignupHandler)
	api_v1.POST("/auth/login", handlers.LoginHandler)
	api_v1.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/users/", handlers.GetUserHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/entitlements/documents", handlers.CheckDocumentLimitHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/entitlements/horses", handlers.CheckHorseLimitHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/entitlements/analyses", handlers.CheckAnalysisLimitHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/subscriptions/status", handlers.SubscriptionStatusHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/coupons/validate", handlers.ValidateCouponHandler)
	api_v1.POST("/horses", handlers.CreateHorseHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/documents", handlers.CreateDocumentHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/analyses", handlers.SubmitAnalysisHandler, middlewares.VerifyAuthMiddleware())
	api_v1.GET("/plans", handlers.GetPlansHandler)
	api_v1.POST("/admin/users/profile", handlers.UpdateUserProfileHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/admin/users/roles", handlers.GrantRoleHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/billing/checkout", handlers.CreateCheckoutSessionHandler, middlewares.VerifyAuthMiddleware())
	api_v1.POST("/billing/webhook", handlers.StripeWebhookHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	commons.Logger.Info("v1 routes registered successfully")
}
