package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/handler"
	"github.com/sozhane/backend/internal/middleware"
	"github.com/sozhane/backend/internal/repository"
)

func Setup(
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	templateHandler *handler.TemplateHandler,
	contractHandler *handler.ContractHandler,
	generateHandler *handler.GenerateHandler,
	paymentHandler *handler.PaymentHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/templates", templateHandler.List)
		api.GET("/templates/:id", templateHandler.Get)

		// Stripe calls this, so it stays outside the auth group. The
		// signature check inside the handler is the authentication.
		api.POST("/payments/webhook", paymentHandler.Webhook)

		authed := api.Group("", middleware.AuthMiddleware(&cfg.Auth, userRepo))
		{
			authed.GET("/auth/me", authHandler.Me)

			authed.GET("/contracts", contractHandler.List)
			authed.POST("/contracts", contractHandler.Create)
			authed.GET("/contracts/:id", contractHandler.Get)

			authed.POST("/ai/generate", generateHandler.Generate)

			authed.POST("/payments", paymentHandler.Checkout)
			authed.GET("/payments", paymentHandler.History)
		}
	}

	return r
}
