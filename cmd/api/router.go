package api

import (
	"net/http"

	authDelivery "maum-backend/internal/auth/delivery"
	authUsecase "maum-backend/internal/auth/usecase"
	chatDelivery "maum-backend/internal/chat/delivery"
	chatUsecase "maum-backend/internal/chat/usecase"
	insightDelivery "maum-backend/internal/insight/delivery"
	insightUsecase "maum-backend/internal/insight/usecase"
	"maum-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, chatUc chatUsecase.ChatUsecase, insightUc insightUsecase.InsightUsecase, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, chatUc)
	chatHandler := chatDelivery.NewChatHandler(chatUc, cfg.HistoryLimit)
	insightHandler := insightDelivery.NewInsightHandler(insightUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
			auth.POST("/logout", authDelivery.AuthMiddleware(authUc), authHandler.Logout)
		}

		// Chat routes (protected)
		chat := api.Group("/chat")
		chat.Use(authDelivery.AuthMiddleware(authUc))
		{
			chat.POST("", chatHandler.Send)
			chat.GET("/history", chatHandler.History)
		}

		// Admin routes (protected + admin claim)
		admin := api.Group("/admin")
		admin.Use(authDelivery.AuthMiddleware(authUc), authDelivery.AdminMiddleware())
		{
			admin.GET("/stats", insightHandler.Stats)
		}
	}
}
