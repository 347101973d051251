package api

import (
	"net/http"

	authUsecase "maum-backend/internal/auth/usecase"
	chatUsecase "maum-backend/internal/chat/usecase"
	insightUsecase "maum-backend/internal/insight/usecase"
	"maum-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	chatUsecase    chatUsecase.ChatUsecase
	insightUsecase insightUsecase.InsightUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, chatUc chatUsecase.ChatUsecase, insightUc insightUsecase.InsightUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		chatUsecase:    chatUc,
		insightUsecase: insightUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.chatUsecase, h.insightUsecase, h.config)

	return r.Run(addr)
}
