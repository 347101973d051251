package delivery

import (
	"errors"
	"net/http"

	authdto "maum-backend/internal/auth/dto"
	"maum-backend/internal/auth/usecase"
	chatUsecase "maum-backend/internal/chat/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	chatUsecase chatUsecase.ChatUsecase
}

// NewAuthHandler creates a new AuthHandler. The chat usecase is needed so
// logout can drop the caller's in-memory session.
func NewAuthHandler(authUc usecase.AuthUsecase, chatUc chatUsecase.ChatUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUc,
		chatUsecase: chatUc,
	}
}

// Login authenticates against Firebase and returns an access token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register creates a Firebase account and returns an access token
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Covers the minimum password length check as well.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ResetPassword asks Firebase to send a password-reset email
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset email sent"})
}

// Me returns the authenticated identity
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email": c.GetString("email"),
		"admin": c.GetBool("isAdmin"),
	})
}

// Logout clears the caller's in-memory conversation session. Access tokens
// are short-lived and simply expire; there is no server-side revocation.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.chatUsecase.EndSession(c.GetString("email"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
