package dto

import authdomain "maum-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TokenResponse struct {
	AccessToken string               `json:"access_token"`
	ExpiresIn   int64                `json:"expires_in"` // seconds
	User        *authdomain.Identity `json:"user"`
}
