package usecase

import (
	"context"

	authdomain "maum-backend/internal/auth/domain"
	authdto "maum-backend/internal/auth/dto"
	"maum-backend/pkg/firebase"
)

// AuthUsecase delegates credential handling to Firebase and issues the
// service's own short-lived access tokens.
type AuthUsecase interface {
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	SendPasswordReset(ctx context.Context, email string) error
	ValidateToken(tokenString string) (*authdomain.Identity, error)
}

// IdentityProvider is the slice of the Firebase Identity Toolkit client the
// usecase needs. Satisfied by *firebase.IdentityClient.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*firebase.SignInResult, error)
	SignUp(ctx context.Context, email, password string) (*firebase.SignInResult, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// IDTokenVerifier validates Firebase ID tokens. Satisfied by
// *firebase.TokenVerifier.
type IDTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*firebase.Identity, error)
}
