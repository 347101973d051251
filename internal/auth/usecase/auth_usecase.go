package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "maum-backend/internal/auth/domain"
	authdto "maum-backend/internal/auth/dto"
	"maum-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials hides which part of the credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authUsecase implements AuthUsecase
type authUsecase struct {
	identity IdentityProvider
	verifier IDTokenVerifier
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(identity IdentityProvider, verifier IDTokenVerifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		identity: identity,
		verifier: verifier,
		config:   cfg,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	result, err := u.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return u.issueToken(ctx, result.IDToken)
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	result, err := u.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		// Firebase error messages (EMAIL_EXISTS, WEAK_PASSWORD, ...) are
		// terse but safe to show.
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return u.issueToken(ctx, result.IDToken)
}

func (u *authUsecase) SendPasswordReset(ctx context.Context, email string) error {
	return u.identity.SendPasswordReset(ctx, email)
}

// issueToken verifies the Firebase ID token and exchanges it for the
// service's own access token carrying email and the admin claim.
func (u *authUsecase) issueToken(ctx context.Context, idToken string) (*authdto.TokenResponse, error) {
	verified, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &authdomain.Identity{
		UID:   verified.UID,
		Email: verified.Email,
		Admin: verified.Admin,
	}

	accessToken, err := u.generateAccessToken(identity)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.config.JWTAccessExpiry.Seconds()),
		User:        identity,
	}, nil
}

func (u *authUsecase) generateAccessToken(identity *authdomain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.UID,
		"email": identity.Email,
		"admin": identity.Admin,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(u.config.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	uid, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	admin, _ := claims["admin"].(bool)
	if email == "" {
		return nil, errors.New("invalid token claims")
	}

	return &authdomain.Identity{UID: uid, Email: email, Admin: admin}, nil
}
