package delivery_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"maum-backend/internal/auth/delivery"
	authdomain "maum-backend/internal/auth/domain"
	authdto "maum-backend/internal/auth/dto"
	"maum-backend/internal/auth/usecase"
)

type stubAuthUsecase struct {
	identity *authdomain.Identity
}

func (s *stubAuthUsecase) Login(context.Context, *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthUsecase) Register(context.Context, *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthUsecase) SendPasswordReset(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubAuthUsecase) ValidateToken(token string) (*authdomain.Identity, error) {
	if token == "good" && s.identity != nil {
		return s.identity, nil
	}
	return nil, errors.New("invalid or expired token")
}

func setupRouter(auth usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", delivery.AuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	r.GET("/admin", delivery.AuthMiddleware(auth), delivery.AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := setupRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	r := setupRouter(&stubAuthUsecase{identity: &authdomain.Identity{Email: "a@b.c"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
	}
}

func TestAdminMiddlewareForbidsNonAdmin(t *testing.T) {
	r := setupRouter(&stubAuthUsecase{identity: &authdomain.Identity{Email: "a@b.c", Admin: false}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := setupRouter(&stubAuthUsecase{identity: &authdomain.Identity{Email: "ops@b.c", Admin: true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}
