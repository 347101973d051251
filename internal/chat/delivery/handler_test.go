package delivery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"maum-backend/internal/chat/delivery"
	"maum-backend/internal/chat/dto"
	"maum-backend/internal/chat/usecase"
)

type stubChatUsecase struct {
	sendErr     error
	gotLimit    int
	historyResp *dto.HistoryResponse
}

func (s *stubChatUsecase) Send(_ context.Context, email, message string) (*dto.ChatResponse, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return &dto.ChatResponse{Reply: "ok"}, nil
}

func (s *stubChatUsecase) History(email string, limit int) (*dto.HistoryResponse, error) {
	s.gotLimit = limit
	if s.historyResp != nil {
		return s.historyResp, nil
	}
	return &dto.HistoryResponse{Categories: map[string]int{}}, nil
}

func (s *stubChatUsecase) EndSession(email string) {}

func setupRouter(uc usecase.ChatUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := delivery.NewChatHandler(uc, 100)
	r.POST("/chat", h.Send)
	r.GET("/chat/history", h.History)
	return r
}

func TestSendMissingMessageRejected(t *testing.T) {
	r := setupRouter(&stubChatUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestSendBlankMessageMapsTo400(t *testing.T) {
	r := setupRouter(&stubChatUsecase{sendErr: usecase.ErrEmptyMessage})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestSendProviderErrorMapsTo502(t *testing.T) {
	r := setupRouter(&stubChatUsecase{sendErr: usecase.ErrProvider})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"힘들어요"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestSendPersistenceErrorMapsTo500(t *testing.T) {
	r := setupRouter(&stubChatUsecase{sendErr: usecase.ErrPersistence})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"힘들어요"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	stub := &stubChatUsecase{}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/chat/history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if stub.gotLimit != 100 {
		t.Fatalf("unexpected limit: %d", stub.gotLimit)
	}
}

func TestHistoryBadLimitFallsBack(t *testing.T) {
	stub := &stubChatUsecase{}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/chat/history?limit=-5", nil)
	r.ServeHTTP(w, req)

	if stub.gotLimit != 100 {
		t.Fatalf("unexpected limit: %d", stub.gotLimit)
	}
}
