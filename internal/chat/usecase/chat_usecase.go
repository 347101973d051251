package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maum-backend/internal/analysis/emotion"
	"maum-backend/internal/chat/domain"
	"maum-backend/internal/chat/dto"
	"maum-backend/internal/chat/repository"
	"maum-backend/internal/chat/session"
	"maum-backend/pkg/ai"
)

// systemPrompt frames the assistant as a warm emotional counselor.
const systemPrompt = "당신은 섬세하고 따뜻한 감정 상담가입니다."

var (
	// ErrEmptyMessage rejects blank input before any external call is made.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrProvider marks a failed completion request.
	ErrProvider = errors.New("completion provider failed")
	// ErrPersistence marks a failed store write or read.
	ErrPersistence = errors.New("record store failed")
)

// chatUsecase implements ChatUsecase
type chatUsecase struct {
	records    repository.RecordRepository
	sessions   *session.Store
	completion ai.CompletionService
	classifier *emotion.Classifier
}

// NewChatUsecase creates a new instance of chatUsecase
func NewChatUsecase(records repository.RecordRepository, sessions *session.Store, completion ai.CompletionService, classifier *emotion.Classifier) ChatUsecase {
	return &chatUsecase{
		records:    records,
		sessions:   sessions,
		completion: completion,
		classifier: classifier,
	}
}

func (u *chatUsecase) Send(ctx context.Context, email, message string) (*dto.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	messages := u.sessions.Messages(email, systemPrompt, message)

	reply, err := u.completion.Complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	reply = strings.TrimSpace(reply)

	record := &domain.EmotionRecord{
		Email:     email,
		UserInput: message,
		GptReply:  reply,
	}
	// Persist before the reply is surfaced. If the write fails the turn is
	// dropped entirely: the caller sees an error and the session history
	// stays consistent with durable storage.
	if err := u.records.Create(record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	u.sessions.Append(email, message, reply)

	return &dto.ChatResponse{Reply: reply, Record: record}, nil
}

func (u *chatUsecase) History(email string, limit int) (*dto.HistoryResponse, error) {
	records, err := u.records.FindByEmail(email, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &dto.HistoryResponse{
		Records:    records,
		Categories: u.classifier.Histogram(records),
	}, nil
}

func (u *chatUsecase) EndSession(email string) {
	u.sessions.Clear(email)
}
