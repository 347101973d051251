package usecase

import (
	"context"

	"maum-backend/internal/chat/dto"
)

// ChatUsecase orchestrates one user interaction: replaying session history to
// the completion provider and persisting the exchange.
type ChatUsecase interface {
	// Send handles one utterance. On success the exchange is durably stored
	// and appended to the in-memory session. On any failure the session and
	// the store are left untouched.
	Send(ctx context.Context, email, message string) (*dto.ChatResponse, error)

	// History returns the user's records (newest first, up to limit) with a
	// per-category histogram.
	History(email string, limit int) (*dto.HistoryResponse, error)

	// EndSession drops the user's in-memory conversation state.
	EndSession(email string)
}
