package dto

import (
	"maum-backend/internal/analysis/emotion"
	"maum-backend/internal/chat/domain"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply  string                `json:"reply"`
	Record *domain.EmotionRecord `json:"record"`
}

type HistoryResponse struct {
	Records    []domain.EmotionRecord `json:"records"`
	Categories map[string]int         `json:"categories"`
}

// StatsResponse is the privileged cross-user overview.
type StatsResponse struct {
	Total       int                    `json:"total"`
	Emails      []string               `json:"emails"`
	Samples     []domain.EmotionRecord `json:"samples"`
	TopTokens   []emotion.TokenCount   `json:"top_tokens"`
	DailyVolume []emotion.DailyCount   `json:"daily_volume"`
}
