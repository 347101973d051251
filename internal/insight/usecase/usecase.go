package usecase

import "maum-backend/internal/chat/dto"

// InsightUsecase derives cross-user statistics. Privileged: every method
// assumes the admin gate was already enforced by the delivery layer.
type InsightUsecase interface {
	// Overview aggregates all records, optionally narrowed to one user.
	Overview(filterEmail string) (*dto.StatsResponse, error)
}
