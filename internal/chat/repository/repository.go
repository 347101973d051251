package repository

import "maum-backend/internal/chat/domain"

// RecordRepository defines the append-only data access contract for
// emotion records.
type RecordRepository interface {
	// Create persists one record. The caller must not assume the record was
	// saved unless the call returns nil.
	Create(record *domain.EmotionRecord) error

	// FindByEmail returns up to limit records for the user, newest first.
	FindByEmail(email string, limit int) ([]domain.EmotionRecord, error)

	// FindAll returns every record across all users, newest first.
	// Privileged: callers must enforce the admin gate.
	FindAll() ([]domain.EmotionRecord, error)
}
