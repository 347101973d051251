package repository

import (
	"time"

	"maum-backend/internal/chat/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRecordRepository implements RecordRepository using GORM
type gormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new GORM-based RecordRepository
func NewGormRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

func (r *gormRecordRepository) Create(record *domain.EmotionRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	return r.db.Create(record).Error
}

func (r *gormRecordRepository) FindByEmail(email string, limit int) ([]domain.EmotionRecord, error) {
	var records []domain.EmotionRecord
	err := r.db.Where("email = ?", email).
		Order("timestamp DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *gormRecordRepository) FindAll() ([]domain.EmotionRecord, error) {
	var records []domain.EmotionRecord
	err := r.db.Order("timestamp DESC").Find(&records).Error
	return records, err
}
