package usecase

import (
	"fmt"
	"sort"

	"maum-backend/internal/analysis/emotion"
	"maum-backend/internal/chat/domain"
	"maum-backend/internal/chat/dto"
	"maum-backend/internal/chat/repository"
)

const (
	topTokenCount = 10
	sampleCount   = 5
)

// insightUsecase implements InsightUsecase
type insightUsecase struct {
	records repository.RecordRepository
}

// NewInsightUsecase creates a new instance of insightUsecase
func NewInsightUsecase(records repository.RecordRepository) InsightUsecase {
	return &insightUsecase{records: records}
}

func (u *insightUsecase) Overview(filterEmail string) (*dto.StatsResponse, error) {
	records, err := u.records.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	emails := distinctEmails(records)

	if filterEmail != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Email == filterEmail {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	samples := records
	if len(samples) > sampleCount {
		samples = samples[:sampleCount]
	}

	return &dto.StatsResponse{
		Total:       len(records),
		Emails:      emails,
		Samples:     samples,
		TopTokens:   emotion.TopTokens(records, topTokenCount),
		DailyVolume: emotion.DailyVolume(records),
	}, nil
}

func distinctEmails(records []domain.EmotionRecord) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, r := range records {
		if !seen[r.Email] {
			seen[r.Email] = true
			emails = append(emails, r.Email)
		}
	}
	sort.Strings(emails)
	return emails
}
