package emotion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emotion "maum-backend/internal/analysis/emotion"
	"maum-backend/internal/chat/domain"
)

func record(input string, ts time.Time) domain.EmotionRecord {
	return domain.EmotionRecord{UserInput: input, Timestamp: ts}
}

func TestHistogram(t *testing.T) {
	c := emotion.NewDefaultClassifier()

	records := []domain.EmotionRecord{
		record("너무 지치고 힘들어요", time.Now()),
		record("요즘 무기력해요", time.Now()),
		record("오늘 날씨 이야기", time.Now()),
		record("계속 긴장돼요", time.Now()),
	}

	got := c.Histogram(records)
	assert.Equal(t, 2, got["스트레스"])
	assert.Equal(t, 1, got["우울"])
	assert.Equal(t, 1, got[emotion.CatchAll])
}

func TestTopTokensCountsAndTieOrder(t *testing.T) {
	records := []domain.EmotionRecord{
		record("나는 힘들다 힘들다", time.Now()),
		record("나는 지친다", time.Now()),
	}

	got := emotion.TopTokens(records, 10)
	require.Len(t, got, 3)

	// "나는" and "힘들다" tie at 2; first-encountered order breaks the tie.
	assert.Equal(t, emotion.TokenCount{Token: "나는", Count: 2}, got[0])
	assert.Equal(t, emotion.TokenCount{Token: "힘들다", Count: 2}, got[1])
	assert.Equal(t, emotion.TokenCount{Token: "지친다", Count: 1}, got[2])
}

func TestTopTokensDropsShortTokens(t *testing.T) {
	records := []domain.EmotionRecord{record("a 나 힘들다 b", time.Now())}

	got := emotion.TopTokens(records, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "힘들다", got[0].Token)
}

func TestTopTokensLimit(t *testing.T) {
	records := []domain.EmotionRecord{record("하나 둘은 셋은 넷은", time.Now())}

	got := emotion.TopTokens(records, 2)
	assert.Len(t, got, 2)
}

func TestDailyVolumeSortedAscending(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)

	records := []domain.EmotionRecord{
		record("a1", day2),
		record("a2", day1),
		record("a3", day1),
	}

	got := emotion.DailyVolume(records)
	require.Len(t, got, 2)
	assert.Equal(t, emotion.DailyCount{Date: "2024-01-01", Count: 2}, got[0])
	assert.Equal(t, emotion.DailyCount{Date: "2024-01-02", Count: 1}, got[1])
}

func TestDailyVolumeUsesUTCDate(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	// 2024-01-02 01:00 KST is still 2024-01-01 in UTC.
	records := []domain.EmotionRecord{
		record("a", time.Date(2024, 1, 2, 1, 0, 0, 0, kst)),
	}

	got := emotion.DailyVolume(records)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date)
}
