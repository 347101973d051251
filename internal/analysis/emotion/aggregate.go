package emotion

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"maum-backend/internal/chat/domain"
)

// TokenCount is one entry of the token frequency ranking.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// DailyCount is the number of records created on one UTC calendar date.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Histogram classifies every record's user input and counts occurrences per
// category. Output order carries no meaning; consumers sort as needed.
func (c *Classifier) Histogram(records []domain.EmotionRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[c.Classify(r.UserInput)]++
	}
	return counts
}

// TopTokens splits every user input on whitespace, drops tokens of one rune
// or less, and returns the n most frequent. Ties keep first-encountered
// order, so the ranking is deterministic for a given record order.
func TopTokens(records []domain.EmotionRecord, n int) []TokenCount {
	counts := make(map[string]int)
	var order []string

	for _, r := range records {
		for _, tok := range strings.Fields(r.UserInput) {
			if utf8.RuneCountInString(tok) <= 1 {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]TokenCount, 0, n)
	for _, tok := range order[:n] {
		top = append(top, TokenCount{Token: tok, Count: counts[tok]})
	}
	return top
}

// DailyVolume groups records by the UTC calendar date of their timestamp and
// returns per-date counts sorted ascending by date.
func DailyVolume(records []domain.EmotionRecord) []DailyCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Timestamp.UTC().Format(time.DateOnly)]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	volume := make([]DailyCount, 0, len(dates))
	for _, d := range dates {
		volume = append(volume, DailyCount{Date: d, Count: counts[d]})
	}
	return volume
}
