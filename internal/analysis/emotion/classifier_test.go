package emotion_test

import (
	"testing"

	emotion "maum-backend/internal/analysis/emotion"
)

func TestClassifyMatchesKeyword(t *testing.T) {
	c := emotion.NewDefaultClassifier()

	got := c.Classify("너무 지치고 힘들어요")
	if got != "스트레스" {
		t.Fatalf("unexpected category: got %s want 스트레스", got)
	}
}

func TestClassifyFirstMatchInTableOrder(t *testing.T) {
	c := emotion.NewDefaultClassifier()

	// "힘들" belongs to 우울 and "불안" to 스트레스; the earlier table entry wins.
	if got := c.Classify("불안하고 힘들다"); got != "스트레스" {
		t.Fatalf("unexpected category: got %s want 스트레스", got)
	}

	// Only a 우울 keyword present.
	if got := c.Classify("요즘 너무 힘들어"); got != "우울" {
		t.Fatalf("unexpected category: got %s want 우울", got)
	}
}

func TestClassifyFallsThroughToCatchAll(t *testing.T) {
	c := emotion.NewDefaultClassifier()

	cases := []string{"", "오늘 날씨가 맑다", "hello world"}
	for _, text := range cases {
		if got := c.Classify(text); got != emotion.CatchAll {
			t.Fatalf("Classify(%q) = %s, want %s", text, got, emotion.CatchAll)
		}
	}
}

func TestClassifyIsCaseSensitive(t *testing.T) {
	c := emotion.NewClassifier([]emotion.Category{{Name: "en", Keywords: []string{"sad"}}})

	if got := c.Classify("SAD"); got != emotion.CatchAll {
		t.Fatalf("matching should be case-sensitive, got %s", got)
	}
	if got := c.Classify("so sad today"); got != "en" {
		t.Fatalf("unexpected category: got %s want en", got)
	}
}

func TestClassifyEmptyTable(t *testing.T) {
	c := emotion.NewClassifier(nil)
	if got := c.Classify("무기력"); got != emotion.CatchAll {
		t.Fatalf("empty table should classify everything as catch-all, got %s", got)
	}
}
