package domain

import "time"

// EmotionRecord is one persisted exchange: the user's utterance and the
// assistant's reply. Records are append-only; nothing in the service updates
// or deletes them.
type EmotionRecord struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index;not null"`
	UserInput string    `json:"user_input" gorm:"type:text"`
	GptReply  string    `json:"gpt_reply" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName keeps the original table layout.
func (EmotionRecord) TableName() string {
	return "emotion_history"
}

// Turn is one (user message, assistant reply) pair held in session memory.
// Turns only exist for the lifetime of a login; their fields are persisted
// as part of EmotionRecord, never the pair itself.
type Turn struct {
	User      string
	Assistant string
}
