package session

import (
	"sync"

	"maum-backend/internal/chat/domain"
	"maum-backend/pkg/ai"
)

// Store holds every logged-in user's transient conversation turns. State
// lives only in process memory: it is created lazily on first use after
// login, cleared at logout, and gone after a restart. The durable copy of
// each exchange is the emotion_history table, not this store.
type Store struct {
	mu       sync.RWMutex
	turns    map[string][]domain.Turn
	maxTurns int
}

// NewStore bootstraps the in-memory session store. maxTurns bounds how many
// of the most recent turns are replayed to the completion provider; turns
// beyond the window stay in memory but are not sent.
func NewStore(maxTurns int) *Store {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &Store{
		turns:    make(map[string][]domain.Turn),
		maxTurns: maxTurns,
	}
}

// Append adds one completed turn to the end of the user's history.
func (s *Store) Append(email, userMessage, assistantReply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[email] = append(s.turns[email], domain.Turn{User: userMessage, Assistant: assistantReply})
}

// Turns returns a copy of the user's stored turns in order.
func (s *Store) Turns(email string) []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := s.turns[email]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}

// Clear drops the user's session history. Called at logout.
func (s *Store) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, email)
}

// Messages serializes the user's windowed history into the role-tagged list
// sent to the provider: one system entry, then user/assistant pairs in
// original order, then the new user message last.
func (s *Store) Messages(email, systemPrompt, newUserMessage string) []ai.ChatMessage {
	s.mu.RLock()
	turns := s.turns[email]
	if len(turns) > s.maxTurns {
		turns = turns[len(turns)-s.maxTurns:]
	}
	messages := make([]ai.ChatMessage, 0, 2*len(turns)+2)
	messages = append(messages, ai.ChatMessage{Role: ai.RoleSystem, Content: systemPrompt})
	for _, turn := range turns {
		messages = append(messages, ai.ChatMessage{Role: ai.RoleUser, Content: turn.User})
		messages = append(messages, ai.ChatMessage{Role: ai.RoleAssistant, Content: turn.Assistant})
	}
	s.mu.RUnlock()

	return append(messages, ai.ChatMessage{Role: ai.RoleUser, Content: newUserMessage})
}
