package ai

import "context"

// Role values for ChatMessage.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged entry in a conversation sent to a provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionService is the interface for conversational AI providers.
// Implement this interface to add new providers (OpenAI, Gemini, Ollama, etc.)
type CompletionService interface {
	// Complete sends the full ordered message list and returns the single
	// assistant reply. Errors are returned untouched; callers decide how to
	// surface them. There is no retry or fallback on the chat path.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderAuto   ProviderType = "auto"
)
