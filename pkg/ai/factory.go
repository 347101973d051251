package ai

import "fmt"

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "gemini" or "auto"

	// OpenAI config
	OpenAIAPIKey string
	OpenAIModel  string // e.g., "gpt-4o"

	// Gemini config
	GeminiAPIKey string
}

// NewCompletionService creates a CompletionService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewCompletionService(cfg Config) (CompletionService, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	default:
		// Default to OpenAI if its key is available, otherwise Gemini
		if cfg.OpenAIAPIKey != "" {
			return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
		}
		if cfg.GeminiAPIKey != "" {
			return NewGeminiService(cfg.GeminiAPIKey), nil
		}
		return nil, fmt.Errorf("no AI provider API key configured")
	}
}
