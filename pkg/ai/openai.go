package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Fixed sampling temperature for every chat completion request.
const chatTemperature = 0.7

// OpenAIService implements CompletionService using the OpenAI chat API
type OpenAIService struct {
	apiKey  string
	model   string
	baseURL string
}

// NewOpenAIService creates a new OpenAI service
func NewOpenAIService(apiKey, model string) *OpenAIService {
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.openai.com/v1",
	}
}

// NewOpenAIServiceWithBaseURL creates an OpenAI service against a custom
// endpoint. Used by tests and OpenAI-compatible gateways.
func NewOpenAIServiceWithBaseURL(apiKey, model, baseURL string) *OpenAIService {
	svc := NewOpenAIService(apiKey, model)
	svc.baseURL = baseURL
	return svc
}

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete implements CompletionService
func (s *OpenAIService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	url := s.baseURL + "/chat/completions"

	payload := openAIRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: chatTemperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result openAIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	return result.Choices[0].Message.Content, nil
}
