package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jeremi16/synify-be/config"
)

// AIService calls a chat-completion style API used for metadata cleanup.
// Responses are free text expected to contain one JSON object; extraction is
// the caller's concern.
type AIService struct {
	APIURL string
	APIKey string
	Model  string

	httpClient *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func InitAIService(cfg *config.EnvConfig) *AIService {
	return &AIService{
		APIURL:     cfg.AI.APIURL,
		APIKey:     cfg.AI.APIKey,
		Model:      cfg.AI.Model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an AI cleanup credential is configured.
func (s *AIService) Enabled() bool {
	return s.APIURL != "" && s.APIKey != ""
}

// Complete sends a message list and returns the raw completion content.
func (s *AIService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       s.Model,
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API returned %d: %s", resp.StatusCode, raw)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
