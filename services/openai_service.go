package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openaiChatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	openaiModel              = "gpt-4o-mini"
)

// OpenAIService calls the chat-completions API with forced JSON output and
// vision content supplied as an inline data URI.
type OpenAIService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		apiKey:  apiKey,
		baseURL: openaiChatCompletionsURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openaiRequest struct {
	Model          string               `json:"model"`
	ResponseFormat openaiResponseFormat `json:"response_format"`
	Messages       []openaiMessage      `json:"messages"`
}

type openaiResponseFormat struct {
	Type string `json:"type"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *OpenAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var userContent any = req.User
	if req.Image != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s", req.Image.MimeType, req.Image.Base64)
		userContent = []map[string]any{
			{"type": "text", "text": req.User},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	}
	payload := openaiRequest{
		Model:          openaiModel,
		ResponseFormat: openaiResponseFormat{Type: "json_object"},
		Messages: []openaiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: userContent},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal openai payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create openai request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai request failed (%v): %w", err, ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read openai response (%v): %w", err, ErrProviderUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", providerStatusError("openai", resp.StatusCode, respBody)
	}

	var parsed openaiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode openai response (%v): %w", err, ErrProviderUnavailable)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "{}", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
