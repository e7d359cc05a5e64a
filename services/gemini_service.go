package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	geminiBaseURL       = "https://generativelanguage.googleapis.com/v1beta"
	geminiFallbackModel = "gemini-1.5-pro"
	geminiModelCacheTTL = 5 * time.Minute
)

// Preference order when resolving the model from the list endpoint.
var geminiPreferredModels = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-1.0-pro"}

// Single global value; concurrent refreshes converge to the same model, so a
// redundant list call is acceptable.
var geminiModelCache = struct {
	mu        sync.Mutex
	value     string
	expiresAt time.Time
}{}

// GeminiService calls generateContent with inlineData image parts and a JSON
// response MIME type. The model name is resolved dynamically unless pinned
// via GEMINI_MODEL.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiModelList struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

// resolveModel picks the model name: pinned config first, then the cached
// value, then the list endpoint. A failed list response falls back to a
// known model without caching, so the next call retries the lookup.
func (s *GeminiService) resolveModel(ctx context.Context) (string, error) {
	if configured := os.Getenv("GEMINI_MODEL"); configured != "" {
		return configured, nil
	}

	now := time.Now()
	geminiModelCache.mu.Lock()
	if geminiModelCache.value != "" && geminiModelCache.expiresAt.After(now) {
		cached := geminiModelCache.value
		geminiModelCache.mu.Unlock()
		return cached, nil
	}
	geminiModelCache.mu.Unlock()

	listURL := fmt.Sprintf("%s/models?key=%s", s.baseURL, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create gemini model-list request: %w", err)
	}
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini model-list request failed (%v): %w", err, ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geminiFallbackModel, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return geminiFallbackModel, nil
	}
	var list geminiModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return geminiFallbackModel, nil
	}

	available := make(map[string]bool)
	firstAvailable := ""
	for _, model := range list.Models {
		supported := false
		for _, method := range model.SupportedGenerationMethods {
			if method == "generateContent" {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}
		available[model.Name] = true
		if firstAvailable == "" {
			firstAvailable = strings.TrimPrefix(model.Name, "models/")
		}
	}

	selected := ""
	for _, name := range geminiPreferredModels {
		if available["models/"+name] {
			selected = name
			break
		}
	}
	if selected == "" {
		selected = firstAvailable
	}
	if selected == "" {
		selected = geminiFallbackModel
	}

	geminiModelCache.mu.Lock()
	geminiModelCache.value = selected
	geminiModelCache.expiresAt = now.Add(geminiModelCacheTTL)
	geminiModelCache.mu.Unlock()
	return selected, nil
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model, err := s.resolveModel(ctx)
	if err != nil {
		return "", err
	}

	// Gemini takes a single user turn; the system instruction rides in the
	// same text part.
	prompt := req.System
	if req.User != "" {
		if prompt != "" {
			prompt += "\n"
		}
		prompt += req.User
	}
	parts := []geminiPart{{Text: prompt}}
	if req.Image != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: req.Image.MimeType,
			Data:     req.Image.Base64,
		}})
	}
	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, model, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed (%v): %w", err, ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response (%v): %w", err, ErrProviderUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", providerStatusError("gemini", resp.StatusCode, respBody)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response (%v): %w", err, ErrProviderUnavailable)
	}
	var content strings.Builder
	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			content.WriteString(part.Text)
		}
	}
	if content.Len() == 0 {
		return "{}", nil
	}
	return content.String(), nil
}
